package parser

import (
	"fmt"
	"regexp"

	"github.com/quillbooks/statement-parser/internal/models"
)

// CheckParser handles lines from the "CHECKS PAID" section.
//
// Expected line shape:
//
//	<check#> [marker chars] MM/DD [MM/DD] [$]<amount>
//
// Examples:
//
//	"538 * ^ 01/15 01/19 2,500.00"
//	"539 ^ 01/22 $180.00"
//
// When two dates appear, the second one is the cleared/posted date and is
// the one used; the first is the issue date. Checks carry no merchant text
// in this statement layout, so the description is synthesized as
// "CHECK #<number>".
type CheckParser struct{}

// Source is the provenance tag stamped on checks.
func (p *CheckParser) Source() string { return "check_parser" }

var checkLinePattern = regexp.MustCompile(
	`^(\d{1,6})\s*[*^\s]*\s*(\d{2}/\d{2})(?:\s+(\d{2}/\d{2}))?\s+\$?([\d,]+\.\d{2})\s*$`,
)

// ParseCheckLine parses one candidate check line, returning nil for
// non-transaction lines.
func (p *CheckParser) ParseCheckLine(line string, statementYear int) *models.ParsedTransaction {
	m := checkLinePattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	// Prefer the posted date when the statement exposes both.
	datePart := m[2]
	if m[3] != "" {
		datePart = m[3]
	}
	date, ok := ToCalendarDate(datePart, statementYear)
	if !ok {
		return nil
	}

	amount, err := parseAmount(m[4])
	if err != nil {
		return nil
	}
	if !amountInBound(amount, maxCheckAmount) {
		return nil
	}

	return &models.ParsedTransaction{
		Date:        date,
		Amount:      amount,
		Description: fmt.Sprintf("CHECK #%s", m[1]),
		Type:        models.TypeExpense,
		Source:      p.Source(),
	}
}
