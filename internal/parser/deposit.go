package parser

import (
	"regexp"
	"strings"

	"github.com/quillbooks/statement-parser/internal/models"
)

// DepositParser handles lines from the "DEPOSITS AND ADDITIONS" section.
//
// Expected line shape:
//
//	MM/DD <description> [$]<amount>
//
// Examples:
//
//	"01/08 Remote Online Deposit 1 $3,640.00"
//	"01/19 Remote Online Deposit 1 2,500.00"
//	"01/19 Remote Online Deposit 12,910.00"   (extraction artifact, see below)
//
// The third example is ambiguous: the PDF extractor sometimes drops the
// space between the trailing "1" of the description (the "Deposit 1" idiom)
// and the amount. ParseDepositLine repairs that specific artifact.
type DepositParser struct{}

// Source is the provenance tag stamped on deposits.
func (p *DepositParser) Source() string { return "deposit_parser" }

var depositLinePattern = regexp.MustCompile(
	`^(\d{2}/\d{2})\s+(.+?)\s*(\$?)([\d,]+\.\d{2})\s*$`,
)

// trailingDigitToken matches a description that already carries a trailing
// digit (a deposit count or date-like suffix).
var trailingDigitToken = regexp.MustCompile(`\d$`)

// ParseDepositLine parses one candidate deposit line. It returns nil when
// the line is not a deposit transaction, an expected outcome rather than an
// error.
func (p *DepositParser) ParseDepositLine(line string, statementYear int) *models.ParsedTransaction {
	m := depositLinePattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	date, ok := ToCalendarDate(m[1], statementYear)
	if !ok {
		return nil
	}

	desc := normalizeWhitespace(m[2])
	rawAmount := m[4]

	// A dollar sign between description and amount rules out a dropped
	// space, so the repair only runs on the bare-amount spellings.
	if m[3] == "" {
		desc, rawAmount = repairDepositConcatenation(desc, rawAmount)
	}

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return nil
	}
	// Bound check happens strictly after the repair step so an out-of-range
	// raw number has a chance to be corrected first.
	if !amountInBound(amount, maxDepositAmount) {
		return nil
	}

	return &models.ParsedTransaction{
		Date:        date,
		Amount:      amount,
		Description: desc,
		Type:        models.TypeIncome,
		Source:      p.Source(),
	}
}

// repairDepositConcatenation repairs the one observed extraction artifact in
// deposit lines: "Remote Online Deposit 1" followed by an amount loses its
// separating space, so "Remote Online Deposit 1 2,910.00" arrives as
// "Remote Online Deposit 12,910.00".
//
// The "1" is moved back into the description only when all of these hold:
//   - the amount token starts with "1",
//   - stripping that leading "1" still leaves a syntactically valid amount
//     (",234.56" is not, so "$1,234.56" never gets mangled),
//   - the description does not already end in a digit token, and
//   - the description ends with the word "Deposit"; the artifact is keyed
//     to the "Deposit 1" idiom, not a general de-concatenation fix.
func repairDepositConcatenation(desc, rawAmount string) (string, string) {
	if !strings.HasPrefix(rawAmount, "1") || len(rawAmount) < 2 {
		return desc, rawAmount
	}
	stripped := rawAmount[1:]
	if !isValidAmountSyntax(stripped) {
		return desc, rawAmount
	}
	if trailingDigitToken.MatchString(desc) {
		return desc, rawAmount
	}
	if !strings.HasSuffix(strings.ToLower(desc), "deposit") {
		return desc, rawAmount
	}
	return desc + " 1", stripped
}
