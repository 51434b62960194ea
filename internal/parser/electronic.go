package parser

import (
	"regexp"
	"strings"

	"github.com/quillbooks/statement-parser/internal/models"
)

// ElectronicParser handles lines from the "ELECTRONIC WITHDRAWALS" section.
//
// The statement wraps one logical ACH transaction across multiple physical
// lines:
//
//	"01/16 Orig CO Name:Home Depot          Orig ID:1234567890 Desc Date:240116"
//	"CO Entry Descr:Online Pmt Sec:Web Trace#:021000021234567"
//	"Ind ID:987654          Ind Name:Acme Renovations LLC"
//	"$389.20"
//
// The dollar amount may sit on the same line as the company name or stand
// alone up to several lines later. There is no explicit record terminator:
// only the next date-prefixed line or the section total reliably marks where
// a record ends, so the amount search is a bounded forward scan with exactly
// those two stop conditions.
type ElectronicParser struct{}

// Source is the provenance tag stamped on electronic payments.
func (p *ElectronicParser) Source() string { return "electronic_parser" }

// electronicLookahead bounds the forward scan for a standalone amount line.
// Removing the bound risks runaway scans on malformed input.
const electronicLookahead = 5

var origCompanyPattern = regexp.MustCompile(
	`^(\d{2}/\d{2})\s+.*?Orig CO Name:\s*(.+)$`,
)

// origNextField matches the next ACH field after the company name. The match
// requires the full field label so company names that merely start with
// "Orig" (e.g. "Original Parts Co") survive intact.
var origNextField = regexp.MustCompile(`\bOrig\s+(CO Name|ID):`)

// electronicTotalMarker stops the lookahead at the section total, for the
// case where the segmenter received a slice whose total line survived.
var electronicTotalMarker = "TOTAL ELECTRONIC WITHDRAWALS"

// ParseSection walks the segmented lines of the electronic section and
// returns every recovered transaction. Lines that belong to a record's
// continuation (Trace#, Ind Name, ...) never produce transactions of their
// own.
func (p *ElectronicParser) ParseSection(lines []string, statementYear int) []models.ParsedTransaction {
	var out []models.ParsedTransaction
	for i := range lines {
		if txn := p.parseAt(lines, i, statementYear); txn != nil {
			out = append(out, *txn)
		}
	}
	return out
}

// parseAt attempts to parse the record starting at lines[i]. Returns nil
// when lines[i] is not the head line of an electronic payment, or when no
// amount could be attributed to it within the lookahead window.
func (p *ElectronicParser) parseAt(lines []string, i int, statementYear int) *models.ParsedTransaction {
	m := origCompanyPattern.FindStringSubmatch(lines[i])
	if m == nil {
		return nil
	}

	date, ok := ToCalendarDate(m[1], statementYear)
	if !ok {
		return nil
	}

	// The company text runs until the next ACH field label or end of line.
	// An amount appended to the same line is not part of the company name.
	company := m[2]
	if loc := origNextField.FindStringIndex(company); loc != nil {
		company = company[:loc[0]]
	}
	company = amountToken.ReplaceAllString(company, "")
	company = normalizeWhitespace(company)
	if company == "" {
		return nil
	}

	rawAmount, found := amountOnLine(lines[i])
	if !found {
		rawAmount, found = p.scanForward(lines, i)
	}
	if !found {
		return nil
	}

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return nil
	}
	if !amountInBound(amount, maxElectronicAmount) {
		return nil
	}

	return &models.ParsedTransaction{
		Date:        date,
		Amount:      amount,
		Description: "Electronic Payment: " + company,
		Type:        models.TypeExpense,
		Source:      p.Source(),
	}
}

// scanForward looks ahead up to electronicLookahead lines for a line that is
// nothing but an amount, stopping early at the next date-prefixed line or a
// total marker.
func (p *ElectronicParser) scanForward(lines []string, i int) (string, bool) {
	for j := i + 1; j < len(lines) && j <= i+electronicLookahead; j++ {
		line := strings.TrimSpace(lines[j])
		if startsNewRecord(line) {
			return "", false
		}
		if strings.Contains(strings.ToUpper(line), electronicTotalMarker) {
			return "", false
		}
		if bareAmountLine.MatchString(line) {
			return line, true
		}
	}
	return "", false
}

// amountOnLine returns the last amount token on the head line, if any. The
// other numeric fields of an ACH record (Orig ID, Trace#, Desc Date) carry
// no decimal point and never match the amount pattern.
func amountOnLine(line string) (string, bool) {
	matches := amountToken.FindAllString(line, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1], true
}
