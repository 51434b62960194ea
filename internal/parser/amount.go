package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount bounds per section. A value outside its section's bound almost
// always means an uncorrected digit-concatenation artifact, so the line is
// rejected rather than emitted with a corrupt amount.
var (
	maxDepositAmount    = decimal.NewFromInt(50000)
	maxCheckAmount      = decimal.NewFromInt(100000)
	maxCardAmount       = decimal.NewFromInt(50000)
	maxElectronicAmount = decimal.NewFromInt(50000)
)

// amountToken matches a currency amount with optional dollar sign and
// optional thousands separators: $1,234.56, 1,234.56, 1234.56.
var amountToken = regexp.MustCompile(`\$?[\d,]+\.\d{2}`)

// bareAmountLine matches a line whose entire content is a single amount.
// The electronic-payment lookahead uses it to find amounts that the PDF
// extractor pushed onto their own line.
var bareAmountLine = regexp.MustCompile(`^\$?\s*[\d,]+\.\d{2}$`)

// strictAmount matches a syntactically well-formed amount: either no commas
// at all, or commas grouping digits in threes. The concatenation repair uses
// it to decide whether a stripped candidate is still a real amount
// (",234.56" is not).
var strictAmount = regexp.MustCompile(`^(?:\d+|\d{1,3}(?:,\d{3})+)\.\d{2}$`)

// parseAmount converts an amount token like "$1,234.56" to a decimal.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	return decimal.NewFromString(s)
}

// isValidAmountSyntax reports whether s (without a dollar sign) is a
// well-formed amount with correct comma grouping.
func isValidAmountSyntax(s string) bool {
	return strictAmount.MatchString(s)
}

// amountInBound reports whether 0 < amount <= max. Callers run this strictly
// after any concatenation-repair step so an out-of-range raw number gets a
// chance to be corrected first.
func amountInBound(amount, max decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThanOrEqual(max)
}

// normalizeWhitespace collapses runs of whitespace into single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
