package parser

import (
	"regexp"
	"strings"

	"github.com/quillbooks/statement-parser/internal/models"
)

// CardParser handles lines from the "ATM & DEBIT CARD WITHDRAWALS" section.
//
// Expected line shapes:
//
//	MM/DD Card Purchase [With Pin] [MM/DD] <merchant> <ST> Card <last4> [$]<amount>
//	MM/DD Non-Chase ATM Withdraw [MM/DD] <location> <ST> Card <last4> [$]<amount>
//
// Examples:
//
//	"01/15 Card Purchase 01/14 AMAZON.COM NY Card 1234 $45.99"
//	"01/20 Card Purchase With Pin 01/20 Chevron/Sunshine 39036708 FL Card 1234 62.50"
//	"01/22 Non-Chase ATM Withdraw 01/22 123 Main St Tampa FL Card 1234 $202.50"
//
// The leading MM/DD is the posting date and is the one used; the optional
// embedded date is the merchant transaction date and is discarded.
type CardParser struct{}

// Source is the provenance tag stamped on card transactions.
func (p *CardParser) Source() string { return "card_parser" }

var cardPurchasePattern = regexp.MustCompile(
	`^(\d{2}/\d{2})\s+Card Purchase(?:\s+With Pin)?\s+(?:(\d{2}/\d{2})\s+)?(.+?)\s+([A-Z]{2})\s+Card\s+(\d{4})\s+\$?([\d,]+\.\d{2})\s*$`,
)

var atmWithdrawPattern = regexp.MustCompile(
	`^(\d{2}/\d{2})\s+Non-Chase ATM Withdraw(?:al)?\s+(?:(\d{2}/\d{2})\s+)?(.+?)\s+([A-Z]{2})\s+Card\s+(\d{4})\s+\$?([\d,]+\.\d{2})\s*$`,
)

// longDigitRun matches 7+ digit card-network transaction IDs embedded in
// merchant text.
var longDigitRun = regexp.MustCompile(`\b\d{7,}\b`)

// trailingIDCity matches a trailing numeric-ID-plus-city tail on generic
// merchant text, e.g. "Exxonmobil 97511 Tampa".
var trailingIDCity = regexp.MustCompile(`\s+\d{3,}\s+[A-Za-z .'-]+$`)

// Brand-specific cleanups: known merchant families keep their distinguishing
// identifiers instead of going through the generic ID stripping.
var (
	combinedBrandPattern = regexp.MustCompile(`(?i)\bChevron/Sunshine\b`)
	sunshineStorePattern = regexp.MustCompile(`(?i)\bSunshine\s*#\s*\d+`)
	lowesStorePattern    = regexp.MustCompile(`(?i)\bLowe'?s\s*#\s*\d+`)
)

// ParseCardLine parses one candidate card-section line, returning nil for
// non-transaction lines.
func (p *CardParser) ParseCardLine(line string, statementYear int) *models.ParsedTransaction {
	if m := cardPurchasePattern.FindStringSubmatch(line); m != nil {
		return p.buildCardTransaction(m, statementYear, false)
	}
	if m := atmWithdrawPattern.FindStringSubmatch(line); m != nil {
		return p.buildCardTransaction(m, statementYear, true)
	}
	return nil
}

func (p *CardParser) buildCardTransaction(m []string, statementYear int, atm bool) *models.ParsedTransaction {
	date, ok := ToCalendarDate(m[1], statementYear)
	if !ok {
		return nil
	}

	amount, err := parseAmount(m[6])
	if err != nil {
		return nil
	}
	if !amountInBound(amount, maxCardAmount) {
		return nil
	}

	desc := cleanMerchant(m[3])

	txn := &models.ParsedTransaction{
		Date:        date,
		Amount:      amount,
		Description: desc,
		Type:        models.TypeExpense,
		Source:      p.Source(),
	}
	if atm {
		// ATM withdrawals bypass the keyword classifier entirely.
		txn.Type = models.TypeATMWithdrawal
		txn.Category = "ATM Withdrawal"
		txn.Confidence = 1.0
		if desc == "Card Purchase" {
			txn.Description = "Non-Chase ATM Withdraw"
		}
	}
	return txn
}

// cleanMerchant normalizes the merchant text captured by the structural
// match: long transaction IDs are stripped, known merchant families keep
// their distinguishing identifiers, and generic merchants lose their
// trailing numeric-ID-plus-city tokens. The state code was already consumed
// by the structural pattern. An empty or sub-2-character result falls back
// to the literal "Card Purchase".
func cleanMerchant(raw string) string {
	s := normalizeWhitespace(raw)

	switch {
	case combinedBrandPattern.MatchString(s):
		// A combined-brand station keeps both names.
		s = combinedBrandPattern.FindString(s)
	case sunshineStorePattern.MatchString(s):
		// A standalone station keeps its store number.
		s = sunshineStorePattern.FindString(s)
	case lowesStorePattern.MatchString(s):
		s = lowesStorePattern.FindString(s)
	default:
		s = longDigitRun.ReplaceAllString(s, "")
		s = trailingIDCity.ReplaceAllString(s, "")
		s = normalizeWhitespace(s)
	}

	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return "Card Purchase"
	}
	return s
}
