package parser

import (
	"regexp"

	"github.com/quillbooks/statement-parser/internal/models"
)

// sectionAnchors holds the header and total-line anchor text for one
// statement section. Matching is case-insensitive, but the header words must
// be exactly single-spaced: a statement whose extractor doubled the spaces
// inside a header does not match, and the section is reported as absent.
type sectionAnchors struct {
	header string
	total  string
}

var anchors = map[models.SectionKind]sectionAnchors{
	models.SectionDeposits:   {header: "DEPOSITS AND ADDITIONS", total: "Total Deposits and Additions"},
	models.SectionChecks:     {header: "CHECKS PAID", total: "Total Checks Paid"},
	models.SectionCard:       {header: `ATM & DEBIT CARD WITHDRAWALS`, total: `Total ATM & Debit Card Withdrawals`},
	models.SectionElectronic: {header: "ELECTRONIC WITHDRAWALS", total: "Total Electronic Withdrawals"},
}

// sectionPatterns are the primary patterns: an explicit header through the
// matching total-line marker. (?s) lets the body span line breaks.
var sectionPatterns = map[models.SectionKind]*regexp.Regexp{}

// depositsFallback accepts the deposits header and captures everything up to
// the next known section header or end of text. Some statements have a
// malformed or missing deposits total line; the other sections get no such
// fallback because their totals have not been observed to go missing.
// Headers are anchored at line start so that a total line, which contains
// the header words, can never be mistaken for a section opening.
var depositsFallback = regexp.MustCompile(
	`(?ism)(^[ \t]*DEPOSITS AND ADDITIONS.*?)(?:^[ \t]*CHECKS PAID|^[ \t]*ATM & DEBIT CARD WITHDRAWALS|^[ \t]*ELECTRONIC WITHDRAWALS|\z)`,
)

func init() {
	for kind, a := range anchors {
		sectionPatterns[kind] = regexp.MustCompile(
			`(?ism)^[ \t]*` + regexp.QuoteMeta(a.header) + `.*?` + regexp.QuoteMeta(a.total),
		)
	}
}

// ExtractSection scans the full statement text and slices out the substring
// belonging to the given section, bounded by its header anchor and its total
// line (or, for deposits, the next section header or end of text). The slice
// includes the header line and total line; the segmenter drops them.
//
// Returns ok=false when the section is absent, an expected and common case
// since not every statement has every section type.
func ExtractSection(kind models.SectionKind, fullText string) (models.SectionSlice, bool) {
	pat, known := sectionPatterns[kind]
	if !known {
		return models.SectionSlice{}, false
	}

	if m := pat.FindString(fullText); m != "" {
		return models.SectionSlice{Kind: kind, Text: m}, true
	}

	if kind == models.SectionDeposits {
		if m := depositsFallback.FindStringSubmatch(fullText); m != nil {
			return models.SectionSlice{Kind: kind, Text: m[1]}, true
		}
	}

	return models.SectionSlice{}, false
}
