// Package pipeline drives statement text through section extraction, line
// segmentation, per-section parsing, classification and aggregation. A
// pipeline run is synchronous and side-effect-free: it reads a text blob and
// a year and returns a list, so multiple statements can be processed in
// parallel with one run each and no locking.
package pipeline

import (
	"errors"
	"sort"
	"strings"

	"github.com/quillbooks/statement-parser/internal/classifier"
	"github.com/quillbooks/statement-parser/internal/models"
	"github.com/quillbooks/statement-parser/internal/parser"
	"github.com/quillbooks/statement-parser/internal/summary"
)

// ErrEmptyStatement is returned when the source text is unreadable or blank.
// This is the only fatal case; missing sections and unparsable lines fail
// softly.
var ErrEmptyStatement = errors.New("statement text is empty")

// reviewThreshold marks transactions for human review when classification
// confidence falls below it.
const reviewThreshold = 0.5

// Result is the pipeline output: every recovered transaction plus the
// summary computed over them.
type Result struct {
	Transactions []models.ParsedTransaction `json:"transactions"`
	Summary      models.StatementSummary    `json:"summary"`
}

// Pipeline holds the classifier used for all runs. The zero value is not
// usable; construct with New.
type Pipeline struct {
	classifier *classifier.Classifier
}

// New creates a pipeline around the given classifier. Pass
// classifier.Default() unless a custom rule table is needed.
func New(c *classifier.Classifier) *Pipeline {
	return &Pipeline{classifier: c}
}

// Process recovers transactions from one statement's extracted text. For
// each section kind it extracts the section slice, segments it into
// candidate lines and parses each line; missing sections are skipped and
// unparsable lines are dropped. The merged list is deduplicated on the exact
// (date, amount, description) key and sorted by date ascending.
//
// A statement that yields fewer transactions than expected is not an error:
// partial recovery is more useful to a bookkeeping user than an
// all-or-nothing failure.
func (p *Pipeline) Process(rawText string, statementYear int) (*Result, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyStatement
	}

	var merged []models.ParsedTransaction
	for _, kind := range models.SectionKinds {
		slice, ok := parser.ExtractSection(kind, rawText)
		if !ok {
			continue
		}
		lines := parser.SegmentLines(slice)
		merged = append(merged, parser.ParseSectionLines(kind, lines, statementYear)...)
	}

	for i := range merged {
		p.classify(&merged[i])
	}

	merged = dedupe(merged)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	return &Result{
		Transactions: merged,
		Summary:      summary.Summarize(merged),
	}, nil
}

// classify assigns a category to one transaction. ATM withdrawals arrive
// pre-categorized by the card parser and bypass the keyword classifier.
// NeedsReview is derived here, never stored independently.
func (p *Pipeline) classify(txn *models.ParsedTransaction) {
	if txn.Type == models.TypeATMWithdrawal {
		txn.NeedsReview = false
		return
	}

	res := p.classifier.Classify(txn.Description, txn.Amount, txn.Type)
	txn.Category = res.Category
	txn.Subcategory = res.Subcategory
	txn.Confidence = res.Confidence
	txn.NeedsReview = res.Category == classifier.Uncategorized || res.Confidence < reviewThreshold
}

// dedupe removes exact duplicates on (date, amount, description). Sections
// can overlap when the deposits fallback pattern captures into a neighboring
// section; exact-match dedup is idempotent and never merges distinct
// transactions.
func dedupe(txns []models.ParsedTransaction) []models.ParsedTransaction {
	seen := make(map[string]struct{}, len(txns))
	out := txns[:0]
	for _, txn := range txns {
		key := txn.Date.Format("2006-01-02") + "|" + txn.Amount.StringFixed(2) + "|" + txn.Description
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, txn)
	}
	return out
}
