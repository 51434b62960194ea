// Package classifier assigns accounting categories to transaction
// descriptions using an ordered first-match-wins keyword table, with
// type-specific heuristics as a second tier. The table is immutable
// configuration injected at construction, so per-bank or per-locale tables
// can be swapped without touching parser logic.
package classifier

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quillbooks/statement-parser/internal/models"
)

// Confidence levels by tier.
const (
	ConfidenceKeyword   = 0.8
	ConfidenceHeuristic = 0.6
	ConfidenceFallback  = 0.3
)

// Uncategorized is the fallback category when no rule or heuristic matches.
const Uncategorized = "Uncategorized"

// Rule maps a description keyword to a category. Rules are evaluated in
// order and the first match wins, so a later rule is unreachable for any
// description an earlier rule already matches.
type Rule struct {
	Keyword     string
	Category    string
	Subcategory string
}

// Result is the outcome of classifying one description.
type Result struct {
	Category    string
	Subcategory string
	Confidence  float64
}

// Classifier holds an ordered rule table.
type Classifier struct {
	rules []Rule
}

// New builds a classifier over the given ordered rule table. The slice is
// copied; callers cannot mutate the table afterwards.
func New(rules []Rule) *Classifier {
	c := &Classifier{rules: make([]Rule, len(rules))}
	copy(c.rules, rules)
	return c
}

// Default returns a classifier loaded with the built-in keyword table.
func Default() *Classifier {
	return New(DefaultRules())
}

// Classify maps a free-text description to an accounting category.
// Order of evaluation, first match wins:
//  1. case-insensitive substring match against the keyword table (0.8)
//  2. type-specific heuristic substring checks (0.6)
//  3. Uncategorized (0.3)
//
// The amount is accepted for future rule predicates but the current table
// is keyword-only.
func (c *Classifier) Classify(description string, amount decimal.Decimal, observedType models.TransactionType) Result {
	upper := strings.ToUpper(description)

	for _, r := range c.rules {
		if strings.Contains(upper, strings.ToUpper(r.Keyword)) {
			return Result{
				Category:    r.Category,
				Subcategory: r.Subcategory,
				Confidence:  ConfidenceKeyword,
			}
		}
	}

	if res, ok := heuristicByType(upper, observedType); ok {
		return res
	}

	return Result{Category: Uncategorized, Confidence: ConfidenceFallback}
}

// heuristicByType applies the second-tier pattern checks for the observed
// transaction type.
func heuristicByType(upper string, observedType models.TransactionType) (Result, bool) {
	switch observedType {
	case models.TypeExpense:
		if containsAny(upper, "GAS", "FUEL") {
			return Result{Category: "Car and Truck Expenses", Confidence: ConfidenceHeuristic}, true
		}
		if containsAny(upper, "RESTAURANT", "CAFE", "GRILL", "DINER") {
			return Result{Category: "Meals and Entertainment", Confidence: ConfidenceHeuristic}, true
		}
	case models.TypeIncome:
		if containsAny(upper, "DEPOSIT", "PAYMENT", "TRANSFER") {
			return Result{Category: "Business Income", Confidence: ConfidenceHeuristic}, true
		}
	}
	return Result{}, false
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
