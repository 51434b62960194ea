// Package summary folds classified transactions into per-category and
// overall totals. Summaries are derived data: Summarize recomputes from
// scratch on every call and never mutates shared state, so a summary is
// always consistent with the list it was computed from.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/quillbooks/statement-parser/internal/models"
)

// Summarize aggregates a list of transactions. Income adds to TotalIncome;
// everything else (expenses and ATM withdrawals) adds to TotalExpenses.
// NetIncome is computed last from the accumulated totals.
//
// The Type recorded for a category is whichever transaction's type was seen
// first for that category; totals and counts are order-independent but that
// field is not.
func Summarize(txns []models.ParsedTransaction) models.StatementSummary {
	s := models.StatementSummary{
		TotalTransactions: len(txns),
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		NetIncome:         decimal.Zero,
		CategorySummary:   make(map[string]models.CategoryTotals),
	}

	for _, txn := range txns {
		if txn.Type == models.TypeIncome {
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(txn.Amount)
		}

		if txn.NeedsReview {
			s.NeedsReview++
		}

		cat, ok := s.CategorySummary[txn.Category]
		if !ok {
			cat = models.CategoryTotals{Total: decimal.Zero, Type: txn.Type}
		}
		cat.Total = cat.Total.Add(txn.Amount)
		cat.Count++
		s.CategorySummary[txn.Category] = cat
	}

	s.NetIncome = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
