// Package writer exports parsed transactions in CSV form for spreadsheet
// review and downstream bookkeeping imports.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/quillbooks/statement-parser/internal/pipeline"
)

// CSVWriter writes pipeline results to CSV.
type CSVWriter struct {
	// IncludeSummary appends summary rows after the transactions.
	IncludeSummary bool
}

// WriteToFile writes a result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, res *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, res)
}

// Write writes a result in CSV form to the given writer.
func (w *CSVWriter) Write(out io.Writer, res *pipeline.Result) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	header := []string{"Date", "Description", "Type", "Category", "Subcategory", "Amount", "Confidence", "NeedsReview", "Source"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, txn := range res.Transactions {
		row := []string{
			txn.Date.Format("2006-01-02"),
			txn.Description,
			string(txn.Type),
			txn.Category,
			txn.Subcategory,
			txn.Amount.StringFixed(2),
			strconv.FormatFloat(txn.Confidence, 'f', 2, 64),
			strconv.FormatBool(txn.NeedsReview),
			txn.Source,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	if w.IncludeSummary {
		s := res.Summary
		rows := [][]string{
			{"# Total Transactions", strconv.Itoa(s.TotalTransactions)},
			{"# Total Income", s.TotalIncome.StringFixed(2)},
			{"# Total Expenses", s.TotalExpenses.StringFixed(2)},
			{"# Net Income", s.NetIncome.StringFixed(2)},
			{"# Needs Review", strconv.Itoa(s.NeedsReview)},
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing summary row: %w", err)
			}
		}
	}

	return nil
}
