package parser

import (
	"testing"
	"time"

	"github.com/quillbooks/statement-parser/internal/models"
)

func TestCheckParser_ParseCheckLine(t *testing.T) {
	p := &CheckParser{}

	t.Run("two dates uses posted date", func(t *testing.T) {
		txn := p.ParseCheckLine("538 * ^ 01/15 01/19 2,500.00", 2024)
		if txn == nil {
			t.Fatal("expected transaction")
		}
		want := time.Date(2024, time.January, 19, 12, 0, 0, 0, time.Local)
		if !txn.Date.Equal(want) {
			t.Errorf("date: got %v, want posted date %v", txn.Date, want)
		}
		if txn.Description != "CHECK #538" {
			t.Errorf("description: got %q, want %q", txn.Description, "CHECK #538")
		}
		if txn.Amount.StringFixed(2) != "2500.00" {
			t.Errorf("amount: got %s, want 2500.00", txn.Amount.StringFixed(2))
		}
		if txn.Type != models.TypeExpense {
			t.Errorf("type: got %s, want expense", txn.Type)
		}
	})

	t.Run("single date", func(t *testing.T) {
		txn := p.ParseCheckLine("539 ^ 01/22 $180.00", 2024)
		if txn == nil {
			t.Fatal("expected transaction")
		}
		want := time.Date(2024, time.January, 22, 12, 0, 0, 0, time.Local)
		if !txn.Date.Equal(want) {
			t.Errorf("date: got %v, want %v", txn.Date, want)
		}
		if txn.Description != "CHECK #539" {
			t.Errorf("description: got %q", txn.Description)
		}
	})

	t.Run("no marker characters", func(t *testing.T) {
		txn := p.ParseCheckLine("540 01/25 75.00", 2024)
		if txn == nil {
			t.Fatal("expected transaction")
		}
		if txn.Description != "CHECK #540" {
			t.Errorf("description: got %q", txn.Description)
		}
		if txn.Amount.StringFixed(2) != "75.00" {
			t.Errorf("amount: got %s", txn.Amount.StringFixed(2))
		}
	})
}

func TestCheckParser_Rejections(t *testing.T) {
	p := &CheckParser{}

	tests := []struct {
		name string
		line string
	}{
		{"no check number", "01/15 01/19 2,500.00"},
		{"no amount", "538 * ^ 01/15 01/19"},
		{"amount above check bound", "538 * ^ 01/15 01/19 $120,000.00"},
		{"invalid date", "538 * ^ 13/45 2,500.00"},
		{"plain text", "CHECKS PAID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if txn := p.ParseCheckLine(tt.line, 2024); txn != nil {
				t.Errorf("ParseCheckLine(%q) = %+v, want nil", tt.line, txn)
			}
		})
	}
}

func TestCheckParser_AmountAtBound(t *testing.T) {
	p := &CheckParser{}
	// Checks allow up to 100,000, higher than the card/deposit bounds.
	txn := p.ParseCheckLine("541 01/26 $100,000.00", 2024)
	if txn == nil {
		t.Fatal("expected 100,000.00 check to be accepted")
	}
	if txn.Amount.StringFixed(2) != "100000.00" {
		t.Errorf("amount: got %s", txn.Amount.StringFixed(2))
	}
}
