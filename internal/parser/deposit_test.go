package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/quillbooks/statement-parser/internal/models"
)

func TestDepositParser_ParseDepositLine(t *testing.T) {
	p := &DepositParser{}

	tests := []struct {
		name     string
		line     string
		wantDesc string
		wantAmt  string
	}{
		{
			name:     "dollar sign amount",
			line:     "01/08 Remote Online Deposit 1 $3,640.00",
			wantDesc: "Remote Online Deposit 1",
			wantAmt:  "3640.00",
		},
		{
			name:     "bare amount with commas, no ambiguity",
			line:     "01/19 Remote Online Deposit 1 2,500.00",
			wantDesc: "Remote Online Deposit 1",
			wantAmt:  "2500.00",
		},
		{
			name:     "bare amount without commas",
			line:     "01/22 Remote Online Deposit 1 1250.00",
			wantDesc: "Remote Online Deposit 1",
			wantAmt:  "1250.00",
		},
		{
			name:     "concatenated deposit count repaired",
			line:     "01/19 Remote Online Deposit 12,910.00",
			wantDesc: "Remote Online Deposit 1",
			wantAmt:  "2910.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := p.ParseDepositLine(tt.line, 2024)
			if txn == nil {
				t.Fatalf("ParseDepositLine(%q) = nil", tt.line)
			}
			if txn.Description != tt.wantDesc {
				t.Errorf("description: got %q, want %q", txn.Description, tt.wantDesc)
			}
			if txn.Amount.StringFixed(2) != tt.wantAmt {
				t.Errorf("amount: got %s, want %s", txn.Amount.StringFixed(2), tt.wantAmt)
			}
			if txn.Type != models.TypeIncome {
				t.Errorf("type: got %s, want income", txn.Type)
			}
			if txn.Source != "deposit_parser" {
				t.Errorf("source: got %q", txn.Source)
			}
		})
	}
}

func TestDepositParser_Date(t *testing.T) {
	p := &DepositParser{}
	txn := p.ParseDepositLine("01/08 Remote Online Deposit 1 $3,640.00", 2024)
	if txn == nil {
		t.Fatal("expected transaction")
	}
	want := time.Date(2024, time.January, 8, 12, 0, 0, 0, time.Local)
	if !txn.Date.Equal(want) {
		t.Errorf("date: got %v, want %v", txn.Date, want)
	}
	if !strings.Contains(txn.Description, "Remote Online Deposit") {
		t.Errorf("description %q missing deposit text", txn.Description)
	}
}

func TestDepositParser_RepairGuards(t *testing.T) {
	p := &DepositParser{}

	tests := []struct {
		name    string
		line    string
		wantAmt string
	}{
		{
			// A dollar sign proves the space before the amount survived;
			// $1,234.00 is never mangled into "1" + 234.00.
			name:    "dollar sign blocks repair",
			line:    "01/10 Remote Online Deposit $1,234.00",
			wantAmt: "1234.00",
		},
		{
			// Stripping the leading 1 would leave ",950.00", which is not
			// a valid amount, so no repair.
			name:    "invalid remainder blocks repair",
			line:    "01/11 Remote Online Deposit 1,950.00",
			wantAmt: "1950.00",
		},
		{
			// Description already ends in a digit; the count is present.
			name:    "trailing digit blocks repair",
			line:    "01/12 Remote Online Deposit 1 19,998.00",
			wantAmt: "19998.00",
		},
		{
			// Not the "Deposit 1" idiom: a description not ending in
			// "Deposit" is left alone.
			name:    "non-deposit description blocks repair",
			line:    "01/13 Wire Transfer Credit 12,910.00",
			wantAmt: "12910.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := p.ParseDepositLine(tt.line, 2024)
			if txn == nil {
				t.Fatalf("ParseDepositLine(%q) = nil", tt.line)
			}
			if txn.Amount.StringFixed(2) != tt.wantAmt {
				t.Errorf("amount: got %s, want %s", txn.Amount.StringFixed(2), tt.wantAmt)
			}
		})
	}
}

func TestDepositParser_Rejections(t *testing.T) {
	p := &DepositParser{}

	tests := []struct {
		name string
		line string
	}{
		{"no date prefix", "Remote Online Deposit 1 $3,640.00"},
		{"no amount", "01/08 Remote Online Deposit"},
		{"invalid date", "00/08 Remote Online Deposit 1 $3,640.00"},
		{"amount above bound", "01/08 Remote Online Deposit 1 $62,000.00"},
		{"zero amount", "01/08 Remote Online Deposit 1 0.00"},
		{"total line residue", "Total Deposits and Additions $6,140.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if txn := p.ParseDepositLine(tt.line, 2024); txn != nil {
				t.Errorf("ParseDepositLine(%q) = %+v, want nil", tt.line, txn)
			}
		})
	}
}
