package parser

import (
	"testing"

	"github.com/quillbooks/statement-parser/internal/models"
)

func TestParseSectionLines_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		kind     models.SectionKind
		lines    []string
		wantDesc string
	}{
		{
			name:     "deposits",
			kind:     models.SectionDeposits,
			lines:    []string{"01/05 Remote Online Deposit 2,500.00"},
			wantDesc: "Remote Online Deposit",
		},
		{
			name:     "checks",
			kind:     models.SectionChecks,
			lines:    []string{"1234 ^ 01/08 01/10 $500.00"},
			wantDesc: "CHECK #1234",
		},
		{
			name:     "card",
			kind:     models.SectionCard,
			lines:    []string{"01/15 Card Purchase 01/14 AMAZON.COM NY Card 1234 $45.99"},
			wantDesc: "AMAZON.COM",
		},
		{
			name:     "electronic",
			kind:     models.SectionElectronic,
			lines:    []string{"01/16 Orig CO Name:Home Depot $389.20 Orig ID:1234567890"},
			wantDesc: "Electronic Payment: Home Depot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := ParseSectionLines(tt.kind, tt.lines, 2024)
			if len(txns) != 1 {
				t.Fatalf("got %d transactions, want 1", len(txns))
			}
			if txns[0].Description != tt.wantDesc {
				t.Errorf("description: got %q, want %q", txns[0].Description, tt.wantDesc)
			}
		})
	}
}

func TestParseSectionLines_UnknownKind(t *testing.T) {
	if txns := ParseSectionLines(models.SectionKind("fees"), []string{"01/05 Fee 10.00"}, 2024); txns != nil {
		t.Fatalf("got %v, want nil", txns)
	}
}

func TestParseSectionLines_SkipsUnparsableLines(t *testing.T) {
	lines := []string{
		"residual header text",
		"01/05 Remote Online Deposit 2,500.00",
		"(continued on next page)",
	}
	txns := ParseSectionLines(models.SectionDeposits, lines, 2024)
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
}
