// Package parser recovers typed financial transactions from the raw
// character stream a PDF-text extractor produces for a Chase-layout bank
// statement: no layout information, inconsistent line breaks, and the
// occasional concatenated token. Each statement section has its own line
// parser; a line that fits no known pattern is skipped, never fatal.
package parser

import (
	"github.com/quillbooks/statement-parser/internal/models"
)

// ParseSectionLines runs the section's line parser over every candidate line
// and collects the non-nil results. Unparsable lines are silently dropped:
// header residue, continuation lines and malformed records are expected in
// extracted text.
func ParseSectionLines(kind models.SectionKind, lines []string, statementYear int) []models.ParsedTransaction {
	switch kind {
	case models.SectionDeposits:
		p := &DepositParser{}
		return collect(lines, statementYear, p.ParseDepositLine)
	case models.SectionChecks:
		p := &CheckParser{}
		return collect(lines, statementYear, p.ParseCheckLine)
	case models.SectionCard:
		p := &CardParser{}
		return collect(lines, statementYear, p.ParseCardLine)
	case models.SectionElectronic:
		p := &ElectronicParser{}
		return p.ParseSection(lines, statementYear)
	default:
		return nil
	}
}

func collect(lines []string, year int, parse func(string, int) *models.ParsedTransaction) []models.ParsedTransaction {
	var out []models.ParsedTransaction
	for _, line := range lines {
		if txn := parse(line, year); txn != nil {
			out = append(out, *txn)
		}
	}
	return out
}
