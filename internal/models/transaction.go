package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType describes the direction of money movement.
type TransactionType string

const (
	TypeIncome        TransactionType = "income"
	TypeExpense       TransactionType = "expense"
	TypeATMWithdrawal TransactionType = "atm_withdrawal"
)

// ParsedTransaction is the central record produced by the statement pipeline.
// Amount is always positive; the direction is carried by Type, never by a
// negative amount. Date is pinned to local noon so rendering it in another
// timezone cannot shift the calendar day.
type ParsedTransaction struct {
	ID          uuid.UUID       `json:"id,omitempty"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Confidence  float64         `json:"confidence"`
	NeedsReview bool            `json:"needsReview"`
	Source      string          `json:"source"` // which parser produced it
}

// SectionKind identifies one of the four statement sections.
type SectionKind string

const (
	SectionDeposits   SectionKind = "deposits"
	SectionChecks     SectionKind = "checks"
	SectionCard       SectionKind = "card"
	SectionElectronic SectionKind = "electronic"
)

// SectionKinds lists all sections in statement order.
var SectionKinds = []SectionKind{
	SectionDeposits,
	SectionChecks,
	SectionCard,
	SectionElectronic,
}

// SectionSlice is the substring of statement text belonging to one section,
// including its header line and (usually) its trailing total line.
type SectionSlice struct {
	Kind SectionKind
	Text string
}

// CategoryTotals accumulates one category's slice of a statement summary.
// Type records the type of the first transaction folded into the category;
// when a category receives mixed types the field reflects fold order.
type CategoryTotals struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
	Type  TransactionType `json:"type"`
}

// StatementSummary aggregates a list of parsed transactions. It is derived
// data, recomputed from scratch on every aggregation call.
type StatementSummary struct {
	TotalTransactions int                       `json:"totalTransactions"`
	TotalIncome       decimal.Decimal           `json:"totalIncome"`
	TotalExpenses     decimal.Decimal           `json:"totalExpenses"`
	NetIncome         decimal.Decimal           `json:"netIncome"`
	CategorySummary   map[string]CategoryTotals `json:"categorySummary"`
	NeedsReview       int                       `json:"needsReview"`
}
