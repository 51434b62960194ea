// Package store defines the persistence boundary for parsed transactions.
// The pipeline does not depend on any storage schema beyond producing plain
// records; concrete database adapters live outside this repository.
package store

import (
	"context"

	"github.com/quillbooks/statement-parser/internal/models"
)

// Store accepts parsed transactions for persistence and lists them back.
type Store interface {
	// SaveTransactions persists the given transactions, assigning IDs, and
	// returns the stored records.
	SaveTransactions(ctx context.Context, txns []models.ParsedTransaction) ([]models.ParsedTransaction, error)
	// ListTransactions returns all stored transactions in insertion order.
	ListTransactions(ctx context.Context) ([]models.ParsedTransaction, error)
}
