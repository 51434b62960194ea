package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/quillbooks/statement-parser/internal/models"
)

// Memory is an in-memory Store, safe for concurrent use. It backs the API
// in development and tests; production deployments swap in a real adapter.
type Memory struct {
	mu   sync.RWMutex
	txns []models.ParsedTransaction
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// SaveTransactions assigns a fresh ID to every transaction and appends them.
func (m *Memory) SaveTransactions(_ context.Context, txns []models.ParsedTransaction) ([]models.ParsedTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]models.ParsedTransaction, len(txns))
	for i, txn := range txns {
		txn.ID = uuid.New()
		stored[i] = txn
	}
	m.txns = append(m.txns, stored...)
	return stored, nil
}

// ListTransactions returns a copy of all stored transactions.
func (m *Memory) ListTransactions(_ context.Context) ([]models.ParsedTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.ParsedTransaction, len(m.txns))
	copy(out, m.txns)
	return out, nil
}
