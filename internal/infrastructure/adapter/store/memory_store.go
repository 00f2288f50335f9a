package store

import (
	"context"
	"sync"

	"github.com/brunovale/mock-payment-gateway/internal/domain/entity"
	errs "github.com/brunovale/mock-payment-gateway/internal/domain/error"
	"github.com/brunovale/mock-payment-gateway/internal/domain/port/persistence"
)

// MemoryStore is a thread-safe in-memory transaction store. State lives
// for the process lifetime only; losing it on restart is acceptable for a
// mock gateway.
type MemoryStore struct {
	mu           sync.RWMutex
	transactions map[string]*entity.Transaction
}

// NewMemoryStore creates an empty in-memory transaction store
func NewMemoryStore() persistence.TransactionStore {
	return &MemoryStore{
		transactions: make(map[string]*entity.Transaction),
	}
}

// Get returns the stored transaction for the given ID
func (s *MemoryStore) Get(_ context.Context, transactionID string) (*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transaction, ok := s.transactions[transactionID]
	if !ok {
		return nil, errs.NewNotFoundError(transactionID)
	}
	return transaction, nil
}

// Put inserts a transaction keyed by its ID
func (s *MemoryStore) Put(_ context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions[transaction.TransactionID] = transaction
	return nil
}

// Update persists a mutation for an already stored transaction
func (s *MemoryStore) Update(_ context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[transaction.TransactionID]; !ok {
		return errs.NewNotFoundError(transaction.TransactionID)
	}
	s.transactions[transaction.TransactionID] = transaction
	return nil
}
