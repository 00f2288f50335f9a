package persistence

import (
	"context"

	"github.com/brunovale/mock-payment-gateway/internal/domain/entity"
)

// TransactionStore is the single piece of shared state in the gateway:
// a mapping from transaction ID to transaction record. Implementations
// must allow concurrent access to different IDs without serializing.
type TransactionStore interface {
	// Get returns the transaction for the given ID, or
	// error.ErrTransactionNotFound when the ID was never stored
	Get(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// Put inserts a newly created transaction keyed by its ID
	Put(ctx context.Context, transaction *entity.Transaction) error

	// Update persists a status mutation for an already stored
	// transaction; unknown IDs yield error.ErrTransactionNotFound
	Update(ctx context.Context, transaction *entity.Transaction) error
}
