package payment

import (
	"context"

	"github.com/brunovale/mock-payment-gateway/internal/domain/entity"
	errs "github.com/brunovale/mock-payment-gateway/internal/domain/error"
)

// CreatePayment runs the creation pipeline: validation, simulated latency,
// the systemic failure hook, then identifier/artifact generation and the
// store insert. The returned transaction is the success response body.
func (s *Service) CreatePayment(ctx context.Context, req CreateRequest) (*entity.Transaction, error) {
	s.logger.Info("Payment attempt received", map[string]any{
		"amount":       req.Amount.String(),
		"payment_type": req.PaymentType,
	})

	if err := validateCreate(s.variant, req); err != nil {
		s.logger.Warn("Payment request rejected", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	s.simulateLatency(s.cfg.CreateLatencyMin, s.cfg.CreateLatencyMax)

	if s.shouldFailSystemic() {
		kind := s.variant.FailureKinds[s.random.Intn(len(s.variant.FailureKinds))]
		err := errs.NewSystemicError(kind.Kind, kind.Message)
		s.logger.Error("Payment failed", map[string]any{
			"error_kind": kind.Kind,
		})
		return nil, err
	}

	transaction := s.buildTransaction(req)
	if err := s.store.Put(ctx, transaction); err != nil {
		s.logger.Error("Failed to store transaction", map[string]any{
			"transaction_id": transaction.TransactionID,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Payment created", map[string]any{
		"transaction_id": transaction.TransactionID,
		"payment_type":   string(transaction.PaymentType),
	})
	return transaction, nil
}

// buildTransaction constructs the waiting transaction and lets the variant
// policy attach its artifacts
func (s *Service) buildTransaction(req CreateRequest) *entity.Transaction {
	description := req.Description
	if description == "" {
		description = s.variant.DefaultDescription
	}

	transaction := entity.NewTransaction(
		s.ids.NewTransactionID(s.variant.IDPrefix),
		s.variant.PaymentType,
		req.Amount,
		description,
		s.timeProvider,
	)
	s.variant.attachArtifacts(s.ids, req, transaction)
	return transaction
}
