package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brunovale/mock-payment-gateway/internal/domain/entity"
	errs "github.com/brunovale/mock-payment-gateway/internal/domain/error"
)

// StatusResult is the assembled answer to a status poll. For synthesized
// (ghost) transactions the amount, description and payment type are absent,
// matching the mocked gateway's sparse ghost responses.
type StatusResult struct {
	TransactionID   string
	Status          entity.TransactionStatus
	Amount          *decimal.Decimal
	Description     string
	PaymentType     entity.PaymentType
	Timestamp       time.Time
	LastUpdated     time.Time
	PixPaymentInfo  *entity.PixPaymentInfo
	CardPaymentInfo *entity.CardPaymentInfo
	Synthesized     bool
}

// CheckStatus runs the status transition engine for one poll.
//
// Order matters: latency first, then the independent transient failure
// roll (before any store access), then the lookup. Unknown IDs are a hard
// not-found for card, a coin flip between not-found and a ghost response
// for PIX. Known waiting transactions get a progression roll.
func (s *Service) CheckStatus(ctx context.Context, transactionID string) (*StatusResult, error) {
	s.logger.Info("Checking status for transaction", map[string]any{
		"transaction_id": transactionID,
	})

	s.simulateLatency(s.cfg.StatusLatencyMin, s.cfg.StatusLatencyMax)

	if s.cfg.StatusCheckFailureRate > 0 && s.random.Float64() < s.cfg.StatusCheckFailureRate {
		s.logger.Error("Status check failed", map[string]any{
			"transaction_id": transactionID,
			"error_kind":     errs.KindStatusCheckFailed,
		})
		return nil, errs.NewSystemicError(errs.KindStatusCheckFailed, "Failed to retrieve payment status")
	}

	transaction, err := s.store.Get(ctx, transactionID)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			return nil, err
		}
		return s.resolveUnknown(transactionID)
	}

	if transaction.IsWaiting() && s.random.Float64() < s.cfg.ProgressRate {
		if s.random.Float64() < s.cfg.CompletionRate {
			transaction.MarkCompleted(s.timeProvider)
		} else {
			transaction.ReaffirmWaiting(s.timeProvider)
		}
		if err := s.store.Update(ctx, transaction); err != nil {
			return nil, err
		}
		s.logger.Info("Transaction status evaluated", map[string]any{
			"transaction_id": transactionID,
			"status":         string(transaction.Status),
		})
	}

	return s.assembleStatus(transaction), nil
}

// resolveUnknown decides between not-found and a ghost response for an ID
// that was never created
func (s *Service) resolveUnknown(transactionID string) (*StatusResult, error) {
	if !s.variant.GhostTransactions {
		return nil, errs.NewNotFoundError(transactionID)
	}
	if s.random.Float64() < s.cfg.GhostNotFoundRate {
		return nil, errs.NewNotFoundError(transactionID)
	}
	return s.synthesizeStatus(transactionID), nil
}

// synthesizeStatus fabricates a plausible transaction for an unknown ID:
// random status, a creation instant within the past 24 hours, and fresh
// PIX artifacts when the fabricated status is still waiting. Nothing is
// written to the store.
func (s *Service) synthesizeStatus(transactionID string) *StatusResult {
	now := s.timeProvider.Now()

	status := entity.StatusWaitingPayment
	if s.random.Intn(2) == 1 {
		status = entity.StatusCompleted
	}

	result := &StatusResult{
		TransactionID: transactionID,
		Status:        status,
		Timestamp:     now.Add(-time.Duration(s.random.Float64() * float64(24*time.Hour))),
		LastUpdated:   now,
		Synthesized:   true,
	}
	if status == entity.StatusWaitingPayment {
		code := s.ids.NewPixCode()
		result.PixPaymentInfo = &entity.PixPaymentInfo{
			PixKey:           ghostPixKey,
			PixCopyPasteCode: code,
			PixQrCodeUrl:     s.ids.PixQrCodeURL(code),
		}
	}
	return result
}

// assembleStatus builds the response from the possibly just-mutated stored
// record. Artifacts are included only while the transaction is waiting.
func (s *Service) assembleStatus(transaction *entity.Transaction) *StatusResult {
	amount := transaction.Amount
	result := &StatusResult{
		TransactionID: transaction.TransactionID,
		Status:        transaction.Status,
		Amount:        &amount,
		Description:   transaction.Description,
		PaymentType:   transaction.PaymentType,
		Timestamp:     transaction.Timestamp,
	}

	if transaction.LastUpdated != nil {
		result.LastUpdated = *transaction.LastUpdated
	} else {
		result.LastUpdated = s.timeProvider.Now()
	}

	if transaction.ArtifactsVisible() {
		result.PixPaymentInfo = transaction.PixPaymentInfo
		result.CardPaymentInfo = transaction.CardPaymentInfo
	}
	return result
}
