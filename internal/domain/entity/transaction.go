package entity

import (
	"time"

	"github.com/shopspring/decimal"

	tport "github.com/brunovale/mock-payment-gateway/internal/domain/port/core"
)

// TransactionStatus defines possible status values for a simulated payment
type TransactionStatus string

// TransactionStatus constants
const (
	StatusWaitingPayment TransactionStatus = "waiting_payment"
	StatusCompleted      TransactionStatus = "completed"
)

// PaymentType represents the payment method of a transaction
type PaymentType string

// Payment types
const (
	PaymentTypePix        PaymentType = "PIX"
	PaymentTypeCreditCard PaymentType = "CREDIT_CARD"
)

// Offsets applied at creation time, taken from the gateway being mocked
const (
	PixExpiryOffset       = time.Hour
	EstimatedCreditOffset = 60 * time.Second
)

// ReceiverInfo identifies the receiving side of a PIX payment
type ReceiverInfo struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// PixPaymentInfo carries the artifacts a payer needs to settle a PIX
// transaction; only exposed while the transaction is waiting for payment
type PixPaymentInfo struct {
	PixKey           string `json:"pixKey"`
	PixCopyPasteCode string `json:"pixCopyPasteCode"`
	PixQrCodeUrl     string `json:"pixQrCodeUrl"`
}

// CardPaymentInfo echoes the card used for a credit card transaction.
// The card number is stored masked; the CVV never reaches this struct.
type CardPaymentInfo struct {
	CardNumber     string `json:"cardNumber"`
	CardHolderName string `json:"cardHolderName"`
	ExpirationDate string `json:"expirationDate"`
}

// Transaction represents one simulated payment attempt
type Transaction struct {
	TransactionID       string            // Unique identifier, immutable
	EndToEndID          string            // PIX end-to-end identifier, empty for cards
	Amount              decimal.Decimal   // Amount supplied by the caller
	Description         string            // Free-text description
	Status              TransactionStatus // Current status, mutated only by polls
	PaymentType         PaymentType       // Fixed per variant
	Timestamp           time.Time         // Creation instant
	LastUpdated         *time.Time        // Instant of last status mutation (nullable)
	ExpiresAt           *time.Time        // PIX only: creation + 1h
	EstimatedCreditTime time.Time         // Creation + 60s
	ReceiverInfo        *ReceiverInfo     // PIX only
	PixPaymentInfo      *PixPaymentInfo   // PIX settlement artifacts
	CardPaymentInfo     *CardPaymentInfo  // Credit card artifacts
}

// NewTransaction creates a transaction in its initial waiting state.
// Artifacts and variant-specific fields are attached by the variant policy.
func NewTransaction(
	transactionID string,
	paymentType PaymentType,
	amount decimal.Decimal,
	description string,
	timeProvider tport.TimeProvider,
) *Transaction {
	now := timeProvider.Now()
	return &Transaction{
		TransactionID:       transactionID,
		Amount:              amount,
		Description:         description,
		Status:              StatusWaitingPayment,
		PaymentType:         paymentType,
		Timestamp:           now,
		EstimatedCreditTime: now.Add(EstimatedCreditOffset),
	}
}

// MarkCompleted transitions the transaction to completed and records the
// mutation instant. Completed is terminal: calling this again only
// refreshes LastUpdated, the status never reverts.
func (t *Transaction) MarkCompleted(timeProvider tport.TimeProvider) {
	now := timeProvider.Now()
	t.Status = StatusCompleted
	t.LastUpdated = &now
}

// ReaffirmWaiting records a progression roll that resolved to the same
// waiting status. It counts as a mutation for LastUpdated purposes but is
// a no-op once the transaction has completed.
func (t *Transaction) ReaffirmWaiting(timeProvider tport.TimeProvider) {
	if t.Status == StatusCompleted {
		return
	}
	now := timeProvider.Now()
	t.Status = StatusWaitingPayment
	t.LastUpdated = &now
}

// IsWaiting returns true while the transaction awaits settlement
func (t *Transaction) IsWaiting() bool {
	return t.Status == StatusWaitingPayment
}

// ArtifactsVisible reports whether payment artifacts may appear in a
// response assembled from this transaction
func (t *Transaction) ArtifactsVisible() bool {
	return t.Status == StatusWaitingPayment
}
