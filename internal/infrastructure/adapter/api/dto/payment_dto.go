package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brunovale/mock-payment-gateway/internal/domain/entity"
	"github.com/brunovale/mock-payment-gateway/internal/domain/usecase/payment"
)

// CreatePaymentRequest represents the API request for initiating a payment.
// Field presence is validated by the engine, not by binding tags, so the
// missing-fields error can list every absent field at once.
type CreatePaymentRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	PaymentType    string          `json:"paymentType"`
	Description    string          `json:"description"`
	PixKey         string          `json:"pixKey"`
	CardNumber     string          `json:"cardNumber"`
	CardHolderName string          `json:"cardHolderName"`
	ExpirationDate string          `json:"expirationDate"`
	CVV            string          `json:"cvv"`
}

// ToCreateRequest maps the API request onto the engine's request type
func (r CreatePaymentRequest) ToCreateRequest() payment.CreateRequest {
	return payment.CreateRequest{
		Amount:         r.Amount,
		PaymentType:    r.PaymentType,
		Description:    r.Description,
		PixKey:         r.PixKey,
		CardNumber:     r.CardNumber,
		CardHolderName: r.CardHolderName,
		ExpirationDate: r.ExpirationDate,
		CVV:            r.CVV,
	}
}

// TransactionResponse represents the API response for a created payment.
// The CVV supplied at creation is never part of this shape.
type TransactionResponse struct {
	Success             bool                    `json:"success"`
	TransactionID       string                  `json:"transactionId"`
	EndToEndID          string                  `json:"endToEndId,omitempty"`
	Amount              decimal.Decimal         `json:"amount"`
	Description         string                  `json:"description"`
	Status              string                  `json:"status"`
	ReceiverInfo        *entity.ReceiverInfo    `json:"receiverInfo,omitempty"`
	PaymentType         string                  `json:"paymentType"`
	Timestamp           time.Time               `json:"timestamp"`
	ExpiresAt           *time.Time              `json:"expiresAt,omitempty"`
	PixPaymentInfo      *entity.PixPaymentInfo  `json:"pixPaymentInfo,omitempty"`
	CardPaymentInfo     *entity.CardPaymentInfo `json:"cardPaymentInfo,omitempty"`
	EstimatedCreditTime time.Time               `json:"estimatedCreditTime"`
}

// NewTransactionResponse builds the creation success body from the stored
// transaction
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		Success:             true,
		TransactionID:       t.TransactionID,
		EndToEndID:          t.EndToEndID,
		Amount:              t.Amount,
		Description:         t.Description,
		Status:              string(t.Status),
		ReceiverInfo:        t.ReceiverInfo,
		PaymentType:         string(t.PaymentType),
		Timestamp:           t.Timestamp,
		ExpiresAt:           t.ExpiresAt,
		PixPaymentInfo:      t.PixPaymentInfo,
		CardPaymentInfo:     t.CardPaymentInfo,
		EstimatedCreditTime: t.EstimatedCreditTime,
	}
}

// StatusResponse represents the API response for a status poll. Ghost
// responses carry no amount, description or payment type; artifacts appear
// only while the status is waiting_payment.
type StatusResponse struct {
	Success         bool                    `json:"success"`
	TransactionID   string                  `json:"transactionId"`
	Status          string                  `json:"status"`
	Amount          *decimal.Decimal        `json:"amount,omitempty"`
	Description     string                  `json:"description,omitempty"`
	PaymentType     string                  `json:"paymentType,omitempty"`
	Timestamp       time.Time               `json:"timestamp"`
	PixPaymentInfo  *entity.PixPaymentInfo  `json:"pixPaymentInfo,omitempty"`
	CardPaymentInfo *entity.CardPaymentInfo `json:"cardPaymentInfo,omitempty"`
	LastUpdated     time.Time               `json:"lastUpdated"`
}

// NewStatusResponse builds the status body from the engine's result
func NewStatusResponse(r *payment.StatusResult) StatusResponse {
	return StatusResponse{
		Success:         true,
		TransactionID:   r.TransactionID,
		Status:          string(r.Status),
		Amount:          r.Amount,
		Description:     r.Description,
		PaymentType:     string(r.PaymentType),
		Timestamp:       r.Timestamp,
		PixPaymentInfo:  r.PixPaymentInfo,
		CardPaymentInfo: r.CardPaymentInfo,
		LastUpdated:     r.LastUpdated,
	}
}

// HealthResponse represents the health endpoint body
type HealthResponse struct {
	Status        string `json:"status"`
	PaymentSystem string `json:"paymentSystem"`
	Country       string `json:"country"`
}
