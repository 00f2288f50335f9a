package payment

import (
	"strings"

	"github.com/brunovale/mock-payment-gateway/internal/domain/entity"
	errs "github.com/brunovale/mock-payment-gateway/internal/domain/error"
)

// Example CNPJ used as the receiver key on synthesized PIX responses
const ghostPixKey = "12345678000190"

// FailureKind is one entry of a variant's systemic failure catalog
type FailureKind struct {
	Kind    string
	Message string
}

// Variant is the policy value object that parameterizes the shared
// simulation engine for one payment method: required input fields,
// generated artifacts, ghost-transaction behavior and failure catalog.
type Variant struct {
	PaymentType        entity.PaymentType
	IDPrefix           string
	RequiredFields     []string
	DefaultDescription string
	GhostTransactions  bool
	FailureKinds       []FailureKind
	PaymentSystem      string
	Country            string
}

// PixVariant returns the policy for the PIX gateway instance
func PixVariant() Variant {
	return Variant{
		PaymentType:        entity.PaymentTypePix,
		IDPrefix:           "PIX",
		RequiredFields:     []string{"amount", "pixKey"},
		DefaultDescription: "PIX payment",
		GhostTransactions:  true,
		FailureKinds: []FailureKind{
			{Kind: errs.KindPixTimeout, Message: "PIX payment processing timed out"},
			{Kind: errs.KindSystemUnavailable, Message: "PIX system temporarily unavailable"},
		},
		PaymentSystem: "PIX",
		Country:       "Brazil",
	}
}

// CreditCardVariant returns the policy for the credit card gateway instance
func CreditCardVariant() Variant {
	return Variant{
		PaymentType:        entity.PaymentTypeCreditCard,
		IDPrefix:           "CARD",
		RequiredFields:     []string{"amount", "cardNumber", "cardHolderName", "expirationDate", "cvv"},
		DefaultDescription: "Credit card payment",
		GhostTransactions:  false,
		FailureKinds: []FailureKind{
			{Kind: errs.KindCardDeclined, Message: "Credit card payment was declined"},
			{Kind: errs.KindSystemUnavailable, Message: "Credit card system temporarily unavailable"},
		},
		PaymentSystem: "CREDIT_CARD",
		Country:       "Brazil",
	}
}

// VariantByName resolves a configured variant name (pix, card) to its policy
func VariantByName(name string) (Variant, bool) {
	switch strings.ToLower(name) {
	case "pix":
		return PixVariant(), true
	case "card", "credit_card", "creditcard":
		return CreditCardVariant(), true
	default:
		return Variant{}, false
	}
}

// attachArtifacts decorates a freshly built transaction with the
// variant-specific fields and payment artifacts
func (v Variant) attachArtifacts(ids *IdentifierGenerator, req CreateRequest, tx *entity.Transaction) {
	switch v.PaymentType {
	case entity.PaymentTypePix:
		tx.EndToEndID = ids.NewEndToEndID(tx.TransactionID)
		expiresAt := tx.Timestamp.Add(entity.PixExpiryOffset)
		tx.ExpiresAt = &expiresAt
		tx.ReceiverInfo = &entity.ReceiverInfo{Type: "CNPJ", Key: req.PixKey}
		code := ids.NewPixCode()
		tx.PixPaymentInfo = &entity.PixPaymentInfo{
			PixKey:           req.PixKey,
			PixCopyPasteCode: code,
			PixQrCodeUrl:     ids.PixQrCodeURL(code),
		}
	case entity.PaymentTypeCreditCard:
		tx.CardPaymentInfo = &entity.CardPaymentInfo{
			CardNumber:     maskCardNumber(req.CardNumber),
			CardHolderName: req.CardHolderName,
			ExpirationDate: req.ExpirationDate,
		}
	}
}

// maskCardNumber redacts a card number down to its last four digits.
// The full number never leaves the creation request.
func maskCardNumber(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
