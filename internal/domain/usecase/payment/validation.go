package payment

import (
	"github.com/shopspring/decimal"

	errs "github.com/brunovale/mock-payment-gateway/internal/domain/error"
)

// CreateRequest carries the already-parsed fields of a payment initiation.
// CVV is consumed by validation only; it is never copied onto the entity.
type CreateRequest struct {
	Amount         decimal.Decimal
	PaymentType    string
	Description    string
	PixKey         string
	CardNumber     string
	CardHolderName string
	ExpirationDate string
	CVV            string
}

// fieldPresent maps a required field name to its presence check
var fieldPresent = map[string]func(CreateRequest) bool{
	"amount":         func(r CreateRequest) bool { return r.Amount.IsPositive() },
	"pixKey":         func(r CreateRequest) bool { return r.PixKey != "" },
	"cardNumber":     func(r CreateRequest) bool { return r.CardNumber != "" },
	"cardHolderName": func(r CreateRequest) bool { return r.CardHolderName != "" },
	"expirationDate": func(r CreateRequest) bool { return r.ExpirationDate != "" },
	"cvv":            func(r CreateRequest) bool { return r.CVV != "" },
}

// validateCreate enforces the variant's payment type tag and required
// fields. The missing-fields error lists exactly the absent field names,
// in the variant's declared order.
func validateCreate(v Variant, req CreateRequest) error {
	if req.PaymentType != string(v.PaymentType) {
		return errs.NewUnsupportedPaymentTypeError(req.PaymentType, string(v.PaymentType))
	}

	var missing []string
	for _, field := range v.RequiredFields {
		present, ok := fieldPresent[field]
		if !ok || !present(req) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return errs.NewMissingFieldsError(missing)
	}

	return nil
}
