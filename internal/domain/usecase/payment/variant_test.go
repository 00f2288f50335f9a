package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brunovale/mock-payment-gateway/internal/domain/entity"
)

func TestVariantByName(t *testing.T) {
	t.Run("should resolve pix and card names case-insensitively", func(t *testing.T) {
		for name, want := range map[string]entity.PaymentType{
			"pix":         entity.PaymentTypePix,
			"PIX":         entity.PaymentTypePix,
			"card":        entity.PaymentTypeCreditCard,
			"credit_card": entity.PaymentTypeCreditCard,
			"CreditCard":  entity.PaymentTypeCreditCard,
		} {
			variant, ok := VariantByName(name)
			assert.True(t, ok, "variant %q not resolved", name)
			assert.Equal(t, want, variant.PaymentType)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, ok := VariantByName("boleto")
		assert.False(t, ok)
	})
}

func TestVariantPolicies(t *testing.T) {
	t.Run("pix variant should require amount and pixKey and allow ghosts", func(t *testing.T) {
		v := PixVariant()

		assert.Equal(t, []string{"amount", "pixKey"}, v.RequiredFields)
		assert.True(t, v.GhostTransactions)
		assert.Equal(t, "PIX", v.IDPrefix)
		assert.Equal(t, "Brazil", v.Country)
		assert.Len(t, v.FailureKinds, 2)
	})

	t.Run("card variant should require the full card field set and forbid ghosts", func(t *testing.T) {
		v := CreditCardVariant()

		assert.Equal(t, []string{"amount", "cardNumber", "cardHolderName", "expirationDate", "cvv"}, v.RequiredFields)
		assert.False(t, v.GhostTransactions)
		assert.Equal(t, "CARD", v.IDPrefix)
		assert.Len(t, v.FailureKinds, 2)
	})
}

func TestMaskCardNumber(t *testing.T) {
	t.Run("should keep only the last four digits", func(t *testing.T) {
		assert.Equal(t, "**** **** **** 1111", maskCardNumber("4111111111111111"))
		assert.Equal(t, "**** **** **** 1111", maskCardNumber("4111 1111 1111 1111"))
		assert.Equal(t, "**** **** **** 0004", maskCardNumber("6011-0009-9013-0004"))
	})

	t.Run("should fully redact implausibly short numbers", func(t *testing.T) {
		assert.Equal(t, "****", maskCardNumber("12"))
		assert.Equal(t, "****", maskCardNumber(""))
	})
}
