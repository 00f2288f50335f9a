package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brunovale/mock-payment-gateway/internal/domain/entity"
	errs "github.com/brunovale/mock-payment-gateway/internal/domain/error"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/logger"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/random"
	"github.com/brunovale/mock-payment-gateway/mocks/port/core"
	"github.com/brunovale/mock-payment-gateway/mocks/port/persistence"
)

// instantConfig removes latency and failure injection so tests exercise
// only the decision logic under scrutiny
func instantConfig() Config {
	cfg := DefaultConfig()
	cfg.CreateLatencyMin = 0
	cfg.CreateLatencyMax = 0
	cfg.StatusLatencyMin = 0
	cfg.StatusLatencyMax = 0
	cfg.CreationFailureRate = 0
	cfg.StatusCheckFailureRate = 0
	return cfg
}

func fixedTimeProvider(fixed time.Time) *core.MockTimeProvider {
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixed)
	mockTimeProvider.On("Sleep", mock.Anything).Return()
	return mockTimeProvider
}

func TestService_CreatePayment_Pix(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should reject a mismatched payment type naming the supported one", func(t *testing.T) {
		ctx := context.Background()
		mockStore := new(persistence.MockTransactionStore)

		service := NewService(PixVariant(), instantConfig(), mockStore,
			fixedTimeProvider(fixedTime), random.NewMathRandomSource(), logger.NewNoopLogger())

		result, err := service.CreatePayment(ctx, CreateRequest{
			Amount:      decimal.NewFromInt(100),
			PaymentType: "CREDIT_CARD",
			PixKey:      "user@bank.com",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUnsupportedPaymentType)

		var typeErr *errs.UnsupportedPaymentTypeError
		assert.ErrorAs(t, err, &typeErr)
		assert.Equal(t, []string{"PIX"}, typeErr.SupportedTypes)

		mockStore.AssertNotCalled(t, "Put")
	})

	t.Run("should list exactly the missing fields", func(t *testing.T) {
		ctx := context.Background()
		mockStore := new(persistence.MockTransactionStore)

		service := NewService(PixVariant(), instantConfig(), mockStore,
			fixedTimeProvider(fixedTime), random.NewMathRandomSource(), logger.NewNoopLogger())

		result, err := service.CreatePayment(ctx, CreateRequest{
			PaymentType: "PIX",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrMissingFields)

		var missingErr *errs.MissingFieldsError
		assert.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"amount", "pixKey"}, missingErr.RequiredFields)
	})

	t.Run("should create a waiting transaction with PIX artifacts", func(t *testing.T) {
		ctx := context.Background()
		mockStore := new(persistence.MockTransactionStore)
		mockStore.On("Put", ctx, mock.Anything).Return(nil)

		service := NewService(PixVariant(), instantConfig(), mockStore,
			fixedTimeProvider(fixedTime), random.NewMathRandomSource(), logger.NewNoopLogger())

		result, err := service.CreatePayment(ctx, CreateRequest{
			Amount:      decimal.NewFromInt(100),
			PaymentType: "PIX",
			PixKey:      "user@bank.com",
		})

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, entity.StatusWaitingPayment, result.Status)
		assert.Equal(t, entity.PaymentTypePix, result.PaymentType)
		assert.Equal(t, "PIX payment", result.Description)
		assert.True(t, strings.HasPrefix(result.TransactionID, "PIX"))
		assert.Equal(t, "E"+result.TransactionID[3:15], result.EndToEndID)

		assert.NotNil(t, result.ExpiresAt)
		assert.Equal(t, fixedTime.Add(entity.PixExpiryOffset), *result.ExpiresAt)
		assert.Equal(t, fixedTime.Add(entity.EstimatedCreditOffset), result.EstimatedCreditTime)

		assert.NotNil(t, result.ReceiverInfo)
		assert.Equal(t, "CNPJ", result.ReceiverInfo.Type)
		assert.Equal(t, "user@bank.com", result.ReceiverInfo.Key)

		assert.NotNil(t, result.PixPaymentInfo)
		assert.Equal(t, "user@bank.com", result.PixPaymentInfo.PixKey)
		assert.Len(t, result.PixPaymentInfo.PixCopyPasteCode, 77)
		assert.Contains(t, result.PixPaymentInfo.PixQrCodeUrl, "api.qrserver.com")
		assert.Contains(t, result.PixPaymentInfo.PixQrCodeUrl, result.PixPaymentInfo.PixCopyPasteCode)

		assert.Nil(t, result.CardPaymentInfo)
		mockStore.AssertExpectations(t)
	})

	t.Run("should keep the caller supplied description", func(t *testing.T) {
		ctx := context.Background()
		mockStore := new(persistence.MockTransactionStore)
		mockStore.On("Put", ctx, mock.Anything).Return(nil)

		service := NewService(PixVariant(), instantConfig(), mockStore,
			fixedTimeProvider(fixedTime), random.NewMathRandomSource(), logger.NewNoopLogger())

		result, err := service.CreatePayment(ctx, CreateRequest{
			Amount:      decimal.NewFromInt(25),
			PaymentType: "PIX",
			PixKey:      "user@bank.com",
			Description: "concert ticket",
		})

		assert.NoError(t, err)
		assert.Equal(t, "concert ticket", result.Description)
	})

	t.Run("should fail with a variant failure kind when the systemic hook triggers", func(t *testing.T) {
		ctx := context.Background()
		mockStore := new(persistence.MockTransactionStore)
		mockRandom := new(core.MockRandomSource)
		mockRandom.On("Float64").Return(0.0).Once() // systemic roll
		mockRandom.On("Intn", 2).Return(0).Once()   // pick first failure kind

		cfg := instantConfig()
		cfg.CreationFailureRate = 1.0

		service := NewService(PixVariant(), cfg, mockStore,
			fixedTimeProvider(fixedTime), mockRandom, logger.NewNoopLogger())

		result, err := service.CreatePayment(ctx, CreateRequest{
			Amount:      decimal.NewFromInt(100),
			PaymentType: "PIX",
			PixKey:      "user@bank.com",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrSystemicFailure)

		var systemicErr *errs.SystemicError
		assert.ErrorAs(t, err, &systemicErr)
		assert.Equal(t, errs.KindPixTimeout, systemicErr.Kind)

		mockStore.AssertNotCalled(t, "Put")
		mockRandom.AssertExpectations(t)
	})
}

func TestService_CreatePayment_CreditCard(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should list exactly the missing card fields", func(t *testing.T) {
		ctx := context.Background()
		mockStore := new(persistence.MockTransactionStore)

		service := NewService(CreditCardVariant(), instantConfig(), mockStore,
			fixedTimeProvider(fixedTime), random.NewMathRandomSource(), logger.NewNoopLogger())

		// cardNumber and cvv omitted, everything else present
		result, err := service.CreatePayment(ctx, CreateRequest{
			Amount:         decimal.NewFromInt(250),
			PaymentType:    "CREDIT_CARD",
			CardHolderName: "MARIA SILVA",
			ExpirationDate: "12/27",
		})

		assert.Nil(t, result)

		var missingErr *errs.MissingFieldsError
		assert.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"cardNumber", "cvv"}, missingErr.RequiredFields)
	})

	t.Run("should store a masked card number and never the CVV", func(t *testing.T) {
		ctx := context.Background()
		mockStore := new(persistence.MockTransactionStore)
		mockStore.On("Put", ctx, mock.Anything).Return(nil)

		service := NewService(CreditCardVariant(), instantConfig(), mockStore,
			fixedTimeProvider(fixedTime), random.NewMathRandomSource(), logger.NewNoopLogger())

		result, err := service.CreatePayment(ctx, CreateRequest{
			Amount:         decimal.NewFromInt(250),
			PaymentType:    "CREDIT_CARD",
			CardNumber:     "4111 1111 1111 1111",
			CardHolderName: "MARIA SILVA",
			ExpirationDate: "12/27",
			CVV:            "987",
		})

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusWaitingPayment, result.Status)
		assert.Equal(t, entity.PaymentTypeCreditCard, result.PaymentType)
		assert.Equal(t, "Credit card payment", result.Description)
		assert.True(t, strings.HasPrefix(result.TransactionID, "CARD"))

		assert.NotNil(t, result.CardPaymentInfo)
		assert.Equal(t, "**** **** **** 1111", result.CardPaymentInfo.CardNumber)
		assert.Equal(t, "MARIA SILVA", result.CardPaymentInfo.CardHolderName)
		assert.Equal(t, "12/27", result.CardPaymentInfo.ExpirationDate)

		// No PIX fields, no end-to-end ID, no expiry on the card variant
		assert.Nil(t, result.PixPaymentInfo)
		assert.Nil(t, result.ReceiverInfo)
		assert.Empty(t, result.EndToEndID)
		assert.Nil(t, result.ExpiresAt)
	})

	t.Run("should fail with a card failure kind when the systemic hook triggers", func(t *testing.T) {
		ctx := context.Background()
		mockStore := new(persistence.MockTransactionStore)
		mockRandom := new(core.MockRandomSource)
		mockRandom.On("Float64").Return(0.0).Once()
		mockRandom.On("Intn", 2).Return(1).Once() // pick second failure kind

		cfg := instantConfig()
		cfg.CreationFailureRate = 1.0

		service := NewService(CreditCardVariant(), cfg, mockStore,
			fixedTimeProvider(fixedTime), mockRandom, logger.NewNoopLogger())

		_, err := service.CreatePayment(ctx, CreateRequest{
			Amount:         decimal.NewFromInt(250),
			PaymentType:    "CREDIT_CARD",
			CardNumber:     "4111111111111111",
			CardHolderName: "MARIA SILVA",
			ExpirationDate: "12/27",
			CVV:            "987",
		})

		var systemicErr *errs.SystemicError
		assert.ErrorAs(t, err, &systemicErr)
		assert.Equal(t, errs.KindSystemUnavailable, systemicErr.Kind)
	})
}
