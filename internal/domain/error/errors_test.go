package error

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Run("should map known errors to their codes", func(t *testing.T) {
		assert.Equal(t, CodeUnsupportedPaymentType, ErrorCode(ErrUnsupportedPaymentType))
		assert.Equal(t, CodeMissingFields, ErrorCode(ErrMissingFields))
		assert.Equal(t, CodeTransactionNotFound, ErrorCode(ErrTransactionNotFound))
		assert.Equal(t, CodeSystemicFailure, ErrorCode(ErrSystemicFailure))
	})

	t.Run("should fall back to the internal server code", func(t *testing.T) {
		assert.Equal(t, CodeInternalServer, ErrorCode(errors.New("some other error")))
	})

	t.Run("should resolve through typed wrappers", func(t *testing.T) {
		assert.Equal(t, CodeTransactionNotFound, ErrorCode(NewNotFoundError("PIX-1")))
		assert.Equal(t, CodeMissingFields, ErrorCode(NewMissingFieldsError([]string{"amount"})))
		assert.Equal(t, CodeSystemicFailure, ErrorCode(NewSystemicError(KindPixTimeout, "timeout")))
	})
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewUnsupportedPaymentTypeError("CREDIT_CARD", "PIX")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewMissingFieldsError([]string{"pixKey"})))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFoundError("PIX-1")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(NewSystemicError(KindSystemUnavailable, "down")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("unexpected")))
}

func TestTypedErrors(t *testing.T) {
	t.Run("should match their sentinel via errors.Is", func(t *testing.T) {
		assert.ErrorIs(t, NewUnsupportedPaymentTypeError("BOLETO", "PIX"), ErrUnsupportedPaymentType)
		assert.ErrorIs(t, NewMissingFieldsError([]string{"amount"}), ErrMissingFields)
		assert.ErrorIs(t, NewNotFoundError("CARD-1"), ErrTransactionNotFound)
		assert.ErrorIs(t, NewSystemicError(KindCardDeclined, "declined"), ErrSystemicFailure)
	})

	t.Run("should expose their payloads via errors.As", func(t *testing.T) {
		var missingErr *MissingFieldsError
		assert.ErrorAs(t, NewMissingFieldsError([]string{"amount", "pixKey"}), &missingErr)
		assert.Equal(t, []string{"amount", "pixKey"}, missingErr.RequiredFields)

		var systemicErr *SystemicError
		assert.ErrorAs(t, NewSystemicError(KindPixTimeout, "PIX system timeout"), &systemicErr)
		assert.Equal(t, KindPixTimeout, systemicErr.Kind)
		assert.Equal(t, "PIX system timeout", systemicErr.Message)
	})
}

func TestClassificationHelpers(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("PIX-1")))
	assert.False(t, IsNotFoundError(ErrMissingFields))

	assert.True(t, IsValidationError(NewMissingFieldsError([]string{"cvv"})))
	assert.True(t, IsValidationError(NewUnsupportedPaymentTypeError("PIX", "CREDIT_CARD")))
	assert.False(t, IsValidationError(NewNotFoundError("PIX-1")))

	assert.True(t, IsSystemicError(NewSystemicError(KindStatusCheckFailed, "retry")))
	assert.False(t, IsSystemicError(ErrTransactionNotFound))
}
