package error

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUnsupportedPaymentType = 4001
	CodeMissingFields          = 4002
	CodeTransactionNotFound    = 4040

	// 5xxx - Server errors
	CodeSystemicFailure = 5001
	CodeInternalServer  = 5000
)

// Base error types
var (
	// ErrUnsupportedPaymentType is returned when the payment type does not
	// match the variant served by this gateway instance
	ErrUnsupportedPaymentType = errors.New("unsupported payment type")

	// ErrMissingFields is returned when required payment fields are absent
	ErrMissingFields = errors.New("missing required payment information")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSystemicFailure is returned when the gateway simulates an outage
	ErrSystemicFailure = errors.New("systemic gateway failure")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Gateway-level error kind codes carried on systemic failures
const (
	KindPixTimeout        = "PIX_TIMEOUT"
	KindCardDeclined      = "CARD_DECLINED"
	KindSystemUnavailable = "SYSTEM_UNAVAILABLE"
	KindStatusCheckFailed = "STATUS_CHECK_FAILED"
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedPaymentType):
		return CodeUnsupportedPaymentType
	case errors.Is(err, ErrMissingFields):
		return CodeMissingFields
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrSystemicFailure):
		return CodeSystemicFailure
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps domain errors to the status code the routing layer
// should answer with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedPaymentType), errors.Is(err, ErrMissingFields):
		return http.StatusBadRequest
	case errors.Is(err, ErrTransactionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// UnsupportedPaymentTypeError reports a creation request whose payment
// type does not match the variant this gateway serves
type UnsupportedPaymentTypeError struct {
	Requested      string
	SupportedTypes []string
}

// Error implements the error interface
func (e *UnsupportedPaymentTypeError) Error() string {
	return fmt.Sprintf("only %s payments are supported, got %q",
		strings.Join(e.SupportedTypes, ", "), e.Requested)
}

// Is checks if the target error is an ErrUnsupportedPaymentType
func (e *UnsupportedPaymentTypeError) Is(target error) bool {
	return target == ErrUnsupportedPaymentType
}

// LogFields returns a map of fields for structured logging
func (e *UnsupportedPaymentTypeError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "unsupported_payment_type",
		"requested_type":  e.Requested,
		"supported_types": e.SupportedTypes,
		"error_code":      CodeUnsupportedPaymentType,
	}
}

// NewUnsupportedPaymentTypeError creates a new unsupported payment type error
func NewUnsupportedPaymentTypeError(requested string, supported ...string) error {
	return &UnsupportedPaymentTypeError{
		Requested:      requested,
		SupportedTypes: supported,
	}
}

// MissingFieldsError lists exactly the required fields absent from the
// rejected request
type MissingFieldsError struct {
	RequiredFields []string
}

// Error implements the error interface
func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required payment information: %s",
		strings.Join(e.RequiredFields, ", "))
}

// Is checks if the target error is an ErrMissingFields
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// LogFields returns a map of fields for structured logging
func (e *MissingFieldsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "missing_fields",
		"required_fields": e.RequiredFields,
		"error_code":      CodeMissingFields,
	}
}

// NewMissingFieldsError creates a new missing fields error
func NewMissingFieldsError(requiredFields []string) error {
	return &MissingFieldsError{RequiredFields: requiredFields}
}

// NotFoundError reports a status lookup for an unknown transaction ID
type NotFoundError struct {
	TransactionID string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction not found: %s", e.TransactionID)
}

// Is checks if the target error is an ErrTransactionNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTransactionNotFound
}

// LogFields returns a map of fields for structured logging
func (e *NotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transaction_not_found",
		"transaction_id": e.TransactionID,
		"error_code":     CodeTransactionNotFound,
	}
}

// NewNotFoundError creates a new transaction not found error
func NewNotFoundError(transactionID string) error {
	return &NotFoundError{TransactionID: transactionID}
}

// SystemicError represents an injected gateway-level failure with the
// wire-level kind code the real gateway would emit
type SystemicError struct {
	Kind    string
	Message string
}

// Error implements the error interface
func (e *SystemicError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is checks if the target error is an ErrSystemicFailure
func (e *SystemicError) Is(target error) bool {
	return target == ErrSystemicFailure
}

// LogFields returns a map of fields for structured logging
func (e *SystemicError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "systemic_failure",
		"error_kind": e.Kind,
		"message":    e.Message,
		"error_code": CodeSystemicFailure,
	}
}

// NewSystemicError creates a new injected gateway failure
func NewSystemicError(kind, message string) error {
	return &SystemicError{Kind: kind, Message: message}
}

// IsNotFoundError checks if the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError checks if the error is recoverable by fixing the request
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedPaymentType) || errors.Is(err, ErrMissingFields)
}

// IsSystemicError checks if the error is an injected transient failure
func IsSystemicError(err error) bool {
	return errors.Is(err, ErrSystemicFailure)
}
