package dto

import "time"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned for rejected creation requests,
// listing either the single supported payment type or the missing fields
type ValidationErrorResponse struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error"`
	SupportedTypes []string `json:"supportedTypes,omitempty"`
	RequiredFields []string `json:"requiredFields,omitempty"`
}

// SystemicErrorResponse is returned for injected gateway failures
type SystemicErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	ErrorCode string    `json:"errorCode"`
	Timestamp time.Time `json:"timestamp"`
}

// NotFoundResponse is returned when a polled transaction does not exist
type NotFoundResponse struct {
	Success       bool   `json:"success"`
	Error         string `json:"error"`
	TransactionID string `json:"transactionId"`
}
