package dto

// BaseError is the error envelope for all HTTP error responses.
// Code is the machine-oriented snake_case kind, Message the short
// human-readable description, Details optional extra context.
type BaseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Semantic aliases, JSON-compatible with BaseError; they exist so swagger
// failure responses read distinctly.

// ValidationErrorResponse 400
type ValidationErrorResponse BaseError

// NotFoundErrorResponse 404
type NotFoundErrorResponse BaseError

// ConflictErrorResponse 409
type ConflictErrorResponse BaseError

// UpstreamErrorResponse 502
type UpstreamErrorResponse BaseError

// InternalErrorResponse 500
type InternalErrorResponse BaseError

func NewValidationError(message string) ValidationErrorResponse {
	return ValidationErrorResponse{Code: "validation_error", Message: message}
}

func NewNotFoundError(message string) NotFoundErrorResponse {
	return NotFoundErrorResponse{Code: "not_found", Message: message}
}

func NewConflictError(message string) ConflictErrorResponse {
	return ConflictErrorResponse{Code: "conflict", Message: message}
}

func NewUpstreamError(message string) UpstreamErrorResponse {
	return UpstreamErrorResponse{Code: "upstream_error", Message: message}
}

func NewInternalError(details string) InternalErrorResponse {
	return InternalErrorResponse{Code: "internal_error", Message: "internal server error", Details: details}
}
