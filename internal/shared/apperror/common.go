package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// RequiredField reports a missing field using its human readable name.
func RequiredField(field string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

// InvalidField reports a field that failed validation.
func InvalidField(field string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}
