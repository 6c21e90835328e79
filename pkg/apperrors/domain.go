package apperrors

import (
	"fmt"
	"net/http"
)

// ErrNotFound wraps a repository miss as a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrUnknownFilterValue reports a dashboard or listing filter naming a
// dimension value that does not exist.
func ErrUnknownFilterValue(dimension, value string) *AppError {
	return New(CodeUnknownFilter, "dashboard", fmt.Sprintf("Unknown %s %q", dimension, value), http.StatusBadRequest).
		WithDetails(map[string]string{dimension: value})
}

// ErrInvalidDateRange reports a malformed or inverted aggregation window.
func ErrInvalidDateRange(message string) *AppError {
	return New(CodeInvalidDateRange, "dashboard", message, http.StatusBadRequest)
}

// --- Requests ---

var ErrRequestNotFound = New(CodeNotFound, "request", "Request not found", http.StatusNotFound)

var ErrInvalidStatusTransition = New(
	CodeInvalidStatus,
	"request",
	"Status transition is not allowed",
	http.StatusBadRequest,
)

// --- Users ---

var ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)

var ErrVolunteerNotFound = New(CodeNotFound, "volunteer", "Volunteer not found", http.StatusNotFound)

var ErrVolunteerNotEligible = New(
	CodeInvalidOperation,
	"volunteer",
	"Volunteer is not approved",
	http.StatusBadRequest,
)

var ErrEmailTaken = New(CodeAlreadyExists, "user", "Email is already registered", http.StatusConflict)

var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

var ErrAccountNotApproved = New(CodeForbidden, "auth", "Account is not approved yet", http.StatusForbidden)

var ErrAlreadyDecided = New(
	CodeInvalidStatus,
	"approval",
	"User approval has already been decided",
	http.StatusConflict,
)

var ErrInsufficientPermissions = New(CodeForbidden, "auth", "Insufficient permissions", http.StatusForbidden)

// --- Files ---

var ErrFileTooLarge = New(CodeValidationFailed, "upload", "File is too large", http.StatusBadRequest)

var ErrUnsupportedFileType = New(CodeValidationFailed, "upload", "Unsupported file type", http.StatusBadRequest)
