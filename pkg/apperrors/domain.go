package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the parking domain. Uniqueness conflicts are
// surfaced as 400, matching the public API contract, not 409.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into a 400.
func ErrAlreadyExists(err error, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", message, http.StatusBadRequest)
}

// ErrInvalidOperation flags an operation that is not valid in the current state.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrAccountNotVerified = New(
	CodeForbidden,
	"auth",
	"Account not verified. Please verify OTP.",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusBadRequest,
)

var ErrInvalidOtp = New(
	CodeInvalidStatus,
	"auth",
	"Invalid or expired OTP",
	http.StatusBadRequest,
)

var ErrUserAlreadyVerified = New(
	CodeInvalidOperation,
	"auth",
	"User not found or already verified",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Admin access required",
	http.StatusForbidden,
)

// ErrCannotModifySelf guards admin self-deletion.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- Vehicles ---

var ErrPlateAlreadyExists = New(
	CodeAlreadyExists,
	"vehicle",
	"Plate number already exists",
	http.StatusBadRequest,
)

// --- Slot requests ---

// ErrRequestNotProcessable covers both a missing request and one that already left the
// pending state; callers cannot tell the two apart.
var ErrRequestNotProcessable = New(
	CodeNotFound,
	"slot_request",
	"Request not found or already processed",
	http.StatusNotFound,
)

var ErrRequestNotEditable = New(
	CodeNotFound,
	"slot_request",
	"Request not found or not editable",
	http.StatusNotFound,
)

var ErrNoCompatibleSlots = New(
	CodeInvalidOperation,
	"slot_request",
	"No compatible slots available",
	http.StatusBadRequest,
)

var ErrRejectReasonRequired = New(
	CodeValidationFailed,
	"slot_request",
	"Rejection reason is required",
	http.StatusBadRequest,
)
