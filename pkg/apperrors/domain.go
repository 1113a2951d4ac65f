package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss into a 404. Used uniformly for
// "doesn't exist" and "exists but not yours" so non-owners learn nothing.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict converts a uniqueness violation into a 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// Predefined static errors.

// ErrEmailAlreadyExists - registration with a taken email.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrInvalidCredentials - unknown email or wrong password; the two cases are
// deliberately indistinguishable.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrUserNotVerified - login blocked until the email is verified.
var ErrUserNotVerified = New(
	CodeNotVerified,
	"auth",
	"Please verify your email before login",
	http.StatusForbidden,
)

// ErrInvalidToken - invalid or expired verification token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

// ErrAlreadyVerified - resend-verification for an already verified account.
var ErrAlreadyVerified = New(
	CodeInvalidOperation,
	"auth",
	"Email is already verified",
	http.StatusBadRequest,
)

// ErrWeakPassword - password below the minimum length.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// ErrFileTooLarge - upload exceeds the per-file limit.
var ErrFileTooLarge = New(
	CodeValidationFailed,
	"validation",
	"Image size must be less than 5MB",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - MIME type not allowed for image upload.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"Only JPG, JPEG, and PNG images are allowed",
	http.StatusUnsupportedMediaType,
)

// ErrInvalidPlanType - order creation for anything but the Premium plan.
var ErrInvalidPlanType = New(
	CodeValidationFailed,
	"payment",
	"Invalid plan type",
	http.StatusBadRequest,
)

// ErrInvalidPaymentSignature - gateway signature did not verify.
var ErrInvalidPaymentSignature = New(
	CodeInvalidOperation,
	"payment",
	"Payment signature verification failed",
	http.StatusBadRequest,
)
