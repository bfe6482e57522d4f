package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrAlreadyConfirmed indicates that a booking's payment was already confirmed
// by an earlier call; the record was not modified again.
var ErrAlreadyConfirmed = errors.New("booking already confirmed")

// ErrVerificationFailed indicates the payment gateway reported the payment as
// not paid. Transport errors talking to the gateway are wrapped with
// ErrGatewayUnavailable instead so callers can tell whether a retry is safe.
var ErrVerificationFailed = errors.New("payment verification failed")

// ErrGatewayUnavailable indicates the verification call to the payment
// gateway could not be completed. The payment may well be fine; retrying is
// safe.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// AppError carries an HTTP status code alongside the error for handlers that
// want to map repository/service failures directly onto a response.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewUnauthorizedError creates an AppError wrapping ErrUnauthorized.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

// NewInternalServerError creates a 500 AppError without a wrapped sentinel.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}
