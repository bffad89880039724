package services

import (
	"errors"
	"net/http"

	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// ErrorCode is the closed set of failure conditions the identity
// endpoints can surface. Provider SDK exceptions are translated into
// these once, at the HTTP boundary.
type ErrorCode string

const (
	ErrValidation         ErrorCode = "validation_error"
	ErrDuplicateAccount   ErrorCode = "duplicate_account"
	ErrUnverifiedAccount  ErrorCode = "unverified_account"
	ErrInvalidCredentials ErrorCode = "invalid_credentials"
	ErrInvalidCode        ErrorCode = "invalid_code"
	ErrExpiredCode        ErrorCode = "expired_code"
	ErrInternal           ErrorCode = "internal_error"
)

// AuthError is a typed result carrying the HTTP status and the message
// exposed to the caller.
type AuthError struct {
	Code    ErrorCode
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewValidationError reports a locally detected bad request, before any
// remote call is made.
func NewValidationError(message string) *AuthError {
	return &AuthError{Code: ErrValidation, Status: http.StatusBadRequest, Message: message}
}

// TranslateCognitoError maps a Cognito SDK error onto the closed error
// enumeration. Recognized provider conditions become 400-class errors
// with fixed messages; anything else becomes a 500 InternalError with
// the raw provider message exposed.
func TranslateCognitoError(err error) *AuthError {
	var usernameExists *cognitotypes.UsernameExistsException
	if errors.As(err, &usernameExists) {
		return &AuthError{
			Code:    ErrDuplicateAccount,
			Status:  http.StatusBadRequest,
			Message: "User account already exists.",
		}
	}

	var notConfirmed *cognitotypes.UserNotConfirmedException
	if errors.As(err, &notConfirmed) {
		return &AuthError{
			Code:    ErrUnverifiedAccount,
			Status:  http.StatusBadRequest,
			Message: "User not verified. Please confirm your email.",
		}
	}

	var notAuthorized *cognitotypes.NotAuthorizedException
	if errors.As(err, &notAuthorized) {
		return &AuthError{
			Code:    ErrInvalidCredentials,
			Status:  http.StatusBadRequest,
			Message: "Incorrect email or password.",
		}
	}

	var codeMismatch *cognitotypes.CodeMismatchException
	if errors.As(err, &codeMismatch) {
		return &AuthError{
			Code:    ErrInvalidCode,
			Status:  http.StatusBadRequest,
			Message: "Invalid verification code.",
		}
	}

	var expiredCode *cognitotypes.ExpiredCodeException
	if errors.As(err, &expiredCode) {
		return &AuthError{
			Code:    ErrExpiredCode,
			Status:  http.StatusBadRequest,
			Message: "Verification code has expired. Request a new one.",
		}
	}

	// Surface the provider's own message when the SDK gives us one
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &AuthError{
			Code:    ErrInternal,
			Status:  http.StatusInternalServerError,
			Message: apiErr.ErrorMessage(),
		}
	}

	return &AuthError{
		Code:    ErrInternal,
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
	}
}
