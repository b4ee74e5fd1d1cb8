package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrValidation = errors.New("validation failed")
var ErrAuthFailure = errors.New("invalid email or password")
var ErrAccessDenied = errors.New("access denied")
var ErrNotFound = errors.New("not found")
var ErrInvalidConfirmation = errors.New("invalid or expired confirmation")
var ErrTransport = errors.New("identity provider request failed")

var (
	ErrClientNotFound        = fmt.Errorf("client %w", ErrNotFound)
	ErrMediaNotFound         = fmt.Errorf("media item %w", ErrNotFound)
	ErrPortfolioItemNotFound = fmt.Errorf("portfolio item %w", ErrNotFound)
	ErrViewNotFound          = fmt.Errorf("view %w", ErrNotFound)
)

// ValidationError reports missing or malformed input fields. It is returned
// before any store mutation takes place.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Identity provider error codes.
const (
	CodeUserNotFound    = "auth/user-not-found"
	CodeWrongPassword   = "auth/wrong-password"
	CodeInvalidEmail    = "auth/invalid-email"
	CodeTooManyRequests = "auth/too-many-requests"
	CodeEmailInUse      = "auth/email-already-in-use"
	CodeInternal        = "auth/internal-error"
)

var transportMessages = map[string]string{
	CodeUserNotFound:    "No account found with this email.",
	CodeWrongPassword:   "Incorrect password.",
	CodeInvalidEmail:    "Invalid email address.",
	CodeTooManyRequests: "Too many failed attempts. Please try again later.",
	CodeEmailInUse:      "An account with this email already exists.",
}

const genericTransportMessage = "Login failed. Please check your credentials."

// TransportError is a rejected call to a remote identity or document
// provider, tagged with the provider's error code.
type TransportError struct {
	Code string
	Err  error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Message maps the error code to the text shown to the user. Unrecognised
// codes fall back to a generic message.
func (e *TransportError) Message() string {
	if msg, ok := transportMessages[e.Code]; ok {
		return msg
	}
	return genericTransportMessage
}

// IsCredentialError reports whether the code describes bad user input rather
// than a provider outage.
func (e *TransportError) IsCredentialError() bool {
	_, ok := transportMessages[e.Code]
	return ok
}
