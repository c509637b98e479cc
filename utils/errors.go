package utils

import (
	"errors"
)

// Authentication failures are deliberately generic: the response never says
// which factor was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Avatar ingestion failures.
var (
	ErrDownload         = errors.New("avatar download failed")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// ErrMissingIDToken means the provider's token response carried no id_token.
// Unlike other provider errors its message is safe to surface.
var ErrMissingIDToken = errors.New("missing id_token in provider response")

// ConflictError covers duplicate email/username and cross-origin identity
// collisions. Its message is safe to show to the client.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}
