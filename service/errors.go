package service

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrDuplicateCode     = errors.New("duplicate order code")
	ErrConflict          = errors.New("conflict")
	ErrInvalidOTP        = errors.New("invalid or expired otp")
	ErrAIUnavailable     = errors.New("ai assistant unavailable")
	ErrNotConfigured     = errors.New("not configured")
	// ErrAmountMismatch số tiền client gửi lên không khớp với số tiền tính lại ở server
	ErrAmountMismatch = errors.New("amount mismatch")
)

// ValidationError lỗi dữ liệu đầu vào, trả về 400
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation true với ValidationError và ErrAmountMismatch
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrAmountMismatch)
}
