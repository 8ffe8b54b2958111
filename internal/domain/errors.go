package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrTokenNotFound      = errors.New("session token not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSameAccount        = errors.New("source and target accounts must differ")
	ErrAmountNotPositive  = errors.New("transfer amount must be positive")
	ErrDescriptionTooLong = errors.New("transfer description exceeds 200 characters")
	ErrPointsNotPositive  = errors.New("points to convert must be positive")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrSnapshotNotFound   = errors.New("account snapshot not found")
)

// FieldError is a single structured validation failure reported by the
// backend for one request field.
type FieldError struct {
	Field string
	Msg   string
}

// RequestError carries a non-2xx backend response. Message and FieldErrors
// are populated from the response body when the backend supplied them.
type RequestError struct {
	Status      int
	Message     string
	FieldErrors []FieldError
}

func (e *RequestError) Error() string {
	detail := strings.TrimSpace(e.Message)
	if detail == "" && len(e.FieldErrors) > 0 {
		detail = e.FieldErrors[0].Msg
	}
	if detail == "" {
		return fmt.Sprintf("backend request failed: status %d", e.Status)
	}

	return fmt.Sprintf("backend request failed: status %d: %s", e.Status, detail)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
