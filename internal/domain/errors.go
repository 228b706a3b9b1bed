package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrMissingField   = errors.New("missing field")
	ErrInvalidSortKey = errors.New("invalid sort key")

	ErrPaidDateRequired = errors.New("paid date required")
	ErrRecordNotFound   = errors.New("record not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
)

// InvalidTransitionError возвращается при попытке перевести займ в состояние,
// недостижимое из текущего. Состояние при этом не меняется.
type InvalidTransitionError struct {
	From LoanStatusType
	To   LoanStatusType
}

func NewInvalidTransitionError(from, to LoanStatusType) error {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// MissingFieldError уточняет ErrMissingField именем отсутствующего атрибута.
type MissingFieldError struct {
	Field string
}

func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
