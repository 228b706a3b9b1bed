package lendcore

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

// TooManyRequestError возвращается при ответе ядра 429 и несет период,
// на который стоит отложить повтор.
type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("Too many requests, retry after %s", e.RetryAfter)
}

// IsNotFound сообщает, что ядро ответило 404 на адресный запрос.
func IsNotFound(err error) bool {
	var statusErr *StatusCodeError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// IsUnauthorized сообщает, что ядро отвергло учетные данные.
func IsUnauthorized(err error) bool {
	var statusErr *StatusCodeError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized
}
