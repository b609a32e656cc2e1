package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"numroute/pkg/errcodes"
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches any AppError with the same code, so callers can test against
// the sentinels below regardless of the message.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return appErr.Code == e.Code
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// Resolution failures. Configuration errors are deterministic and never
// retried; only the upstream fetch has a retry budget.
var (
	ErrInvalidOverride       = NewError(errcodes.InvalidOverride, "invalid override")
	ErrNoProvidersConfigured = NewError(errcodes.NoProvidersConfigured, "no upstreams configured")
	ErrNoAgenciesConfigured  = NewError(errcodes.NoAgenciesConfigured, "no agencies configured")
	ErrEmptyStaticPool       = NewError(errcodes.EmptyStaticPool, "static pool has no usable numbers")
	ErrInvalidStaticNumber   = NewError(errcodes.InvalidStaticNumber, "invalid static number")
	ErrUpstreamUnavailable   = NewError(errcodes.UpstreamUnavailable, "upstream unavailable")
	ErrNoAdsAvailable        = NewError(errcodes.NoAdsAvailable, "only ads enabled and ads list is empty")
	ErrNoNumbersAvailable    = NewError(errcodes.NoNumbersAvailable, "no numbers available")
	ErrInvalidAPINumber      = NewError(errcodes.InvalidAPINumber, "invalid number from upstream")
)
