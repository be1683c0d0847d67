package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeConflict           ErrorCode = "CONFLICT"
	ErrCodeExpired            ErrorCode = "EXPIRED"
	ErrCodeInvalidCode        ErrorCode = "INVALID_CODE"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeNotVerified        ErrorCode = "NOT_VERIFIED"
	ErrCodeDeliveryFailed     ErrorCode = "DELIVERY_FAILED"
	ErrCodeValidation         ErrorCode = "VALIDATION_ERROR"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// AppError — типизированная бизнес-ошибка с HTTP статусом для границы API.
type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is позволяет сравнивать ошибки через errors.Is по коду и сообщению,
// чтобы сентинел-значения ниже работали как обычные ошибки.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code && e.Message == appErr.Message
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// codeToHTTPStatus отражает политику API: все бизнес-ошибки — 400,
// кроме неудачной доставки письма (500) и внутренних сбоев (500).
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeDeliveryFailed, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Status возвращает HTTP статус для произвольной ошибки.
// Неизвестные ошибки считаются внутренними.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// Message возвращает сообщение, пригодное для клиента.
// Детали внутренних ошибок наружу не отдаются.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "внутренняя ошибка сервера"
}

func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

var (
	ErrDuplicateEmail       = New(ErrCodeConflict, "пользователь с таким email уже существует")
	ErrUserNotFound         = New(ErrCodeNotFound, "пользователь не найден")
	ErrAlreadyVerified      = New(ErrCodeConflict, "email уже подтверждён")
	ErrInvalidCode          = New(ErrCodeInvalidCode, "неверный код")
	ErrExpiredCode          = New(ErrCodeExpired, "срок действия кода истёк")
	ErrInvalidCredentials   = New(ErrCodeInvalidCredentials, "неверный email или пароль")
	ErrNotVerified          = New(ErrCodeNotVerified, "сначала подтвердите ваш email")
	ErrInvalidOrExpiredCode = New(ErrCodeInvalidCode, "неверный или истёкший код восстановления")
	ErrDeliveryFailed       = New(ErrCodeDeliveryFailed, "не удалось отправить письмо, попробуйте позже")
)
