package dto

import (
	"github.com/google/uuid"

	"github.com/foodoscope/foodoscope-backend/internal/models"
)

// ErrorResponse — единый формат ошибки для клиента.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse — успешный ответ без полезной нагрузки.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterResponse — ответ на успешную регистрацию. Сессионный токен не
// выдаётся: сначала пользователь должен подтвердить email.
type RegisterResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// AuthResponse — ответ с сессионным токеном и публичными полями пользователя.
type AuthResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

// ProfileResponse — ответ с полной анкетой пользователя (без хеша пароля).
type ProfileResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// NewError создаёт ErrorResponse с заданным сообщением.
func NewError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// NewMessage создаёт MessageResponse с заданным сообщением.
func NewMessage(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
