package models

import (
	"time"

	"github.com/google/uuid"
)

// Назначения одноразовых кодов.
const (
	CodePurposeVerification  = "verification"
	CodePurposePasswordReset = "password_reset"
)

// AuthCode представляет одноразовый шестизначный код, привязанный к пользователю.
// Код удаляется при успешном использовании, поэтому флага used нет:
// валиден ровно тот код, который лежит в таблице и не истёк.
type AuthCode struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Purpose   string    `db:"purpose" json:"purpose"`
	Code      string    `db:"code" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired сообщает, истёк ли срок действия кода.
func (c *AuthCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
