package models

import (
	"time"

	"github.com/google/uuid"
)

// User описывает сущность пользователя приложения.
// Поля анкеты (пол, возраст, рост и т.д.) заполняются после онбординга
// и до этого остаются NULL.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsVerified   bool      `db:"is_verified" json:"is_verified"`
	Gender       *string   `db:"gender" json:"gender,omitempty"`
	Age          *int      `db:"age" json:"age,omitempty"`
	Location     *string   `db:"location" json:"location,omitempty"`
	Height       *float64  `db:"height" json:"height,omitempty"`
	Weight       *float64  `db:"weight" json:"weight,omitempty"`
	GoalWeight   *float64  `db:"goal_weight" json:"goal_weight,omitempty"`
	Goals        []string  `db:"goals" json:"goals,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// PublicUser содержит только те поля пользователя, которые можно отдавать
// в ответах аутентификации.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Public возвращает публичное представление пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
