package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/foodoscope/foodoscope-backend/internal/models"
)

// ErrCodeNotFound возвращается, когда подходящий код не найден.
var ErrCodeNotFound = errors.New("auth code not found")

// AuthCodeRepository отвечает за работу с таблицей auth_codes.
type AuthCodeRepository struct {
	db *sqlx.DB
}

// NewAuthCodeRepository создаёт экземпляр репозитория.
func NewAuthCodeRepository(db *sqlx.DB) *AuthCodeRepository {
	return &AuthCodeRepository{db: db}
}

// Create сохраняет новый код.
func (r *AuthCodeRepository) Create(ctx context.Context, userID uuid.UUID, purpose, code string, expiresAt time.Time) (*models.AuthCode, error) {
	var ac models.AuthCode
	err := r.db.GetContext(ctx, &ac, `
		INSERT INTO auth_codes (user_id, purpose, code, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, purpose, code, expires_at, created_at
	`, userID, purpose, code, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("auth code repository: create %w", err)
	}
	return &ac, nil
}

// Replace удаляет все коды пользователя с данным назначением и создаёт новый.
// Выполняется в одной транзакции: конкурентный Consume либо видит старый код,
// либо уже новый — окна «нет ни одного кода» не существует.
func (r *AuthCodeRepository) Replace(ctx context.Context, userID uuid.UUID, purpose, code string, expiresAt time.Time) (*models.AuthCode, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("auth code repository: begin tx %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM auth_codes WHERE user_id = $1 AND purpose = $2
	`, userID, purpose); err != nil {
		return nil, fmt.Errorf("auth code repository: delete stale %w", err)
	}

	var ac models.AuthCode
	if err := tx.GetContext(ctx, &ac, `
		INSERT INTO auth_codes (user_id, purpose, code, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, purpose, code, expires_at, created_at
	`, userID, purpose, code, expiresAt); err != nil {
		return nil, fmt.Errorf("auth code repository: insert %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("auth code repository: commit %w", err)
	}

	return &ac, nil
}

// Get ищет код по пользователю, назначению и значению.
// Истёкшие коды тоже возвращаются: различать «нет кода» и «код истёк» — задача сервиса.
func (r *AuthCodeRepository) Get(ctx context.Context, userID uuid.UUID, purpose, code string) (*models.AuthCode, error) {
	var ac models.AuthCode
	err := r.db.GetContext(ctx, &ac, `
		SELECT id, user_id, purpose, code, expires_at, created_at
		FROM auth_codes
		WHERE user_id = $1 AND purpose = $2 AND code = $3
		ORDER BY created_at DESC
		LIMIT 1
	`, userID, purpose, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("auth code repository: get %w", err)
	}
	return &ac, nil
}

// Delete удаляет код по идентификатору (одноразовость).
func (r *AuthCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_codes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("auth code repository: delete %w", err)
	}
	return nil
}
