package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/foodoscope/foodoscope-backend/internal/models"
)

// ErrUserNotFound возвращается, когда запись пользователя не найдена.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken возвращается при нарушении уникальности email.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository отвечает за работу с таблицей users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт экземпляр репозитория.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, name, password_hash, is_verified, gender, age, location, height, weight, goal_weight, goals, created_at, updated_at`

// scanUser читает строку пользователя; goals требует pq.Array.
func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.IsVerified,
		&user.Gender, &user.Age, &user.Location, &user.Height, &user.Weight,
		&user.GoalWeight, pq.Array(&user.Goals), &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create создаёт нового неподтверждённого пользователя.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, is_verified)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(
		ctx, query,
		user.Email, user.Name, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrEmailTaken
		}
		return fmt.Errorf("user repository: create %w", err)
	}

	return nil
}

// GetByEmail возвращает пользователя по email (точное совпадение, как хранится).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowxContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get by email %w", err)
	}
	return user, nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRowxContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get by id %w", err)
	}
	return user, nil
}

// SetVerified устанавливает флаг подтверждения email.
func (r *UserRepository) SetVerified(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET is_verified = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("user repository: set verified %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdatePasswordHash заменяет хеш пароля пользователя.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("user repository: update password %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateProfile обновляет только переданные (не nil) поля анкеты.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd *models.ProfileUpdate) (*models.User, error) {
	query := `
		UPDATE users SET
			name        = COALESCE($2, name),
			gender      = COALESCE($3, gender),
			age         = COALESCE($4, age),
			location    = COALESCE($5, location),
			height      = COALESCE($6, height),
			weight      = COALESCE($7, weight),
			goal_weight = COALESCE($8, goal_weight),
			goals       = COALESCE($9, goals),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var goals interface{}
	if upd.Goals != nil {
		goals = pq.Array(upd.Goals)
	}

	row := r.db.QueryRowxContext(ctx, query,
		id, upd.Name, upd.Gender, upd.Age, upd.Location,
		upd.Height, upd.Weight, upd.GoalWeight, goals,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: update profile %w", err)
	}
	return user, nil
}
