package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/foodoscope/foodoscope-backend/internal/models"
	"github.com/foodoscope/foodoscope-backend/internal/pkg/apperror"
	"github.com/foodoscope/foodoscope-backend/internal/repository"
)

// CodeRepository описывает зависимости CodeService от слоя хранилища.
type CodeRepository interface {
	Create(ctx context.Context, userID uuid.UUID, purpose, code string, expiresAt time.Time) (*models.AuthCode, error)
	Replace(ctx context.Context, userID uuid.UUID, purpose, code string, expiresAt time.Time) (*models.AuthCode, error)
	Get(ctx context.Context, userID uuid.UUID, purpose, code string) (*models.AuthCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CodeService управляет жизненным циклом одноразовых шестизначных кодов:
// выпуск, перевыпуск с инвалидацией старых, одноразовое погашение.
type CodeService struct {
	repo CodeRepository
	now  func() time.Time
}

// NewCodeService создаёт сервис кодов.
func NewCodeService(repo CodeRepository) *CodeService {
	return &CodeService{
		repo: repo,
		now:  time.Now,
	}
}

// Issue генерирует новый код и сохраняет его со сроком действия now + ttl.
// Код возвращается для доставки пользователю по внешнему каналу.
func (s *CodeService) Issue(ctx context.Context, userID uuid.UUID, purpose string, ttl time.Duration) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("code service: генерация кода: %w", err)
	}

	if _, err := s.repo.Create(ctx, userID, purpose, code, s.now().Add(ttl)); err != nil {
		return "", err
	}

	return code, nil
}

// Reissue удаляет все непогашенные коды пользователя с данным назначением
// и выпускает новый: в любой момент валиден только самый свежий код.
func (s *CodeService) Reissue(ctx context.Context, userID uuid.UUID, purpose string, ttl time.Duration) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("code service: генерация кода: %w", err)
	}

	if _, err := s.repo.Replace(ctx, userID, purpose, code, s.now().Add(ttl)); err != nil {
		return "", err
	}

	return code, nil
}

// Consume проверяет код и гасит его. Отсутствие совпадения — ErrInvalidCode,
// совпадение с истёкшим сроком — ErrExpiredCode. Успешное погашение удаляет
// код: повторное использование невозможно.
func (s *CodeService) Consume(ctx context.Context, userID uuid.UUID, purpose, code string) error {
	ac, err := s.repo.Get(ctx, userID, purpose, code)
	if err != nil {
		// Бизнес-ошибка только при отсутствии кода; сбой хранилища идёт наверх как есть.
		if errors.Is(err, repository.ErrCodeNotFound) {
			return apperror.ErrInvalidCode
		}
		return err
	}

	if ac.Expired(s.now()) {
		return apperror.ErrExpiredCode
	}

	if err := s.repo.Delete(ctx, ac.ID); err != nil {
		return err
	}

	return nil
}

// generateCode возвращает равномерно случайную шестизначную строку
// с ведущими нулями (000000–999999).
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
