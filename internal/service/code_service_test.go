package service

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/foodoscope/foodoscope-backend/internal/models"
	"github.com/foodoscope/foodoscope-backend/internal/pkg/apperror"
	"github.com/foodoscope/foodoscope-backend/internal/repository"
)

// mockCodeRepository реализует CodeRepository для тестов.
type mockCodeRepository struct {
	codes []*models.AuthCode
}

func newMockCodeRepository() *mockCodeRepository {
	return &mockCodeRepository{}
}

func (m *mockCodeRepository) Create(ctx context.Context, userID uuid.UUID, purpose, code string, expiresAt time.Time) (*models.AuthCode, error) {
	ac := &models.AuthCode{
		ID:        uuid.New(),
		UserID:    userID,
		Purpose:   purpose,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	m.codes = append(m.codes, ac)
	return ac, nil
}

func (m *mockCodeRepository) Replace(ctx context.Context, userID uuid.UUID, purpose, code string, expiresAt time.Time) (*models.AuthCode, error) {
	kept := m.codes[:0]
	for _, ac := range m.codes {
		if ac.UserID != userID || ac.Purpose != purpose {
			kept = append(kept, ac)
		}
	}
	m.codes = kept
	return m.Create(ctx, userID, purpose, code, expiresAt)
}

func (m *mockCodeRepository) Get(ctx context.Context, userID uuid.UUID, purpose, code string) (*models.AuthCode, error) {
	for _, ac := range m.codes {
		if ac.UserID == userID && ac.Purpose == purpose && ac.Code == code {
			return ac, nil
		}
	}
	return nil, repository.ErrCodeNotFound
}

func (m *mockCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, ac := range m.codes {
		if ac.ID == id {
			m.codes = append(m.codes[:i], m.codes[i+1:]...)
			return nil
		}
	}
	return repository.ErrCodeNotFound
}

// countFor возвращает число кодов пользователя с данным назначением.
func (m *mockCodeRepository) countFor(userID uuid.UUID, purpose string) int {
	n := 0
	for _, ac := range m.codes {
		if ac.UserID == userID && ac.Purpose == purpose {
			n++
		}
	}
	return n
}

// failingCodeRepository возвращает заданную ошибку из Get, имитируя сбой базы.
type failingCodeRepository struct {
	*mockCodeRepository
	getErr error
}

func (m *failingCodeRepository) Get(ctx context.Context, userID uuid.UUID, purpose, code string) (*models.AuthCode, error) {
	return nil, m.getErr
}

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func TestCodeService_IssueAndConsume(t *testing.T) {
	repo := newMockCodeRepository()
	service := NewCodeService(repo)

	ctx := context.Background()
	userID := uuid.New()

	code, err := service.Issue(ctx, userID, models.CodePurposeVerification, 10*time.Minute)
	if err != nil {
		t.Fatalf("issue вернул ошибку: %v", err)
	}
	if !sixDigits.MatchString(code) {
		t.Fatalf("ожидался шестизначный код, получили %q", code)
	}

	if err := service.Consume(ctx, userID, models.CodePurposeVerification, code); err != nil {
		t.Fatalf("consume вернул ошибку: %v", err)
	}

	// Повторное использование того же кода должно быть невозможно.
	err = service.Consume(ctx, userID, models.CodePurposeVerification, code)
	if !errors.Is(err, apperror.ErrInvalidCode) {
		t.Fatalf("ожидалась ошибка ErrInvalidCode, получили %v", err)
	}
}

func TestCodeService_ConsumeWrongCode(t *testing.T) {
	repo := newMockCodeRepository()
	service := NewCodeService(repo)

	ctx := context.Background()
	userID := uuid.New()

	code, err := service.Issue(ctx, userID, models.CodePurposeVerification, 10*time.Minute)
	if err != nil {
		t.Fatalf("issue вернул ошибку: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	err = service.Consume(ctx, userID, models.CodePurposeVerification, wrong)
	if !errors.Is(err, apperror.ErrInvalidCode) {
		t.Fatalf("ожидалась ошибка ErrInvalidCode, получили %v", err)
	}

	// Неверная попытка не гасит сохранённый код.
	if err := service.Consume(ctx, userID, models.CodePurposeVerification, code); err != nil {
		t.Fatalf("верный код должен приниматься после неверной попытки: %v", err)
	}
}

func TestCodeService_ConsumeExpired(t *testing.T) {
	repo := newMockCodeRepository()
	service := NewCodeService(repo)

	ctx := context.Background()
	userID := uuid.New()

	code, err := service.Issue(ctx, userID, models.CodePurposeVerification, 10*time.Minute)
	if err != nil {
		t.Fatalf("issue вернул ошибку: %v", err)
	}

	// Сдвигаем часы сервиса за срок действия кода.
	service.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	err = service.Consume(ctx, userID, models.CodePurposeVerification, code)
	if !errors.Is(err, apperror.ErrExpiredCode) {
		t.Fatalf("ожидалась ошибка ErrExpiredCode, получили %v", err)
	}
}

func TestCodeService_ReissueInvalidatesOldCodes(t *testing.T) {
	repo := newMockCodeRepository()
	service := NewCodeService(repo)

	ctx := context.Background()
	userID := uuid.New()

	oldCode, err := service.Issue(ctx, userID, models.CodePurposeVerification, 10*time.Minute)
	if err != nil {
		t.Fatalf("issue вернул ошибку: %v", err)
	}

	newCode, err := service.Reissue(ctx, userID, models.CodePurposeVerification, 10*time.Minute)
	if err != nil {
		t.Fatalf("reissue вернул ошибку: %v", err)
	}

	if repo.countFor(userID, models.CodePurposeVerification) != 1 {
		t.Fatalf("после перевыпуска должен остаться ровно один код, получили %d", repo.countFor(userID, models.CodePurposeVerification))
	}

	if oldCode != newCode {
		err = service.Consume(ctx, userID, models.CodePurposeVerification, oldCode)
		if !errors.Is(err, apperror.ErrInvalidCode) {
			t.Fatalf("старый код должен быть инвалидирован, получили %v", err)
		}
	}

	if err := service.Consume(ctx, userID, models.CodePurposeVerification, newCode); err != nil {
		t.Fatalf("новый код должен приниматься: %v", err)
	}
}

func TestCodeService_ConsumeStoreFailure(t *testing.T) {
	storeErr := errors.New("db down")
	repo := &failingCodeRepository{
		mockCodeRepository: newMockCodeRepository(),
		getErr:             storeErr,
	}
	service := NewCodeService(repo)

	// Сбой хранилища не должен маскироваться под бизнес-ошибку «неверный код».
	err := service.Consume(context.Background(), uuid.New(), models.CodePurposeVerification, "123456")
	if !errors.Is(err, storeErr) {
		t.Fatalf("ошибка хранилища должна идти наверх как есть, получили %v", err)
	}
	if errors.Is(err, apperror.ErrInvalidCode) {
		t.Fatalf("сбой хранилища не должен превращаться в ErrInvalidCode")
	}
	if apperror.Status(err) != http.StatusInternalServerError {
		t.Fatalf("ожидался статус 500, получили %d", apperror.Status(err))
	}
}

func TestCodeService_PurposesAreIsolated(t *testing.T) {
	repo := newMockCodeRepository()
	service := NewCodeService(repo)

	ctx := context.Background()
	userID := uuid.New()

	otp, err := service.Issue(ctx, userID, models.CodePurposeVerification, 10*time.Minute)
	if err != nil {
		t.Fatalf("issue вернул ошибку: %v", err)
	}
	if _, err := service.Issue(ctx, userID, models.CodePurposePasswordReset, 30*time.Minute); err != nil {
		t.Fatalf("issue вернул ошибку: %v", err)
	}

	// Перевыпуск кода восстановления не трогает код подтверждения.
	if _, err := service.Reissue(ctx, userID, models.CodePurposePasswordReset, 30*time.Minute); err != nil {
		t.Fatalf("reissue вернул ошибку: %v", err)
	}

	if err := service.Consume(ctx, userID, models.CodePurposeVerification, otp); err != nil {
		t.Fatalf("код подтверждения должен был сохраниться: %v", err)
	}
}
