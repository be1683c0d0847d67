package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodoscope/foodoscope-backend/internal/logger"
	"github.com/foodoscope/foodoscope-backend/internal/models"
	"github.com/foodoscope/foodoscope-backend/internal/pkg/apperror"
	"github.com/foodoscope/foodoscope-backend/internal/repository"
)

// AuthUserRepository описывает зависимости AuthService от слоя хранилища.
type AuthUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetVerified(ctx context.Context, id uuid.UUID) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// AuthMailer описывает исходящую почту. Решение «глотать ошибку доставки или
// нет» принимает сервис, а не отправитель.
type AuthMailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
	SendPasswordResetCode(ctx context.Context, to, code string) error
}

// AuthService инкапсулирует бизнес-логику регистрации, подтверждения email,
// входа и восстановления пароля.
type AuthService struct {
	users      AuthUserRepository
	codes      *CodeService
	tokens     *TokenManager
	mailer     AuthMailer
	otpTTL     time.Duration
	resetTTL   time.Duration
	bcryptCost int
}

// RegisterInput содержит данные пользователя при регистрации.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// AuthResult возвращает итог успешной аутентификации.
type AuthResult struct {
	Token string
	User  models.PublicUser
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(users AuthUserRepository, codes *CodeService, tokens *TokenManager, mailer AuthMailer, otpTTL, resetTTL time.Duration, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		codes:      codes,
		tokens:     tokens,
		mailer:     mailer,
		otpTTL:     otpTTL,
		resetTTL:   resetTTL,
		bcryptCost: bcryptCost,
	}
}

// Register создаёт неподтверждённого пользователя и отправляет OTP на email.
// Сбой доставки письма не прерывает регистрацию: пользователь сможет
// запросить код повторно.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return uuid.Nil, apperror.ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return uuid.Nil, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return uuid.Nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось захешировать пароль")
	}

	user := &models.User{
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(passHash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Гонка двух одновременных регистраций упирается в unique constraint.
		if errors.Is(err, repository.ErrEmailTaken) {
			return uuid.Nil, apperror.ErrDuplicateEmail
		}
		return uuid.Nil, err
	}

	code, err := s.codes.Issue(ctx, user.ID, models.CodePurposeVerification, s.otpTTL)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.mailer.SendVerificationCode(ctx, user.Email, code); err != nil {
		logger.WithFields(logrus.Fields{
			"user_id": user.ID,
			"error":   err.Error(),
		}).Warn("auth service: не удалось отправить код подтверждения")
	}

	return user.ID, nil
}

// VerifyEmail гасит OTP и подтверждает email. Успех возвращает сессионный
// токен и публичные поля пользователя.
func (s *AuthService) VerifyEmail(ctx context.Context, userID uuid.UUID, otp string) (*AuthResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, err
	}

	if user.IsVerified {
		return nil, apperror.ErrAlreadyVerified
	}

	if err := s.codes.Consume(ctx, userID, models.CodePurposeVerification, otp); err != nil {
		return nil, err
	}

	if err := s.users.SetVerified(ctx, userID); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// ResendOtp перевыпускает код подтверждения, инвалидируя все предыдущие.
// Пользователь явно запросил письмо, поэтому сбой доставки здесь — ошибка.
func (s *AuthService) ResendOtp(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperror.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return apperror.ErrAlreadyVerified
	}

	code, err := s.codes.Reissue(ctx, userID, models.CodePurposeVerification, s.otpTTL)
	if err != nil {
		return err
	}

	if err := s.mailer.SendVerificationCode(ctx, user.Email, code); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDeliveryFailed, apperror.ErrDeliveryFailed.Message)
	}

	return nil
}

// Login проверяет учётные данные. Неизвестный email и неверный пароль дают
// одну и ту же ошибку, чтобы не раскрывать, что именно не совпало.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperror.ErrNotVerified
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// ForgotPassword всегда завершается успешно, существует пользователь или нет:
// ответ одинаков, чтобы исключить перебор email. Для существующего
// пользователя перевыпускается код восстановления.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return err
	}

	code, err := s.codes.Reissue(ctx, user.ID, models.CodePurposePasswordReset, s.resetTTL)
	if err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetCode(ctx, user.Email, code); err != nil {
		logger.WithFields(logrus.Fields{
			"user_id": user.ID,
			"error":   err.Error(),
		}).Warn("auth service: не удалось отправить код восстановления")
	}

	return nil
}

// ResetPassword меняет пароль по коду восстановления. Неизвестный пользователь,
// отсутствующий и истёкший код для клиента неразличимы.
func (s *AuthService) ResetPassword(ctx context.Context, email, resetCode, newPassword string) error {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperror.ErrInvalidOrExpiredCode
		}
		return err
	}

	if err := s.codes.Consume(ctx, user.ID, models.CodePurposePasswordReset, resetCode); err != nil {
		if apperror.IsCode(err, apperror.ErrCodeInvalidCode) || apperror.IsCode(err, apperror.ErrCodeExpired) {
			return apperror.ErrInvalidOrExpiredCode
		}
		return err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось захешировать пароль")
	}

	return s.users.UpdatePasswordHash(ctx, user.ID, string(passHash))
}
