package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sirupsen/logrus"

	"github.com/foodoscope/foodoscope-backend/internal/dto"
	"github.com/foodoscope/foodoscope-backend/internal/http/middleware"
	"github.com/foodoscope/foodoscope-backend/internal/logger"
	"github.com/foodoscope/foodoscope-backend/internal/pkg/apperror"
)

// ErrNoUserInContext возвращается, когда в контексте запроса нет пользователя.
var ErrNoUserInContext = errors.New("пользователь не найден в контексте")

// CurrentUserID извлекает идентификатор пользователя из контекста Gin.
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, ErrNoUserInContext
	}

	userID, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoUserInContext
	}

	return userID, nil
}

// RespondError отправляет ошибку в едином формате.
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewError(message))
}

// RespondAppError переводит бизнес-ошибку в HTTP ответ по политике apperror.
// Внутренние сбои логируются с полными деталями, клиент видит общее сообщение.
func RespondAppError(c *gin.Context, err error) {
	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		logger.WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("request error")
	}
	c.JSON(status, dto.NewError(apperror.Message(err)))
}

// RespondUnauthorized отправляет 401.
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "требуется авторизация"
	}
	RespondError(c, http.StatusUnauthorized, message)
}

// RespondBadRequest отправляет 400.
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "некорректный запрос"
	}
	RespondError(c, http.StatusBadRequest, message)
}
