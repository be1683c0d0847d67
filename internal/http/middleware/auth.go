package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foodoscope/foodoscope-backend/internal/dto"
	"github.com/foodoscope/foodoscope-backend/internal/service"
)

// Context ключи для gin.Context.
const (
	ContextUserIDKey = "userID"
)

// AuthMiddleware проверяет заголовок Authorization: Bearer <token> и кладёт
// идентификатор пользователя в контекст запроса.
func AuthMiddleware(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("требуется авторизация"))
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		userID, err := tokens.Parse(raw)
		if err != nil || userID == uuid.Nil {
			message := "токен невалиден"
			if errors.Is(err, service.ErrSessionExpired) {
				message = "срок действия сессии истёк"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(message))
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
