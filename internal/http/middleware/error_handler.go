package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/foodoscope/foodoscope-backend/internal/dto"
	"github.com/foodoscope/foodoscope-backend/internal/logger"
	"github.com/foodoscope/foodoscope-backend/internal/pkg/apperror"
)

// ErrorHandler обрабатывает накопленные в контексте ошибки централизованно.
// Бизнес-ошибки переводятся в {success:false, message} с кодом из apperror;
// всё остальное маскируется как внутренняя ошибка, детали остаются в логе.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Error("request error")
		}

		c.JSON(apperror.Status(err), dto.NewError(apperror.Message(err)))
	}
}
