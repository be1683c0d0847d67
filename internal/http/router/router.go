package router

import (
	"github.com/gin-gonic/gin"

	"github.com/foodoscope/foodoscope-backend/internal/config"
	"github.com/foodoscope/foodoscope-backend/internal/http/handlers"
	"github.com/foodoscope/foodoscope-backend/internal/http/middleware"
	"github.com/foodoscope/foodoscope-backend/internal/service"
)

// SetupRouter собирает gin.Engine со всеми маршрутами и middleware.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/verify-email", authHandler.VerifyEmail)
		authGroup.POST("/resend-otp", authHandler.ResendOtp)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
	}

	// Защищённые маршруты
	protected := api.Group("/users")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.GET("/profile", userHandler.GetProfile)
		protected.POST("/profile", userHandler.CreateProfile)
		protected.PUT("/profile", userHandler.UpdateProfile)
	}

	return r
}
