package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/foodoscope/foodoscope-backend/internal/config"
	"github.com/foodoscope/foodoscope-backend/internal/db"
	httpHandlers "github.com/foodoscope/foodoscope-backend/internal/http/handlers"
	httpRouter "github.com/foodoscope/foodoscope-backend/internal/http/router"
	"github.com/foodoscope/foodoscope-backend/internal/logger"
	"github.com/foodoscope/foodoscope-backend/internal/mailer"
	"github.com/foodoscope/foodoscope-backend/internal/repository"
	"github.com/foodoscope/foodoscope-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Исходящая почта: без API ключа письма только логируются.
	var sender mailer.Sender
	if cfg.EmailAPIKey != "" {
		sender = mailer.NewResendSender(nil, cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailFrom)
	} else {
		sender = mailer.NewLogSender()
	}
	mail := mailer.New(sender)

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	codeRepo := repository.NewAuthCodeRepository(dbConn)

	// Сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.SessionTokenTTL)
	codeService := service.NewCodeService(codeRepo)
	authService := service.NewAuthService(userRepo, codeService, tokenManager, mail, cfg.OTPTTL, cfg.ResetCodeTTL, cfg.BcryptCost)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	userHandler := httpHandlers.NewUserHandler(userRepo)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, userHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
