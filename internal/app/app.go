package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"parkhub_backend/database"
	"parkhub_backend/internal/auth"
	"parkhub_backend/internal/config"
	"parkhub_backend/internal/email"
	"parkhub_backend/internal/handlers"
	"parkhub_backend/internal/logger"
	"parkhub_backend/internal/middleware"
	"parkhub_backend/internal/models"
	"parkhub_backend/internal/repositories"
	"parkhub_backend/internal/routes"
	"parkhub_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine with the full middleware chain and API routes.
// Exposed separately so tests can mount the same router over httptest.
func SetupRouter(cfg *config.Config, db *gorm.DB, mailer email.Provider) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := services.NewServiceContainer(mailer)
	h := handlers.NewAppHandlers(svc)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	routes.SetupRoutes(router, h)
	return router
}

// Run starts the server and blocks until shutdown.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	mailer := buildMailer(cfg)
	router := SetupRouter(cfg, db, mailer)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildMailer(cfg *config.Config) email.Provider {
	mailer, err := email.NewSMTPProvider(cfg)
	if err != nil {
		logger.Warn("SMTP not configured, emails will be logged only", "error", err)
		return email.NewLogProvider()
	}
	return mailer
}

// seedFirstAdmin creates a verified admin account from config when no admin exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository()
	exists, err := userRepo.AdminExists(db)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         cfg.FirstAdminName,
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
	}
	if err := userRepo.Create(db, admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("seeded first admin", "email", admin.Email)
	return nil
}
