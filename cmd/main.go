package main

import (
	"MoviesUsersAPI/config"
	"MoviesUsersAPI/internal/database"
	"MoviesUsersAPI/internal/handlers"
	"MoviesUsersAPI/internal/repositories"
	"MoviesUsersAPI/internal/routes"
	"MoviesUsersAPI/internal/services"
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := setupLogger(cfg.Env)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DBAutoSchema {
		if err := database.EnsureSchema(ctx, db); err != nil {
			logger.Error("Failed to prepare schema", "error", err)
			os.Exit(1)
		}
		logger.Info("Schema ready")
	}

	// Dependency Injection
	movieRepo := repositories.NewMovieRepository(db)
	userRepo := repositories.NewUserRepository(db)

	movieService := services.NewMovieService(movieRepo, logger)
	userService := services.NewUserService(userRepo, logger)

	movieHandler := handlers.NewMovieHandler(movieService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	healthHandler := handlers.NewHealthHandler(db, logger)

	router := routes.SetupRouter(movieHandler, userHandler, healthHandler, logger, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case "development":
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	return logger
}
