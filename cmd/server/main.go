package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"coursehub/docs"
	"coursehub/internal/auth"
	"coursehub/internal/cache"
	"coursehub/internal/config"
	"coursehub/internal/db"
	"coursehub/internal/handler"
	"coursehub/internal/logger"
	"coursehub/internal/repository"
	"coursehub/internal/router"
	"coursehub/internal/service"
)

// @title Course Hub API
// @version 1.0
// @description Courses owned by users, with HTTP Basic authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.basic BasicAuth
func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = log.Sync() }()

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	if cacheClient == nil {
		log.Info("REDIS_ADDR not set, course cache disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	authenticator := auth.NewAuthenticator(userRepo, hasher, log)

	// Initialize services
	userService := service.NewUserService(userRepo, hasher)
	courseService := service.NewCourseService(courseRepo, cacheClient, cfg.CacheTTL)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	courseHandler := handler.NewCourseHandler(courseService, cfg.APIPrefix)

	e := echo.New()
	router.Register(e, cfg, log, authenticator, userHandler, courseHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	if cfg.APIPrefix != "" {
		docs.SwaggerInfo.BasePath = cfg.APIPrefix
	}
	log.Info("swagger documentation available", zap.String("path", "/swagger/index.html"))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}
