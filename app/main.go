// Файл: main.go

package main

import (
	"context"
	"log"
	"net/http"

	"employee-portal/internal/routes"
	"employee-portal/internal/views"
	"employee-portal/pkg/config"
	"employee-portal/pkg/customvalidator"
	"employee-portal/pkg/database/postgresql"
	apperrors "employee-portal/pkg/errors"
	applogger "employee-portal/pkg/logger"
	"employee-portal/pkg/service"
	"employee-portal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. Конфиг: без DATABASE_URL дальше не идём
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("конфигурация: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.HTTPErrorHandler = utils.HTTPErrorHandler(logger)

	// 3. Валидатор и шаблоны
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	renderer, err := views.NewRenderer()
	if err != nil {
		logger.Fatal("не удалось разобрать шаблоны", zap.Error(err))
	}
	e.Renderer = renderer

	// 4. Postgres и Redis
	pool, err := postgresql.NewPool(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("не удалось подключиться к Postgres", zap.Error(err))
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	defer redisClient.Close()

	// 5. Сервисы и маршруты
	jwtSvc := service.NewJWTService(cfg.Session.SecretKey, cfg.Session.TTL, logger.Named("session"))

	loggers := &routes.Loggers{
		Main:     logger,
		Auth:     logger.Named("auth"),
		Employee: logger.Named("employee"),
		Project:  logger.Named("project"),
	}
	routes.InitRouter(e, postgresql.NewProvider(pool), redisClient, jwtSvc, loggers, cfg)

	// 6. Запуск
	logger.Info("Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
