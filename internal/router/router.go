package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"coursehub/internal/auth"
	"coursehub/internal/config"
	"coursehub/internal/handler"
	"coursehub/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	authenticator *auth.Authenticator,
	userHandler *handler.UserHandler,
	courseHandler *handler.CourseHandler,
) {
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(cfg.APIPrefix)
	requireAuth := authenticator.Middleware()

	api.GET("/", handler.Welcome)

	// Users
	api.GET("/users", userHandler.CurrentUser, requireAuth)
	api.POST("/users", userHandler.CreateUser)

	// Courses: reads are public, writes require Basic credentials
	api.GET("/courses", courseHandler.ListCourses)
	api.GET("/courses/:id", courseHandler.GetCourse)
	api.POST("/courses", courseHandler.CreateCourse, requireAuth)
	api.PUT("/courses/:id", courseHandler.UpdateCourse, requireAuth)
	api.DELETE("/courses/:id", courseHandler.DeleteCourse, requireAuth)
}

// RequestLogger logs one line per request through zap.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.Error(v.Error),
			)
			return nil
		},
	})
}
