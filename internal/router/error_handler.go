package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "coursehub/internal/errors"
)

const routeNotFound = "Route Not Found"

// ErrorHandler renders every error returned by handlers and middleware as JSON.
// Unknown errors are logged and answered with a bare 500.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolve(err, c, log)

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			log.Error("write error response", zap.Error(writeErr))
		}
	}
}

func resolve(err error, c echo.Context, log *zap.Logger) (int, interface{}) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			return he.Code, apperrors.MessageResponse{Message: routeNotFound}
		case http.StatusInternalServerError:
			logFault(log, c, err)
			return he.Code, apperrors.MessageResponse{Message: apperrors.InternalError}
		default:
			return he.Code, apperrors.MessageResponse{Message: http.StatusText(he.Code)}
		}
	}

	httpErr, known := apperrors.MapErrorToHTTP(err)
	if !known {
		logFault(log, c, err)
	}
	return httpErr.StatusCode, httpErr.Body
}

func logFault(log *zap.Logger, c echo.Context, err error) {
	log.Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
	)
}
