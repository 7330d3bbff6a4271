package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "coursehub/internal/errors"
)

const malformedBody = "Request body must be valid JSON"

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return apperrors.NewValidationError(malformedBody)
	}
	return c.Validate(req)
}
