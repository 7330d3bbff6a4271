package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "coursehub/internal/errors"
)

// Welcome godoc
// @Summary API greeting
// @Tags root
// @Produce json
// @Success 200 {object} errors.MessageResponse
// @Router / [get]
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Welcome to the REST API project!"})
}
