package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/service"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the user-creation payload.
type CreateUserRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// CurrentUser godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BasicAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.MessageResponse
// @Router /users [get]
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	})
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 "Created, Location: /"
// @Failure 400 {object} errors.ValidationResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.svc.Register(c.Request().Context(), service.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}
