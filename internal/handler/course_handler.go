package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/service"
)

// CourseHandler serves the /courses endpoints.
type CourseHandler struct {
	svc    service.CourseService
	prefix string
}

// NewCourseHandler creates a new course handler. prefix is the path the API is mounted
// under and is used to build Location headers.
func NewCourseHandler(svc service.CourseService, prefix string) *CourseHandler {
	return &CourseHandler{svc: svc, prefix: prefix}
}

// CreateCourseRequest is the course-creation payload.
type CreateCourseRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID must be present but may hold any JSON value; the owner is
	// always the authenticated user.
	UserID json.RawMessage `json:"userId" validate:"required" swaggertype:"integer"`
}

// UpdateCourseRequest is the course-update payload.
type UpdateCourseRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// ListCourses godoc
// @Summary List courses with their owners
// @Tags courses
// @Produce json
// @Success 200 {array} model.Course
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary Get course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} model.Course
// @Failure 400 {object} errors.MessageResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c echo.Context) error {
	id, err := courseID(c)
	if err != nil {
		return err
	}
	course, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// CreateCourse godoc
// @Summary Create course
// @Tags courses
// @Accept json
// @Security BasicAuth
// @Param course body CreateCourseRequest true "Course payload"
// @Success 201 "Created, Location: /courses/{id}"
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.MessageResponse
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	owner, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req CreateCourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.svc.Create(c.Request().Context(), owner, service.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/courses/%d", h.prefix, course.ID))
	return c.NoContent(http.StatusCreated)
}

// UpdateCourse godoc
// @Summary Update course
// @Tags courses
// @Accept json
// @Security BasicAuth
// @Param id path int true "Course ID"
// @Param course body UpdateCourseRequest true "Course payload"
// @Success 204
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 403 {object} errors.MessageResponse
// @Router /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req UpdateCourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := courseID(c)
	if err != nil {
		return err
	}

	err = h.svc.Update(c.Request().Context(), actor, id, service.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCourse godoc
// @Summary Delete course
// @Tags courses
// @Security BasicAuth
// @Param id path int true "Course ID"
// @Success 204
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 403 {object} errors.MessageResponse
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	id, err := courseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// courseID parses the :id path parameter. Anything that is not a positive
// integer cannot name a course.
func courseID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.CourseNotFound(raw)
	}
	return uint(id), nil
}
