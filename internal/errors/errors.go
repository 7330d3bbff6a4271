package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// AccessDenied is the only message clients see for 401 and 403 responses.
	AccessDenied = "Access Denied"
	// InternalError is the body message for unexpected faults.
	InternalError = "Internal Server Error"
)

var (
	// ErrUnauthenticated is returned when Basic credentials are missing or do not match a user.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the authenticated user does not own the course.
	ErrForbidden = errors.New("forbidden")
	// ErrCourseNotFound is returned when a course id does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrEmailTaken is returned when the email address already belongs to a user.
	ErrEmailTaken = errors.New("email address already in use")
)

// MessageResponse is the body of auth, ownership and not-found failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse is the body of validation failures.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// ValidationError carries every failing field message in declaration order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Messages)
}

// NewValidationError creates a ValidationError from messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// CourseNotFound wraps ErrCourseNotFound with the id as the client sent it.
func CourseNotFound(id string) error {
	return &notFoundError{id: id}
}

type notFoundError struct {
	id string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("Course ID %s is not found", e.id)
}

func (e *notFoundError) Unwrap() error {
	return ErrCourseNotFound
}

// EmailTaken wraps ErrEmailTaken with the rejected address.
func EmailTaken(email string) error {
	return &emailTakenError{email: email}
}

type emailTakenError struct {
	email string
}

func (e *emailTakenError) Error() string {
	return fmt.Sprintf("The email address %q is already in use", e.email)
}

func (e *emailTakenError) Unwrap() error {
	return ErrEmailTaken
}

// HTTPError represents an HTTP error with status code and body.
type HTTPError struct {
	StatusCode int
	Body       interface{}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d", e.StatusCode)
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, body interface{}) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Body: body}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// The second result is false for faults that must be logged and hidden.
func MapErrorToHTTP(err error) (*HTTPError, bool) {
	var validationErr *ValidationError
	var notFoundErr *notFoundError
	var emailErr *emailTakenError

	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, ValidationResponse{Errors: validationErr.Messages}), true
	case errors.As(err, &notFoundErr):
		return NewHTTPError(http.StatusBadRequest, MessageResponse{Message: notFoundErr.Error()}), true
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, MessageResponse{Message: AccessDenied}), true
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, MessageResponse{Message: AccessDenied}), true
	case errors.As(err, &emailErr):
		return NewHTTPError(http.StatusBadRequest, ValidationResponse{Errors: []string{emailErr.Error()}}), true
	default:
		return NewHTTPError(http.StatusInternalServerError, MessageResponse{Message: InternalError}), false
	}
}
