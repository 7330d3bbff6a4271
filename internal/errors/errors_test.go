package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   interface{}
		wantKnown  bool
	}{
		{
			name:       "validation",
			err:        NewValidationError("a", "b"),
			wantStatus: http.StatusBadRequest,
			wantBody:   ValidationResponse{Errors: []string{"a", "b"}},
			wantKnown:  true,
		},
		{
			name:       "course not found keeps raw id",
			err:        fmt.Errorf("update: %w", CourseNotFound("abc")),
			wantStatus: http.StatusBadRequest,
			wantBody:   MessageResponse{Message: "Course ID abc is not found"},
			wantKnown:  true,
		},
		{
			name:       "email taken",
			err:        EmailTaken("joe@smith.com"),
			wantStatus: http.StatusBadRequest,
			wantBody:   ValidationResponse{Errors: []string{`The email address "joe@smith.com" is already in use`}},
			wantKnown:  true,
		},
		{
			name:       "unauthenticated",
			err:        ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantBody:   MessageResponse{Message: AccessDenied},
			wantKnown:  true,
		},
		{
			name:       "forbidden",
			err:        ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   MessageResponse{Message: AccessDenied},
			wantKnown:  true,
		},
		{
			name:       "fault",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   MessageResponse{Message: InternalError},
			wantKnown:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr, known := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantBody, httpErr.Body)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

func TestSentinelsUnwrap(t *testing.T) {
	assert.True(t, errors.Is(CourseNotFound("7"), ErrCourseNotFound))
	assert.True(t, errors.Is(EmailTaken("a@b.co"), ErrEmailTaken))
}
