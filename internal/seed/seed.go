// Package seed loads demo users and courses into an empty or partially filled database.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/service"
)

//go:embed data.json
var defaultData []byte

// Data is the seed file format. Courses name their owner by email address.
type Data struct {
	Users   []UserData   `json:"users"`
	Courses []CourseData `json:"courses"`
}

// UserData is one seeded user.
type UserData struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// CourseData is one seeded course.
type CourseData struct {
	Owner           string  `json:"owner"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// Result counts what a run did.
type Result struct {
	UsersCreated   int
	UsersSkipped   int
	CoursesCreated int
	CoursesSkipped int
}

// Default returns the bundled demo dataset.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Parse decodes a seed file.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

// Seeder writes seed data through the regular services so passwords are hashed
// and ownership is set the same way the API does it.
type Seeder struct {
	users   service.UserService
	courses service.CourseService
	log     *zap.Logger
}

// New creates a Seeder.
func New(users service.UserService, courses service.CourseService, log *zap.Logger) *Seeder {
	return &Seeder{users: users, courses: courses, log: log}
}

// Run creates every user whose email is not yet taken, then the courses of those users.
// Courses of pre-existing users are skipped so repeated runs do not duplicate them.
func (s *Seeder) Run(ctx context.Context, data *Data) (Result, error) {
	var res Result
	created := make(map[string]*model.User, len(data.Users))

	for _, u := range data.Users {
		user, err := s.users.Register(ctx, service.RegisterInput{
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			EmailAddress: u.EmailAddress,
			Password:     u.Password,
		})
		if errors.Is(err, apperrors.ErrEmailTaken) {
			s.log.Info("user exists, skipping", zap.String("email", u.EmailAddress))
			res.UsersSkipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("seed user %s: %w", u.EmailAddress, err)
		}
		created[u.EmailAddress] = user
		res.UsersCreated++
	}

	for _, c := range data.Courses {
		owner, ok := created[c.Owner]
		if !ok {
			s.log.Info("owner not seeded in this run, skipping course",
				zap.String("title", c.Title), zap.String("owner", c.Owner))
			res.CoursesSkipped++
			continue
		}
		_, err := s.courses.Create(ctx, owner, service.CourseInput{
			Title:           c.Title,
			Description:     c.Description,
			EstimatedTime:   c.EstimatedTime,
			MaterialsNeeded: c.MaterialsNeeded,
		})
		if err != nil {
			return res, fmt.Errorf("seed course %q: %w", c.Title, err)
		}
		res.CoursesCreated++
	}

	return res, nil
}
