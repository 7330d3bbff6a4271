package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"coursehub/internal/cache"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

const courseListCacheKey = "courses:all"

// CourseInput carries the writable course fields.
// Nil optional fields are left untouched on update.
type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// CourseService handles course operations.
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Get(ctx context.Context, id uint) (*model.Course, error)
	Create(ctx context.Context, owner *model.User, input CourseInput) (*model.Course, error)
	Update(ctx context.Context, actor *model.User, id uint, input CourseInput) error
	Delete(ctx context.Context, actor *model.User, id uint) error
}

type courseService struct {
	repo  repository.CourseRepository
	cache *cache.Client
	ttl   time.Duration
}

// NewCourseService creates a new course service. cache may be nil.
func NewCourseService(repo repository.CourseRepository, cache *cache.Client, ttl time.Duration) CourseService {
	return &courseService{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

func (s *courseService) cacheKey(id uint) string {
	return fmt.Sprintf("course:%d", id)
}

// List returns every course with its owner.
func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	var cached []model.Course
	if s.cache.GetJSON(ctx, courseListCacheKey, &cached) {
		return cached, nil
	}

	courses, err := s.repo.ListWithOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	s.cache.SetJSON(ctx, courseListCacheKey, courses, s.ttl)
	return courses, nil
}

// Get returns one course with its owner.
func (s *courseService) Get(ctx context.Context, id uint) (*model.Course, error) {
	var cached model.Course
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	course, err := s.repo.FindWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.CourseNotFound(strconv.FormatUint(uint64(id), 10))
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), course, s.ttl)
	return course, nil
}

// Create stores a new course owned by owner.
func (s *courseService) Create(ctx context.Context, owner *model.User, input CourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          owner.ID,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.cache.Delete(ctx, courseListCacheKey)
	return course, nil
}

// Update changes a course owned by actor.
func (s *courseService) Update(ctx context.Context, actor *model.User, id uint, input CourseInput) error {
	course, err := s.ownedCourse(ctx, actor, id)
	if err != nil {
		return err
	}

	course.Title = input.Title
	course.Description = input.Description
	if input.EstimatedTime != nil {
		course.EstimatedTime = input.EstimatedTime
	}
	if input.MaterialsNeeded != nil {
		course.MaterialsNeeded = input.MaterialsNeeded
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}

	s.cache.Delete(ctx, courseListCacheKey, s.cacheKey(id))
	return nil
}

// Delete removes a course owned by actor.
func (s *courseService) Delete(ctx context.Context, actor *model.User, id uint) error {
	if _, err := s.ownedCourse(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}

	s.cache.Delete(ctx, courseListCacheKey, s.cacheKey(id))
	return nil
}

// ownedCourse loads the course and checks that actor owns it.
// A missing course is reported before ownership is considered.
func (s *courseService) ownedCourse(ctx context.Context, actor *model.User, id uint) (*model.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.CourseNotFound(strconv.FormatUint(uint64(id), 10))
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	if actor == nil || !course.OwnedBy(actor.ID) {
		return nil, apperrors.ErrForbidden
	}
	return course, nil
}
