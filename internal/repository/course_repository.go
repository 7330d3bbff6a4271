package repository

import (
	"context"

	"gorm.io/gorm"

	"coursehub/internal/model"
)

// ownerColumns is the part of a user that is embedded in course responses.
var ownerColumns = []string{"id", "first_name", "last_name", "email_address"}

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	FindWithOwner(ctx context.Context, id uint) (*model.Course, error)
	ListWithOwners(ctx context.Context) ([]model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id uint) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create inserts a course. An unknown owner surfaces as gorm.ErrForeignKeyViolated.
func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Omit("User").Create(course).Error
}

// FindByID loads a course without its owner.
func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// FindWithOwner loads a course and its owner's public fields.
func (r *courseRepository) FindWithOwner(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.withOwner(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// ListWithOwners lists every course ordered by id, each with its owner's public fields.
func (r *courseRepository) ListWithOwners(ctx context.Context) ([]model.Course, error) {
	courses := []model.Course{}
	if err := r.withOwner(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// Update writes the editable columns of an existing course.
func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Model(course).
		Select("title", "description", "estimated_time", "materials_needed").
		Updates(course).Error
}

// Delete removes the course. Deleting a missing id is not an error.
func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, id).Error
}

func (r *courseRepository) withOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select(ownerColumns)
	})
}
