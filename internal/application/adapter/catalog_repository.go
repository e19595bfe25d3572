// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/domain/entity"
)

// CourseFilter narrows the course listing. Nil fields are not applied.
type CourseFilter struct {
	Category *entity.CourseCategory
	Level    *entity.CourseLevel
	Status   *entity.ContentStatus
}

// CourseRepository defines the interface for course persistence operations.
type CourseRepository interface {
	// Upsert creates the course or updates the one with the same slug.
	Upsert(ctx context.Context, course *entity.Course) error

	// FindByID retrieves a course by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// FindBySlug retrieves a course by slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Course, error)

	// List retrieves courses matching the filter ordered by title.
	List(ctx context.Context, filter CourseFilter) ([]*entity.Course, error)
}

// ConsultantFilter narrows the consultant listing. Nil fields are not applied.
type ConsultantFilter struct {
	Specialty *entity.CourseCategory
	Status    *entity.ContentStatus
}

// ConsultantRepository defines the interface for consultant persistence operations.
type ConsultantRepository interface {
	// Upsert creates the consultant or updates the one with the same slug.
	Upsert(ctx context.Context, consultant *entity.Consultant) error

	// List retrieves consultants matching the filter, best rated first.
	List(ctx context.Context, filter ConsultantFilter) ([]*entity.Consultant, error)
}

// EnrollmentRepository defines the interface for enrollment persistence operations.
type EnrollmentRepository interface {
	// Create stores a new enrollment.
	Create(ctx context.Context, enrollment *entity.Enrollment) error

	// ExistsActive reports whether the user has a pending or paid enrollment in the course.
	ExistsActive(ctx context.Context, userID, courseID uuid.UUID) (bool, error)

	// ListByUser retrieves a user's enrollments with their courses, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EnrollmentWithCourse, error)
}
