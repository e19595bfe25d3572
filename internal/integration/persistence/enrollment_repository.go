// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	"github.com/finance-academy/backend/internal/integration/persistence/model"
)

// enrollmentRepository implements the adapter.EnrollmentRepository interface.
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository instance.
func NewEnrollmentRepository(db *gorm.DB) adapter.EnrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Create stores a new enrollment.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	return r.db.WithContext(ctx).Create(model.EnrollmentFromEntity(enrollment)).Error
}

// ExistsActive reports whether the user has a pending or paid enrollment in the course.
func (r *enrollmentRepository) ExistsActive(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.EnrollmentModel{}).
		Where("user_id = ? AND course_id = ? AND status <> ?", userID, courseID, string(entity.EnrollmentStatusCancelled)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ListByUser retrieves a user's enrollments with their courses, newest first.
func (r *enrollmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EnrollmentWithCourse, error) {
	var models []model.EnrollmentModel
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entity.EnrollmentWithCourse, len(models))
	for i := range models {
		item := &entity.EnrollmentWithCourse{Enrollment: models[i].ToEntity()}
		if models[i].Course != nil {
			item.Course = models[i].Course.ToEntity()
		}
		out[i] = item
	}
	return out, nil
}
