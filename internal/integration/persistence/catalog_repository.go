// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/integration/persistence/model"
)

// courseRepository implements the adapter.CourseRepository interface.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository instance.
func NewCourseRepository(db *gorm.DB) adapter.CourseRepository {
	return &courseRepository{
		db: db,
	}
}

// Upsert creates the course or updates the one with the same slug, keeping its ID.
func (r *courseRepository) Upsert(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var existing model.CourseModel
		err := tx.Where("slug = ?", course.Slug).First(&existing).Error
		switch {
		case err == nil:
			course.ID = existing.ID
			course.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			if course.ID == uuid.Nil {
				course.ID = uuid.New()
			}
			course.CreatedAt = now
		default:
			return err
		}
		course.UpdatedAt = now

		return tx.Save(model.CourseFromEntity(course)).Error
	})
}

// FindByID retrieves a course by ID.
func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a course by slug.
func (r *courseRepository) FindBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *courseRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.Course, error) {
	var m model.CourseModel
	result := r.db.WithContext(ctx).Where(query, arg).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCourseNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// List retrieves courses matching the filter ordered by title.
func (r *courseRepository) List(ctx context.Context, filter adapter.CourseFilter) ([]*entity.Course, error) {
	query := r.db.WithContext(ctx).Model(&model.CourseModel{})
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Level != nil {
		query = query.Where("level = ?", string(*filter.Level))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var models []model.CourseModel
	if err := query.Order("title ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	courses := make([]*entity.Course, len(models))
	for i := range models {
		courses[i] = models[i].ToEntity()
	}
	return courses, nil
}

// consultantRepository implements the adapter.ConsultantRepository interface.
type consultantRepository struct {
	db *gorm.DB
}

// NewConsultantRepository creates a new consultant repository instance.
func NewConsultantRepository(db *gorm.DB) adapter.ConsultantRepository {
	return &consultantRepository{
		db: db,
	}
}

// Upsert creates the consultant or updates the one with the same slug, keeping its ID.
func (r *consultantRepository) Upsert(ctx context.Context, consultant *entity.Consultant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var existing model.ConsultantModel
		err := tx.Where("slug = ?", consultant.Slug).First(&existing).Error
		switch {
		case err == nil:
			consultant.ID = existing.ID
			consultant.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			if consultant.ID == uuid.Nil {
				consultant.ID = uuid.New()
			}
			consultant.CreatedAt = now
		default:
			return err
		}
		consultant.UpdatedAt = now

		return tx.Save(model.ConsultantFromEntity(consultant)).Error
	})
}

// List retrieves consultants matching the filter, best rated first.
func (r *consultantRepository) List(ctx context.Context, filter adapter.ConsultantFilter) ([]*entity.Consultant, error) {
	query := r.db.WithContext(ctx).Model(&model.ConsultantModel{})
	if filter.Specialty != nil {
		query = query.Where("specialty = ?", string(*filter.Specialty))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var models []model.ConsultantModel
	if err := query.Order("rating DESC").Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	consultants := make([]*entity.Consultant, len(models))
	for i := range models {
		consultants[i] = models[i].ToEntity()
	}
	return consultants, nil
}
