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

// simulationRepository implements the adapter.SimulationRepository interface.
// Soft-deleted rows are hidden by gorm's DeletedAt scope.
type simulationRepository struct {
	db *gorm.DB
}

// NewSimulationRepository creates a new simulation repository instance.
func NewSimulationRepository(db *gorm.DB) adapter.SimulationRepository {
	return &simulationRepository{
		db: db,
	}
}

// Create stores a new simulation.
func (r *simulationRepository) Create(ctx context.Context, simulation *entity.Simulation) error {
	return r.db.WithContext(ctx).Create(model.SimulationFromEntity(simulation)).Error
}

// FindByID retrieves a non-deleted simulation by ID.
func (r *simulationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Simulation, error) {
	var m model.SimulationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSimulationNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// List retrieves a user's non-deleted simulations, newest first.
func (r *simulationRepository) List(ctx context.Context, filter adapter.SimulationFilter) ([]*entity.Simulation, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []model.SimulationModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	simulations := make([]*entity.Simulation, len(models))
	for i := range models {
		simulations[i] = models[i].ToEntity()
	}
	return simulations, nil
}

// SoftDelete marks a simulation as deleted.
func (r *simulationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SimulationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSimulationNotFound
	}
	return nil
}

// PurgeDeletedBefore permanently removes simulations soft-deleted before cutoff.
func (r *simulationRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&model.SimulationModel{})
	return result.RowsAffected, result.Error
}
