// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/domain/entity"
)

// SimulationFilter narrows a user's simulation listing.
type SimulationFilter struct {
	UserID uuid.UUID
	Kind   *entity.SimulationKind
	Limit  int
}

// SimulationRepository defines the interface for simulation persistence operations.
type SimulationRepository interface {
	// Create stores a new simulation.
	Create(ctx context.Context, simulation *entity.Simulation) error

	// FindByID retrieves a non-deleted simulation by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Simulation, error)

	// List retrieves a user's non-deleted simulations, newest first.
	List(ctx context.Context, filter SimulationFilter) ([]*entity.Simulation, error)

	// SoftDelete marks a simulation as deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// PurgeDeletedBefore permanently removes simulations soft-deleted before cutoff.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
