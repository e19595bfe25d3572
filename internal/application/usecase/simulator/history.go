// Package simulator contains the investment and retirement simulator use cases.
package simulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ListSimulationsInput represents the input for listing a user's simulations.
type ListSimulationsInput struct {
	UserID uuid.UUID
	Kind   *entity.SimulationKind
	Limit  int
}

// ListSimulationsOutput represents the output of listing simulations.
type ListSimulationsOutput struct {
	Simulations []*entity.Simulation
}

// ListSimulationsUseCase handles listing the simulation history.
type ListSimulationsUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewListSimulationsUseCase creates a new ListSimulationsUseCase instance.
func NewListSimulationsUseCase(simulationRepo adapter.SimulationRepository) *ListSimulationsUseCase {
	return &ListSimulationsUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the simulation listing.
func (uc *ListSimulationsUseCase) Execute(ctx context.Context, input ListSimulationsInput) (*ListSimulationsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	simulations, err := uc.simulationRepo.List(ctx, adapter.SimulationFilter{
		UserID: input.UserID,
		Kind:   input.Kind,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}

	return &ListSimulationsOutput{Simulations: simulations}, nil
}

// GetSimulationInput represents the input for getting a simulation.
type GetSimulationInput struct {
	UserID       uuid.UUID
	SimulationID uuid.UUID
}

// GetSimulationUseCase handles getting one of the user's simulations.
type GetSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewGetSimulationUseCase creates a new GetSimulationUseCase instance.
func NewGetSimulationUseCase(simulationRepo adapter.SimulationRepository) *GetSimulationUseCase {
	return &GetSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the simulation retrieval.
func (uc *GetSimulationUseCase) Execute(ctx context.Context, input GetSimulationInput) (*entity.Simulation, error) {
	return findOwned(ctx, uc.simulationRepo, input.UserID, input.SimulationID)
}

// DeleteSimulationInput represents the input for deleting a simulation.
type DeleteSimulationInput struct {
	UserID       uuid.UUID
	SimulationID uuid.UUID
}

// DeleteSimulationUseCase soft deletes one of the user's simulations.
type DeleteSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewDeleteSimulationUseCase creates a new DeleteSimulationUseCase instance.
func NewDeleteSimulationUseCase(simulationRepo adapter.SimulationRepository) *DeleteSimulationUseCase {
	return &DeleteSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the simulation deletion.
func (uc *DeleteSimulationUseCase) Execute(ctx context.Context, input DeleteSimulationInput) error {
	if _, err := findOwned(ctx, uc.simulationRepo, input.UserID, input.SimulationID); err != nil {
		return err
	}

	if err := uc.simulationRepo.SoftDelete(ctx, input.SimulationID); err != nil {
		return fmt.Errorf("failed to delete simulation: %w", err)
	}
	return nil
}

// findOwned loads a simulation and checks it belongs to userID.
func findOwned(ctx context.Context, repo adapter.SimulationRepository, userID, simulationID uuid.UUID) (*entity.Simulation, error) {
	simulation, err := repo.FindByID(ctx, simulationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSimulationNotFound) {
			return nil, domainerror.NewSimulationError(
				domainerror.ErrCodeSimulationNotFound,
				"simulation not found",
				domainerror.ErrSimulationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find simulation: %w", err)
	}

	if simulation.UserID != userID {
		return nil, domainerror.NewSimulationError(
			domainerror.ErrCodeUnauthorizedSimulationAccess,
			"not authorized to access this simulation",
			domainerror.ErrUnauthorizedSimulationAccess,
		)
	}

	return simulation, nil
}
