package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-academy/backend/internal/application/adapter"
)

// PurgeDeletedSimulationsInput represents the input for the purge job.
type PurgeDeletedSimulationsInput struct {
	Retention time.Duration
}

// PurgeDeletedSimulationsOutput represents the output of the purge job.
type PurgeDeletedSimulationsOutput struct {
	Purged int64
}

// PurgeDeletedSimulationsUseCase hard-deletes simulations soft-deleted longer ago than the retention.
type PurgeDeletedSimulationsUseCase struct {
	simulationRepo adapter.SimulationRepository
	now            func() time.Time
}

// NewPurgeDeletedSimulationsUseCase creates a new PurgeDeletedSimulationsUseCase instance.
func NewPurgeDeletedSimulationsUseCase(simulationRepo adapter.SimulationRepository) *PurgeDeletedSimulationsUseCase {
	return &PurgeDeletedSimulationsUseCase{
		simulationRepo: simulationRepo,
		now:            time.Now,
	}
}

// Execute performs the purge.
func (uc *PurgeDeletedSimulationsUseCase) Execute(ctx context.Context, input PurgeDeletedSimulationsInput) (*PurgeDeletedSimulationsOutput, error) {
	if input.Retention <= 0 {
		return nil, fmt.Errorf("retention must be positive, got %s", input.Retention)
	}

	cutoff := uc.now().UTC().Add(-input.Retention)
	purged, err := uc.simulationRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to purge deleted simulations: %w", err)
	}

	if purged > 0 {
		slog.InfoContext(ctx, "purged deleted simulations", "count", purged, "cutoff", cutoff)
	}

	return &PurgeDeletedSimulationsOutput{Purged: purged}, nil
}
