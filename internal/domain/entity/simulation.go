// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/domain/valueobject"
)

// SimulationKind identifies which simulator produced a simulation.
type SimulationKind string

const (
	SimulationKindInvestment SimulationKind = "investment"
	SimulationKindRetirement SimulationKind = "retirement"
)

// ParseSimulationKind converts raw input into a SimulationKind.
func ParseSimulationKind(s string) (SimulationKind, error) {
	switch SimulationKind(s) {
	case SimulationKindInvestment, SimulationKindRetirement:
		return SimulationKind(s), nil
	}
	return "", fmt.Errorf("unknown simulation kind %q", s)
}

// Simulation is a saved simulator run. Exactly one of the Investment/Retirement
// pairs is set, matching Kind.
type Simulation struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Kind   SimulationKind

	InvestmentInput  *valueobject.InvestmentInput
	InvestmentResult *valueobject.InvestmentResult
	RetirementInput  *valueobject.RetirementInput
	RetirementResult *valueobject.RetirementResult

	CreatedAt time.Time
	DeletedAt *time.Time
}

// NewInvestmentSimulation records an investment simulator run.
func NewInvestmentSimulation(userID uuid.UUID, input valueobject.InvestmentInput, result valueobject.InvestmentResult) *Simulation {
	return &Simulation{
		ID:               uuid.New(),
		UserID:           userID,
		Kind:             SimulationKindInvestment,
		InvestmentInput:  &input,
		InvestmentResult: &result,
		CreatedAt:        time.Now().UTC(),
	}
}

// NewRetirementSimulation records a retirement simulator run.
func NewRetirementSimulation(userID uuid.UUID, input valueobject.RetirementInput, result valueobject.RetirementResult) *Simulation {
	return &Simulation{
		ID:               uuid.New(),
		UserID:           userID,
		Kind:             SimulationKindRetirement,
		RetirementInput:  &input,
		RetirementResult: &result,
		CreatedAt:        time.Now().UTC(),
	}
}
