// Package simulator contains the investment and retirement simulator use cases.
package simulator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/domain/validation"
	"github.com/finance-academy/backend/internal/domain/valueobject"
)

// SimulateRetirementInput holds the raw pt-BR form values of the retirement simulator.
type SimulateRetirementInput struct {
	UserID               *uuid.UUID
	CurrentAge           string
	RetirementAge        string
	DesiredMonthlyIncome string
	ExpectedAnnualReturn string
}

// SimulateRetirementOutput represents the output of a retirement simulation.
type SimulateRetirementOutput struct {
	SimulationID *uuid.UUID
	Input        valueobject.RetirementInput
	Result       valueobject.RetirementResult
}

// SimulateRetirementUseCase validates, computes and records retirement simulations.
type SimulateRetirementUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewSimulateRetirementUseCase creates a new SimulateRetirementUseCase instance.
func NewSimulateRetirementUseCase(simulationRepo adapter.SimulationRepository) *SimulateRetirementUseCase {
	return &SimulateRetirementUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the retirement simulation.
func (uc *SimulateRetirementUseCase) Execute(ctx context.Context, input SimulateRetirementInput) (*SimulateRetirementOutput, error) {
	fields := map[string]string{
		validation.FieldCurrentAge:           input.CurrentAge,
		validation.FieldRetirementAge:        input.RetirementAge,
		validation.FieldDesiredMonthlyIncome: input.DesiredMonthlyIncome,
		validation.FieldExpectedAnnualReturn: input.ExpectedAnnualReturn,
	}

	rules, _ := validation.RuleSetFor(validation.FormRetirement)
	if errs := validation.Validate(fields, rules); !errs.Valid() {
		return nil, domainerror.NewSimulationValidationError(errs)
	}

	params := valueobject.RetirementInput{
		CurrentAge:                  int(valueobject.ParseCurrencyToNumber(input.CurrentAge)),
		RetirementAge:               int(valueobject.ParseCurrencyToNumber(input.RetirementAge)),
		DesiredMonthlyIncome:        valueobject.MonetaryAmount(valueobject.ParseCurrencyToNumber(input.DesiredMonthlyIncome)),
		ExpectedAnnualReturnPercent: valueobject.PercentageRate(valueobject.ParseCurrencyToNumber(input.ExpectedAnnualReturn)),
	}

	output := &SimulateRetirementOutput{
		Input:  params,
		Result: valueobject.CalculateRetirement(params),
	}

	if input.UserID != nil {
		simulation := entity.NewRetirementSimulation(*input.UserID, params, output.Result)
		if err := uc.simulationRepo.Create(ctx, simulation); err != nil {
			return nil, fmt.Errorf("failed to save simulation: %w", err)
		}
		output.SimulationID = &simulation.ID
	}

	return output, nil
}
