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

// SimulateInvestmentInput holds the raw pt-BR form values of the investment simulator.
// UserID is nil for anonymous visitors; their runs are not stored.
type SimulateInvestmentInput struct {
	UserID       *uuid.UUID
	InitialValue string
	MonthlyValue string
	PeriodMonths string
	AnnualRate   string
}

// SimulateInvestmentOutput represents the output of an investment simulation.
type SimulateInvestmentOutput struct {
	SimulationID *uuid.UUID
	Input        valueobject.InvestmentInput
	Result       valueobject.InvestmentResult
	Projection   []valueobject.ProjectionPoint
}

// SimulateInvestmentUseCase validates, computes and records investment simulations.
type SimulateInvestmentUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewSimulateInvestmentUseCase creates a new SimulateInvestmentUseCase instance.
func NewSimulateInvestmentUseCase(simulationRepo adapter.SimulationRepository) *SimulateInvestmentUseCase {
	return &SimulateInvestmentUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the investment simulation.
func (uc *SimulateInvestmentUseCase) Execute(ctx context.Context, input SimulateInvestmentInput) (*SimulateInvestmentOutput, error) {
	fields := map[string]string{
		validation.FieldInitialValue: input.InitialValue,
		validation.FieldMonthlyValue: input.MonthlyValue,
		validation.FieldPeriodMonths: input.PeriodMonths,
		validation.FieldAnnualRate:   input.AnnualRate,
	}

	rules, _ := validation.RuleSetFor(validation.FormInvestment)
	if errs := validation.Validate(fields, rules); !errs.Valid() {
		return nil, domainerror.NewSimulationValidationError(errs)
	}

	params := valueobject.InvestmentInput{
		InitialValue:      valueobject.MonetaryAmount(valueobject.ParseCurrencyToNumber(input.InitialValue)),
		MonthlyValue:      valueobject.MonetaryAmount(valueobject.ParseCurrencyToNumber(input.MonthlyValue)),
		PeriodMonths:      int(valueobject.ParseCurrencyToNumber(input.PeriodMonths)),
		AnnualRatePercent: valueobject.PercentageRate(valueobject.ParseCurrencyToNumber(input.AnnualRate)),
	}

	output := &SimulateInvestmentOutput{
		Input:      params,
		Result:     valueobject.CalculateInvestment(params),
		Projection: valueobject.ProjectInvestment(params),
	}

	if input.UserID != nil {
		simulation := entity.NewInvestmentSimulation(*input.UserID, params, output.Result)
		if err := uc.simulationRepo.Create(ctx, simulation); err != nil {
			return nil, fmt.Errorf("failed to save simulation: %w", err)
		}
		output.SimulationID = &simulation.ID
	}

	return output, nil
}
