// Package simulator contains the investment and retirement simulator use cases.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/domain/valueobject"
)

// SendSimulationReportInput represents the input for e-mailing a simulation.
type SendSimulationReportInput struct {
	UserID       uuid.UUID
	SimulationID uuid.UUID
}

// SendSimulationReportOutput represents the output of e-mailing a simulation.
type SendSimulationReportOutput struct {
	SentTo     string
	ProviderID string
}

// SendSimulationReportUseCase renders a saved simulation and e-mails it to its owner.
type SendSimulationReportUseCase struct {
	simulationRepo adapter.SimulationRepository
	userRepo       adapter.UserRepository
	renderer       adapter.ReportRenderer
	sender         adapter.EmailSender
}

// NewSendSimulationReportUseCase creates a new SendSimulationReportUseCase instance.
func NewSendSimulationReportUseCase(
	simulationRepo adapter.SimulationRepository,
	userRepo adapter.UserRepository,
	renderer adapter.ReportRenderer,
	sender adapter.EmailSender,
) *SendSimulationReportUseCase {
	return &SendSimulationReportUseCase{
		simulationRepo: simulationRepo,
		userRepo:       userRepo,
		renderer:       renderer,
		sender:         sender,
	}
}

// Execute performs the report delivery.
func (uc *SendSimulationReportUseCase) Execute(ctx context.Context, input SendSimulationReportInput) (*SendSimulationReportOutput, error) {
	simulation, err := findOwned(ctx, uc.simulationRepo, input.UserID, input.SimulationID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "user not found", err)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	subject, html, text, err := uc.renderer.RenderSimulationReport(adapter.SimulationReportInput{
		UserName:  user.Name,
		UserEmail: user.Email,
		Kind:      string(simulation.Kind),
		Rows:      ReportRows(simulation),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	result, err := uc.sender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		slog.ErrorContext(ctx, "simulation report delivery failed",
			"simulation_id", simulation.ID, "error", err)
		return nil, domainerror.NewSimulationError(
			domainerror.ErrCodeReportDeliveryFailed,
			"failed to deliver simulation report",
			errors.Join(domainerror.ErrReportDeliveryFailed, err),
		)
	}

	return &SendSimulationReportOutput{
		SentTo:     user.Email,
		ProviderID: result.ProviderID,
	}, nil
}

// ReportRows lists the inputs and results of a simulation as display rows.
func ReportRows(simulation *entity.Simulation) []adapter.ReportRow {
	switch simulation.Kind {
	case entity.SimulationKindInvestment:
		in, out := simulation.InvestmentInput, simulation.InvestmentResult
		if in == nil || out == nil {
			return nil
		}
		return []adapter.ReportRow{
			{Label: "Valor inicial", Value: "R$ " + in.InitialValue.Formatted()},
			{Label: "Aporte mensal", Value: "R$ " + in.MonthlyValue.Formatted()},
			{Label: "Período", Value: strconv.Itoa(in.PeriodMonths) + " meses"},
			{Label: "Taxa de juros anual", Value: valueobject.FormatPercentage(float64(in.AnnualRatePercent))},
			{Label: "Valor final", Value: "R$ " + out.FinalValue.Formatted()},
			{Label: "Total investido", Value: "R$ " + out.TotalInvested.Formatted()},
			{Label: "Rendimentos", Value: "R$ " + out.Earnings.Formatted()},
		}
	case entity.SimulationKindRetirement:
		in, out := simulation.RetirementInput, simulation.RetirementResult
		if in == nil || out == nil {
			return nil
		}
		return []adapter.ReportRow{
			{Label: "Idade atual", Value: strconv.Itoa(in.CurrentAge) + " anos"},
			{Label: "Idade de aposentadoria", Value: strconv.Itoa(in.RetirementAge) + " anos"},
			{Label: "Renda mensal desejada", Value: "R$ " + in.DesiredMonthlyIncome.Formatted()},
			{Label: "Rentabilidade anual", Value: valueobject.FormatPercentage(float64(in.ExpectedAnnualReturnPercent))},
			{Label: "Patrimônio necessário", Value: "R$ " + out.NeededCapital.Formatted()},
			{Label: "Aporte mensal necessário", Value: "R$ " + out.MonthlyContribution.Formatted()},
			{Label: "Anos até a aposentadoria", Value: strconv.Itoa(out.YearsToRetire)},
		}
	}
	return nil
}
