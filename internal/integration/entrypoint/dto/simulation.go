package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/usecase/simulator"
	"github.com/finance-academy/backend/internal/domain/entity"
	"github.com/finance-academy/backend/internal/domain/valueobject"
)

// InvestmentSimulationRequest carries the investment form exactly as typed (pt-BR).
type InvestmentSimulationRequest struct {
	InitialValue string `json:"initial_value"`
	MonthlyValue string `json:"monthly_value"`
	PeriodMonths string `json:"period_months"`
	AnnualRate   string `json:"annual_rate"`
}

// RetirementSimulationRequest carries the retirement form exactly as typed (pt-BR).
type RetirementSimulationRequest struct {
	CurrentAge           string `json:"current_age"`
	RetirementAge        string `json:"retirement_age"`
	DesiredMonthlyIncome string `json:"desired_monthly_income"`
	ExpectedAnnualReturn string `json:"expected_annual_return"`
}

// ListSimulationsQuery represents the query parameters for the history listing.
type ListSimulationsQuery struct {
	Kind  string `form:"kind"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// MoneyField is a monetary value with its pt-BR rendering.
type MoneyField struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// InvestmentInputResponse represents the normalized investment parameters.
type InvestmentInputResponse struct {
	InitialValue  MoneyField `json:"initial_value"`
	MonthlyValue  MoneyField `json:"monthly_value"`
	PeriodMonths  int        `json:"period_months"`
	AnnualRate    float64    `json:"annual_rate"`
	AnnualRateFmt string     `json:"annual_rate_formatted"`
}

// InvestmentResultResponse represents the investment outcome.
type InvestmentResultResponse struct {
	FinalValue    MoneyField `json:"final_value"`
	TotalInvested MoneyField `json:"total_invested"`
	Earnings      MoneyField `json:"earnings"`
}

// ProjectionPointResponse is one month of the balance projection.
type ProjectionPointResponse struct {
	Month         int     `json:"month"`
	Balance       float64 `json:"balance"`
	TotalInvested float64 `json:"total_invested"`
}

// InvestmentSimulationResponse represents the response of the investment simulator.
type InvestmentSimulationResponse struct {
	SimulationID *string                   `json:"simulation_id,omitempty"`
	Input        InvestmentInputResponse   `json:"input"`
	Result       InvestmentResultResponse  `json:"result"`
	Projection   []ProjectionPointResponse `json:"projection,omitempty"`
}

// RetirementInputResponse represents the normalized retirement parameters.
type RetirementInputResponse struct {
	CurrentAge              int        `json:"current_age"`
	RetirementAge           int        `json:"retirement_age"`
	DesiredMonthlyIncome    MoneyField `json:"desired_monthly_income"`
	ExpectedAnnualReturn    float64    `json:"expected_annual_return"`
	ExpectedAnnualReturnFmt string     `json:"expected_annual_return_formatted"`
}

// RetirementResultResponse represents the retirement outcome.
type RetirementResultResponse struct {
	NeededCapital       MoneyField `json:"needed_capital"`
	MonthlyContribution MoneyField `json:"monthly_contribution"`
	YearsToRetire       int        `json:"years_to_retire"`
	WithdrawalRate      float64    `json:"withdrawal_rate"`
}

// RetirementSimulationResponse represents the response of the retirement simulator.
type RetirementSimulationResponse struct {
	SimulationID *string                  `json:"simulation_id,omitempty"`
	Input        RetirementInputResponse  `json:"input"`
	Result       RetirementResultResponse `json:"result"`
}

// SimulationResponse represents a stored simulation.
// Only the block matching Kind is present.
type SimulationResponse struct {
	ID         string                        `json:"id"`
	Kind       string                        `json:"kind"`
	Investment *InvestmentSimulationResponse `json:"investment,omitempty"`
	Retirement *RetirementSimulationResponse `json:"retirement,omitempty"`
	CreatedAt  time.Time                     `json:"created_at"`
}

// SimulationListResponse represents the history listing.
type SimulationListResponse struct {
	Simulations []SimulationResponse `json:"simulations"`
	Total       int                  `json:"total"`
}

// SimulationReportResponse represents the response of the e-mail report endpoint.
type SimulationReportResponse struct {
	Message string `json:"message"`
	SentTo  string `json:"sent_to"`
}

func money(m valueobject.MonetaryAmount) MoneyField {
	return MoneyField{Value: float64(m), Formatted: m.Formatted()}
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// ToInvestmentResponse builds the investment payload from its parts.
func ToInvestmentResponse(input valueobject.InvestmentInput, result valueobject.InvestmentResult, projection []valueobject.ProjectionPoint) InvestmentSimulationResponse {
	points := make([]ProjectionPointResponse, 0, len(projection))
	for _, p := range projection {
		points = append(points, ProjectionPointResponse{
			Month:         p.Month,
			Balance:       float64(p.Balance),
			TotalInvested: float64(p.TotalInvested),
		})
	}

	return InvestmentSimulationResponse{
		Input: InvestmentInputResponse{
			InitialValue:  money(input.InitialValue),
			MonthlyValue:  money(input.MonthlyValue),
			PeriodMonths:  input.PeriodMonths,
			AnnualRate:    float64(input.AnnualRatePercent),
			AnnualRateFmt: valueobject.FormatPercentage(float64(input.AnnualRatePercent)),
		},
		Result: InvestmentResultResponse{
			FinalValue:    money(result.FinalValue),
			TotalInvested: money(result.TotalInvested),
			Earnings:      money(result.Earnings),
		},
		Projection: points,
	}
}

// ToRetirementResponse builds the retirement payload from its parts.
func ToRetirementResponse(input valueobject.RetirementInput, result valueobject.RetirementResult) RetirementSimulationResponse {
	return RetirementSimulationResponse{
		Input: RetirementInputResponse{
			CurrentAge:              input.CurrentAge,
			RetirementAge:           input.RetirementAge,
			DesiredMonthlyIncome:    money(input.DesiredMonthlyIncome),
			ExpectedAnnualReturn:    float64(input.ExpectedAnnualReturnPercent),
			ExpectedAnnualReturnFmt: valueobject.FormatPercentage(float64(input.ExpectedAnnualReturnPercent)),
		},
		Result: RetirementResultResponse{
			NeededCapital:       money(result.NeededCapital),
			MonthlyContribution: money(result.MonthlyContribution),
			YearsToRetire:       result.YearsToRetire,
			WithdrawalRate:      valueobject.SafeWithdrawalRate,
		},
	}
}

// FromInvestmentOutput converts the use case output to the response DTO.
func FromInvestmentOutput(out *simulator.SimulateInvestmentOutput) InvestmentSimulationResponse {
	resp := ToInvestmentResponse(out.Input, out.Result, out.Projection)
	resp.SimulationID = idString(out.SimulationID)
	return resp
}

// FromRetirementOutput converts the use case output to the response DTO.
func FromRetirementOutput(out *simulator.SimulateRetirementOutput) RetirementSimulationResponse {
	resp := ToRetirementResponse(out.Input, out.Result)
	resp.SimulationID = idString(out.SimulationID)
	return resp
}

// ToSimulationResponse converts a stored Simulation to its DTO.
func ToSimulationResponse(s *entity.Simulation) SimulationResponse {
	resp := SimulationResponse{
		ID:        s.ID.String(),
		Kind:      string(s.Kind),
		CreatedAt: s.CreatedAt,
	}

	switch s.Kind {
	case entity.SimulationKindInvestment:
		if s.InvestmentInput != nil && s.InvestmentResult != nil {
			inv := ToInvestmentResponse(*s.InvestmentInput, *s.InvestmentResult, nil)
			resp.Investment = &inv
		}
	case entity.SimulationKindRetirement:
		if s.RetirementInput != nil && s.RetirementResult != nil {
			ret := ToRetirementResponse(*s.RetirementInput, *s.RetirementResult)
			resp.Retirement = &ret
		}
	}
	return resp
}

// ToSimulationListResponse converts stored simulations to the listing DTO.
func ToSimulationListResponse(simulations []*entity.Simulation) SimulationListResponse {
	out := make([]SimulationResponse, 0, len(simulations))
	for _, s := range simulations {
		out = append(out, ToSimulationResponse(s))
	}
	return SimulationListResponse{Simulations: out, Total: len(out)}
}
