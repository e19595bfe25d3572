package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-academy/backend/internal/application/usecase/simulator"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/integration/entrypoint/dto"
	"github.com/finance-academy/backend/internal/integration/entrypoint/middleware"
)

// SimulatorController handles the investment and retirement simulator endpoints.
type SimulatorController struct {
	investmentUseCase *simulator.SimulateInvestmentUseCase
	retirementUseCase *simulator.SimulateRetirementUseCase
	listUseCase       *simulator.ListSimulationsUseCase
	getUseCase        *simulator.GetSimulationUseCase
	deleteUseCase     *simulator.DeleteSimulationUseCase
	reportUseCase     *simulator.SendSimulationReportUseCase
}

// NewSimulatorController creates a new simulator controller instance.
func NewSimulatorController(
	investmentUseCase *simulator.SimulateInvestmentUseCase,
	retirementUseCase *simulator.SimulateRetirementUseCase,
	listUseCase *simulator.ListSimulationsUseCase,
	getUseCase *simulator.GetSimulationUseCase,
	deleteUseCase *simulator.DeleteSimulationUseCase,
	reportUseCase *simulator.SendSimulationReportUseCase,
) *SimulatorController {
	return &SimulatorController{
		investmentUseCase: investmentUseCase,
		retirementUseCase: retirementUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		deleteUseCase:     deleteUseCase,
		reportUseCase:     reportUseCase,
	}
}

// Investment handles POST /simulations/investment requests.
// Anonymous requests are computed but not stored.
func (c *SimulatorController) Investment(ctx *gin.Context) {
	var req dto.InvestmentSimulationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidBody(ctx)
		return
	}

	input := simulator.SimulateInvestmentInput{
		InitialValue: req.InitialValue,
		MonthlyValue: req.MonthlyValue,
		PeriodMonths: req.PeriodMonths,
		AnnualRate:   req.AnnualRate,
	}
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		input.UserID = &userID
	}

	output, err := c.investmentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromInvestmentOutput(output))
}

// Retirement handles POST /simulations/retirement requests.
func (c *SimulatorController) Retirement(ctx *gin.Context) {
	var req dto.RetirementSimulationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidBody(ctx)
		return
	}

	input := simulator.SimulateRetirementInput{
		CurrentAge:           req.CurrentAge,
		RetirementAge:        req.RetirementAge,
		DesiredMonthlyIncome: req.DesiredMonthlyIncome,
		ExpectedAnnualReturn: req.ExpectedAnnualReturn,
	}
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		input.UserID = &userID
	}

	output, err := c.retirementUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromRetirementOutput(output))
}

// List handles GET /simulations requests.
func (c *SimulatorController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var query dto.ListSimulationsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeInvalidSimulationInput),
		})
		return
	}

	input := simulator.ListSimulationsInput{
		UserID: userID,
		Limit:  query.Limit,
	}
	if query.Kind != "" {
		kind, err := entity.ParseSimulationKind(query.Kind)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid simulation kind",
				Code:  string(domainerror.ErrCodeInvalidSimulationKind),
			})
			return
		}
		input.Kind = &kind
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationListResponse(output.Simulations))
}

// Get handles GET /simulations/:id requests.
func (c *SimulatorController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simulationID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeSimulationNotFound))
	if !ok {
		return
	}

	simulation, err := c.getUseCase.Execute(ctx.Request.Context(), simulator.GetSimulationInput{
		UserID:       userID,
		SimulationID: simulationID,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationResponse(simulation))
}

// Delete handles DELETE /simulations/:id requests.
func (c *SimulatorController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simulationID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeSimulationNotFound))
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), simulator.DeleteSimulationInput{
		UserID:       userID,
		SimulationID: simulationID,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SendReport handles POST /simulations/:id/email requests.
func (c *SimulatorController) SendReport(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simulationID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeSimulationNotFound))
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), simulator.SendSimulationReportInput{
		UserID:       userID,
		SimulationID: simulationID,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.SimulationReportResponse{
		Message: "Relatório enviado",
		SentTo:  output.SentTo,
	})
}

func (c *SimulatorController) invalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  string(domainerror.ErrCodeMissingSimulationField),
	})
}

// handleSimulationError handles simulation errors and returns appropriate HTTP responses.
func (c *SimulatorController) handleSimulationError(ctx *gin.Context, err error) {
	var simErr *domainerror.SimulationError
	if errors.As(err, &simErr) {
		ctx.JSON(simulationStatusCode(simErr.Code), dto.ErrorResponse{
			Error:   simErr.Message,
			Code:    string(simErr.Code),
			Details: simErr.Fields,
		})
		return
	}

	respondInternalError(ctx, err)
}

// simulationStatusCode maps simulation error codes to HTTP status codes.
func simulationStatusCode(code domainerror.SimulationErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSimulationInput,
		domainerror.ErrCodeInvalidSimulationKind,
		domainerror.ErrCodeMissingSimulationField:
		return http.StatusBadRequest
	case domainerror.ErrCodeSimulationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedSimulationAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeReportDeliveryFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
