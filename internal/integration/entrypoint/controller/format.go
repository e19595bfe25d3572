package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-academy/backend/internal/application/usecase/form"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/domain/valueobject"
	"github.com/finance-academy/backend/internal/integration/entrypoint/dto"
)

// FormatController exposes the pt-BR input normalizer and the form validator
// so the front-end applies the same rules as the simulators.
type FormatController struct {
	validateFormUseCase *form.ValidateFormUseCase
}

// NewFormatController creates a new format controller instance.
func NewFormatController(validateFormUseCase *form.ValidateFormUseCase) *FormatController {
	return &FormatController{
		validateFormUseCase: validateFormUseCase,
	}
}

// FormatCurrency handles POST /format/currency requests.
func (c *FormatController) FormatCurrency(ctx *gin.Context) {
	var req dto.FormatCurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.FormatCurrencyResponse{
		Formatted: valueobject.FormatNumberToCurrency(*req.Value),
	})
}

// ParseCurrency handles POST /format/parse-currency requests.
func (c *FormatController) ParseCurrency(ctx *gin.Context) {
	var req dto.ParseCurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ParseCurrencyResponse{
		Value: valueobject.ParseCurrencyToNumber(req.Text),
	})
}

// FormatCPF handles POST /format/cpf requests.
func (c *FormatController) FormatCPF(ctx *gin.Context) {
	var req dto.FormatCPFRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.FormatCPFResponse{
		Formatted: valueobject.FormatCPF(req.Text),
	})
}

// ValidateForm handles POST /forms/:form/validate requests.
func (c *FormatController) ValidateForm(ctx *gin.Context) {
	var req dto.ValidateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.validateFormUseCase.Execute(ctx.Request.Context(), form.ValidateFormInput{
		Form:   ctx.Param("form"),
		Fields: req.Fields,
	})
	if err != nil {
		var formErr *domainerror.FormError
		if errors.As(err, &formErr) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: formErr.Message,
				Code:  string(formErr.Code),
			})
			return
		}
		respondInternalError(ctx, err)
		return
	}

	errs := map[string]string(output.Errors)
	if errs == nil {
		errs = map[string]string{}
	}
	ctx.JSON(http.StatusOK, dto.ValidateFormResponse{
		Valid:  output.Valid,
		Errors: errs,
	})
}
