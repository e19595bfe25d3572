package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-academy/backend/internal/application/usecase/checkout"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/integration/entrypoint/dto"
)

// CheckoutController handles course purchase and enrollment endpoints.
type CheckoutController struct {
	checkoutUseCase        *checkout.CreateCheckoutUseCase
	listEnrollmentsUseCase *checkout.ListEnrollmentsUseCase
}

// NewCheckoutController creates a new checkout controller instance.
func NewCheckoutController(
	checkoutUseCase *checkout.CreateCheckoutUseCase,
	listEnrollmentsUseCase *checkout.ListEnrollmentsUseCase,
) *CheckoutController {
	return &CheckoutController{
		checkoutUseCase:        checkoutUseCase,
		listEnrollmentsUseCase: listEnrollmentsUseCase,
	}
}

// Checkout handles POST /checkout requests.
func (c *CheckoutController) Checkout(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidCheckoutInput),
		})
		return
	}

	output, err := c.checkoutUseCase.Execute(ctx.Request.Context(), checkout.CreateCheckoutInput{
		UserID:        userID,
		CourseID:      req.CourseID,
		FullName:      req.FullName,
		Email:         req.Email,
		CPF:           req.CPF,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		c.handleCheckoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEnrollmentResponse(output.Enrollment, output.Course))
}

// ListEnrollments handles GET /enrollments requests.
func (c *CheckoutController) ListEnrollments(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listEnrollmentsUseCase.Execute(ctx.Request.Context(), checkout.ListEnrollmentsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleCheckoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEnrollmentListResponse(output.Enrollments))
}

// handleCheckoutError handles checkout errors and returns appropriate HTTP responses.
func (c *CheckoutController) handleCheckoutError(ctx *gin.Context, err error) {
	var chkErr *domainerror.CheckoutError
	if errors.As(err, &chkErr) {
		ctx.JSON(checkoutStatusCode(chkErr.Code), dto.ErrorResponse{
			Error:   chkErr.Message,
			Code:    string(chkErr.Code),
			Details: chkErr.Fields,
		})
		return
	}

	respondInternalError(ctx, err)
}

// checkoutStatusCode maps checkout error codes to HTTP status codes.
func checkoutStatusCode(code domainerror.CheckoutErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCheckoutInput, domainerror.ErrCodeAmountMismatch:
		return http.StatusBadRequest
	case domainerror.ErrCodeCheckoutCourseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCourseNotAvailable:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeAlreadyEnrolled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
