package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-academy/backend/internal/application/usecase/catalog"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/integration/entrypoint/dto"
)

// CatalogController handles course and consultant endpoints.
type CatalogController struct {
	listCoursesUseCase     *catalog.ListCoursesUseCase
	getCourseUseCase       *catalog.GetCourseUseCase
	listConsultantsUseCase *catalog.ListConsultantsUseCase
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(
	listCoursesUseCase *catalog.ListCoursesUseCase,
	getCourseUseCase *catalog.GetCourseUseCase,
	listConsultantsUseCase *catalog.ListConsultantsUseCase,
) *CatalogController {
	return &CatalogController{
		listCoursesUseCase:     listCoursesUseCase,
		getCourseUseCase:       getCourseUseCase,
		listConsultantsUseCase: listConsultantsUseCase,
	}
}

// ListCourses handles GET /courses requests.
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	var query dto.ListCoursesQuery
	_ = ctx.ShouldBindQuery(&query)

	output, err := c.listCoursesUseCase.Execute(ctx.Request.Context(), catalog.ListCoursesInput{
		Category: query.Category,
		Level:    query.Level,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCourseListResponse(output.Courses))
}

// GetCourse handles GET /courses/:id requests.
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeCourseNotFound))
	if !ok {
		return
	}

	course, err := c.getCourseUseCase.Execute(ctx.Request.Context(), catalog.GetCourseInput{
		CourseID: courseID,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

// ListConsultants handles GET /consultants requests.
func (c *CatalogController) ListConsultants(ctx *gin.Context) {
	var query dto.ListConsultantsQuery
	_ = ctx.ShouldBindQuery(&query)

	output, err := c.listConsultantsUseCase.Execute(ctx.Request.Context(), catalog.ListConsultantsInput{
		Specialty: query.Specialty,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConsultantListResponse(output.Consultants))
}

// handleCatalogError handles catalog and admin errors and returns appropriate HTTP responses.
func handleCatalogError(ctx *gin.Context, err error) {
	var catErr *domainerror.CatalogError
	if errors.As(err, &catErr) {
		ctx.JSON(catalogStatusCode(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// catalogStatusCode maps catalog and admin error codes to HTTP status codes.
func catalogStatusCode(code domainerror.CatalogErrorCode) int {
	switch code {
	case domainerror.ErrCodeCourseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCatalogFilter, domainerror.ErrCodeInvalidUserFilter:
		return http.StatusBadRequest
	case domainerror.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
