package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-academy/backend/internal/application/usecase/admin"
	"github.com/finance-academy/backend/internal/integration/entrypoint/dto"
)

// AdminController handles the admin dashboard endpoints.
type AdminController struct {
	listUsersUseCase *admin.ListUsersUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(listUsersUseCase *admin.ListUsersUseCase) *AdminController {
	return &AdminController{
		listUsersUseCase: listUsersUseCase,
	}
}

// ListUsers handles GET /admin/users requests.
func (c *AdminController) ListUsers(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUsersUseCase.Execute(ctx.Request.Context(), admin.ListUsersInput{
		RequesterID: userID,
		Type:        ctx.Query("type"),
		Status:      ctx.Query("status"),
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}
