// Package admin contains administrative use cases.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
)

// ListUsersInput represents the input for listing users. Empty filters are ignored.
type ListUsersInput struct {
	RequesterID uuid.UUID
	Type        string
	Status      string
}

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*entity.User
}

// ListUsersUseCase lists accounts for administrators.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the user listing.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	requester, err := uc.userRepo.FindByID(ctx, input.RequesterID)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find requester: %w", err)
	}
	if err != nil || !requester.IsAdmin() {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeForbidden,
			"admin access required",
			domainerror.ErrForbidden,
		)
	}

	var filter adapter.UserFilter

	if input.Type != "" {
		userType, err := entity.ParseUserType(input.Type)
		if err != nil {
			return nil, domainerror.NewCatalogError(domainerror.ErrCodeInvalidUserFilter, err.Error(), domainerror.ErrInvalidCatalogFilter)
		}
		filter.Type = &userType
	}

	if input.Status != "" {
		status, err := entity.ParseUserStatus(input.Status)
		if err != nil {
			return nil, domainerror.NewCatalogError(domainerror.ErrCodeInvalidUserFilter, err.Error(), domainerror.ErrInvalidCatalogFilter)
		}
		filter.Status = &status
	}

	users, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{Users: users}, nil
}
