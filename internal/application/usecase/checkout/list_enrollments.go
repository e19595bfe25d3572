// Package checkout contains course purchase use cases.
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
)

// ListEnrollmentsInput represents the input for listing enrollments.
type ListEnrollmentsInput struct {
	UserID uuid.UUID
}

// ListEnrollmentsOutput represents the output of listing enrollments.
type ListEnrollmentsOutput struct {
	Enrollments []*entity.EnrollmentWithCourse
}

// ListEnrollmentsUseCase handles listing a user's enrollments.
type ListEnrollmentsUseCase struct {
	enrollmentRepo adapter.EnrollmentRepository
}

// NewListEnrollmentsUseCase creates a new ListEnrollmentsUseCase instance.
func NewListEnrollmentsUseCase(enrollmentRepo adapter.EnrollmentRepository) *ListEnrollmentsUseCase {
	return &ListEnrollmentsUseCase{
		enrollmentRepo: enrollmentRepo,
	}
}

// Execute performs the enrollment listing.
func (uc *ListEnrollmentsUseCase) Execute(ctx context.Context, input ListEnrollmentsInput) (*ListEnrollmentsOutput, error) {
	enrollments, err := uc.enrollmentRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return &ListEnrollmentsOutput{Enrollments: enrollments}, nil
}
