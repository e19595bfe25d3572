// Package catalog contains course and consultant catalog use cases.
package catalog

import (
	"context"
	"fmt"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
)

// ListConsultantsInput represents the input for listing consultants.
type ListConsultantsInput struct {
	Specialty string
}

// ListConsultantsOutput represents the output of listing consultants.
type ListConsultantsOutput struct {
	Consultants []*entity.Consultant
}

// ListConsultantsUseCase lists the published consultants.
type ListConsultantsUseCase struct {
	consultantRepo adapter.ConsultantRepository
}

// NewListConsultantsUseCase creates a new ListConsultantsUseCase instance.
func NewListConsultantsUseCase(consultantRepo adapter.ConsultantRepository) *ListConsultantsUseCase {
	return &ListConsultantsUseCase{
		consultantRepo: consultantRepo,
	}
}

// Execute performs the consultant listing.
func (uc *ListConsultantsUseCase) Execute(ctx context.Context, input ListConsultantsInput) (*ListConsultantsOutput, error) {
	published := entity.ContentStatusPublished
	filter := adapter.ConsultantFilter{Status: &published}

	if input.Specialty != "" {
		specialty, err := entity.ParseCourseCategory(input.Specialty)
		if err != nil {
			return nil, invalidFilter(err)
		}
		filter.Specialty = &specialty
	}

	consultants, err := uc.consultantRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultants: %w", err)
	}

	return &ListConsultantsOutput{Consultants: consultants}, nil
}
