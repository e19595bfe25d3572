// Package catalog contains course and consultant catalog use cases.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
)

// ListCoursesInput represents the input for listing courses. Empty filters are ignored.
type ListCoursesInput struct {
	Category string
	Level    string
}

// ListCoursesOutput represents the output of listing courses.
type ListCoursesOutput struct {
	Courses []*entity.Course
}

// ListCoursesUseCase lists the published courses.
type ListCoursesUseCase struct {
	courseRepo adapter.CourseRepository
}

// NewListCoursesUseCase creates a new ListCoursesUseCase instance.
func NewListCoursesUseCase(courseRepo adapter.CourseRepository) *ListCoursesUseCase {
	return &ListCoursesUseCase{
		courseRepo: courseRepo,
	}
}

// Execute performs the course listing.
func (uc *ListCoursesUseCase) Execute(ctx context.Context, input ListCoursesInput) (*ListCoursesOutput, error) {
	published := entity.ContentStatusPublished
	filter := adapter.CourseFilter{Status: &published}

	if input.Category != "" {
		category, err := entity.ParseCourseCategory(input.Category)
		if err != nil {
			return nil, invalidFilter(err)
		}
		filter.Category = &category
	}

	if input.Level != "" {
		level, err := entity.ParseCourseLevel(input.Level)
		if err != nil {
			return nil, invalidFilter(err)
		}
		filter.Level = &level
	}

	courses, err := uc.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return &ListCoursesOutput{Courses: courses}, nil
}

// GetCourseInput represents the input for getting a course.
type GetCourseInput struct {
	CourseID uuid.UUID
}

// GetCourseUseCase retrieves a published course.
type GetCourseUseCase struct {
	courseRepo adapter.CourseRepository
}

// NewGetCourseUseCase creates a new GetCourseUseCase instance.
func NewGetCourseUseCase(courseRepo adapter.CourseRepository) *GetCourseUseCase {
	return &GetCourseUseCase{
		courseRepo: courseRepo,
	}
}

// Execute performs the course retrieval. Unpublished courses are reported as not found.
func (uc *GetCourseUseCase) Execute(ctx context.Context, input GetCourseInput) (*entity.Course, error) {
	course, err := uc.courseRepo.FindByID(ctx, input.CourseID)
	if err != nil && !errors.Is(err, domainerror.ErrCourseNotFound) {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}

	if err != nil || course.Status != entity.ContentStatusPublished {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCourseNotFound,
			"course not found",
			domainerror.ErrCourseNotFound,
		)
	}

	return course, nil
}

func invalidFilter(err error) error {
	return domainerror.NewCatalogError(
		domainerror.ErrCodeInvalidCatalogFilter,
		err.Error(),
		domainerror.ErrInvalidCatalogFilter,
	)
}
