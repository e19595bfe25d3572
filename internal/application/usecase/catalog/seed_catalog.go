// Package catalog contains course and consultant catalog use cases.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
)

// CourseSeed is a raw course record. Enum fields are parsed like request input.
type CourseSeed struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Level         string `json:"level"`
	Icon          string `json:"icon"`
	Price         string `json:"price"`
	DurationHours int    `json:"duration_hours"`
	Status        string `json:"status"`
}

// ConsultantSeed is a raw consultant record.
type ConsultantSeed struct {
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Bio        string  `json:"bio"`
	Specialty  string  `json:"specialty"`
	HourlyRate string  `json:"hourly_rate"`
	Rating     float64 `json:"rating"`
	Status     string  `json:"status"`
}

// SeedCatalogInput represents the catalog to load.
type SeedCatalogInput struct {
	Courses     []CourseSeed     `json:"courses"`
	Consultants []ConsultantSeed `json:"consultants"`
}

// SeedCatalogOutput reports how many records were written.
type SeedCatalogOutput struct {
	Courses     int
	Consultants int
}

// SeedCatalogUseCase upserts the catalog by slug, so running it twice is harmless.
type SeedCatalogUseCase struct {
	courseRepo     adapter.CourseRepository
	consultantRepo adapter.ConsultantRepository
}

// NewSeedCatalogUseCase creates a new SeedCatalogUseCase instance.
func NewSeedCatalogUseCase(courseRepo adapter.CourseRepository, consultantRepo adapter.ConsultantRepository) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{
		courseRepo:     courseRepo,
		consultantRepo: consultantRepo,
	}
}

// Execute validates every record before writing any of them.
func (uc *SeedCatalogUseCase) Execute(ctx context.Context, input SeedCatalogInput) (*SeedCatalogOutput, error) {
	courses := make([]*entity.Course, 0, len(input.Courses))
	for _, raw := range input.Courses {
		course, err := parseCourse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: course %q: %v", domainerror.ErrInvalidCatalogSeed, raw.Slug, err)
		}
		courses = append(courses, course)
	}

	consultants := make([]*entity.Consultant, 0, len(input.Consultants))
	for _, raw := range input.Consultants {
		consultant, err := parseConsultant(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: consultant %q: %v", domainerror.ErrInvalidCatalogSeed, raw.Slug, err)
		}
		consultants = append(consultants, consultant)
	}

	for _, course := range courses {
		if err := uc.courseRepo.Upsert(ctx, course); err != nil {
			return nil, fmt.Errorf("failed to upsert course %s: %w", course.Slug, err)
		}
	}
	for _, consultant := range consultants {
		if err := uc.consultantRepo.Upsert(ctx, consultant); err != nil {
			return nil, fmt.Errorf("failed to upsert consultant %s: %w", consultant.Slug, err)
		}
	}

	slog.InfoContext(ctx, "catalog seeded", "courses", len(courses), "consultants", len(consultants))

	return &SeedCatalogOutput{
		Courses:     len(courses),
		Consultants: len(consultants),
	}, nil
}

func parseCourse(raw CourseSeed) (*entity.Course, error) {
	category, err := entity.ParseCourseCategory(raw.Category)
	if err != nil {
		return nil, err
	}
	level, err := entity.ParseCourseLevel(raw.Level)
	if err != nil {
		return nil, err
	}
	status, err := entity.ParseContentStatus(raw.Status)
	if err != nil {
		return nil, err
	}
	icon, err := entity.ParseIcon(raw.Icon)
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(raw.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", raw.Price, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("negative price %q", raw.Price)
	}

	return &entity.Course{
		Slug:          raw.Slug,
		Title:         raw.Title,
		Description:   raw.Description,
		Category:      category,
		Level:         level,
		Icon:          icon,
		Price:         price,
		DurationHours: raw.DurationHours,
		Status:        status,
	}, nil
}

func parseConsultant(raw ConsultantSeed) (*entity.Consultant, error) {
	specialty, err := entity.ParseCourseCategory(raw.Specialty)
	if err != nil {
		return nil, err
	}
	status, err := entity.ParseContentStatus(raw.Status)
	if err != nil {
		return nil, err
	}
	rate, err := decimal.NewFromString(raw.HourlyRate)
	if err != nil {
		return nil, fmt.Errorf("invalid hourly rate %q: %w", raw.HourlyRate, err)
	}

	return &entity.Consultant{
		Slug:       raw.Slug,
		Name:       raw.Name,
		Bio:        raw.Bio,
		Specialty:  specialty,
		HourlyRate: rate,
		Rating:     raw.Rating,
		Status:     status,
	}, nil
}
