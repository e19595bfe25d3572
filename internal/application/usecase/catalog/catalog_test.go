package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
)

type memCourseRepo struct {
	bySlug     map[string]*entity.Course
	lastFilter adapter.CourseFilter
}

func newMemCourseRepo() *memCourseRepo {
	return &memCourseRepo{bySlug: map[string]*entity.Course{}}
}

func (r *memCourseRepo) Upsert(_ context.Context, c *entity.Course) error {
	if existing, ok := r.bySlug[c.Slug]; ok {
		c.ID = existing.ID
	} else if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.bySlug[c.Slug] = c
	return nil
}

func (r *memCourseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Course, error) {
	for _, c := range r.bySlug {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCourseNotFound
}

func (r *memCourseRepo) FindBySlug(_ context.Context, slug string) (*entity.Course, error) {
	if c, ok := r.bySlug[slug]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCourseNotFound
}

func (r *memCourseRepo) List(_ context.Context, f adapter.CourseFilter) ([]*entity.Course, error) {
	r.lastFilter = f
	var out []*entity.Course
	for _, c := range r.bySlug {
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		if f.Category != nil && c.Category != *f.Category {
			continue
		}
		if f.Level != nil && c.Level != *f.Level {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type memConsultantRepo struct {
	bySlug map[string]*entity.Consultant
}

func (r *memConsultantRepo) Upsert(_ context.Context, c *entity.Consultant) error {
	r.bySlug[c.Slug] = c
	return nil
}

func (r *memConsultantRepo) List(_ context.Context, f adapter.ConsultantFilter) ([]*entity.Consultant, error) {
	var out []*entity.Consultant
	for _, c := range r.bySlug {
		if f.Specialty != nil && c.Specialty != *f.Specialty {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func seedInput() SeedCatalogInput {
	return SeedCatalogInput{
		Courses: []CourseSeed{
			{Slug: "primeiros-passos", Title: "Primeiros Passos", Category: "budgeting", Level: "beginner", Icon: "PiggyBank", Price: "0", Status: "published"},
			{Slug: "acoes", Title: "Ações", Category: "investments", Level: "advanced", Icon: "TrendingUp", Price: "497.00", Status: "published"},
			{Slug: "imposto", Title: "Imposto de Renda", Category: "taxes", Level: "intermediate", Icon: "Receipt", Price: "197.00", Status: "draft"},
		},
		Consultants: []ConsultantSeed{
			{Slug: "maria", Name: "Maria", Specialty: "retirement", HourlyRate: "250.00", Rating: 4.9, Status: "published"},
		},
	}
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	courses := newMemCourseRepo()
	consultants := &memConsultantRepo{bySlug: map[string]*entity.Consultant{}}
	uc := NewSeedCatalogUseCase(courses, consultants)

	out, err := uc.Execute(ctx, seedInput())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Courses)
	assert.Equal(t, 1, out.Consultants)

	firstID := courses.bySlug["acoes"].ID

	t.Run("is idempotent", func(t *testing.T) {
		_, err := uc.Execute(ctx, seedInput())
		require.NoError(t, err)
		assert.Len(t, courses.bySlug, 3)
		assert.Equal(t, firstID, courses.bySlug["acoes"].ID)
	})

	t.Run("parses enums and price", func(t *testing.T) {
		c := courses.bySlug["acoes"]
		assert.Equal(t, entity.CourseCategoryInvestments, c.Category)
		assert.Equal(t, entity.IconTrendingUp, c.Icon)
		assert.True(t, c.Price.Equal(decimal.RequireFromString("497")))
	})

	t.Run("rejects unknown variants before writing", func(t *testing.T) {
		fresh := newMemCourseRepo()
		bad := seedInput()
		bad.Courses[2].Icon = "Rocket"

		_, err := NewSeedCatalogUseCase(fresh, consultants).Execute(ctx, bad)
		assert.True(t, errors.Is(err, domainerror.ErrInvalidCatalogSeed))
		assert.Empty(t, fresh.bySlug)
	})
}

func TestListCourses(t *testing.T) {
	ctx := context.Background()
	courses := newMemCourseRepo()
	_, err := NewSeedCatalogUseCase(courses, &memConsultantRepo{bySlug: map[string]*entity.Consultant{}}).Execute(ctx, seedInput())
	require.NoError(t, err)

	uc := NewListCoursesUseCase(courses)

	t.Run("only published", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListCoursesInput{})
		require.NoError(t, err)
		assert.Len(t, out.Courses, 2)
	})

	t.Run("filters by category and level", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListCoursesInput{Category: "investments", Level: "advanced"})
		require.NoError(t, err)
		require.Len(t, out.Courses, 1)
		assert.Equal(t, "acoes", out.Courses[0].Slug)
	})

	t.Run("unknown filter", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListCoursesInput{Level: "expert"})
		var catErr *domainerror.CatalogError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, domainerror.ErrCodeInvalidCatalogFilter, catErr.Code)
	})

	t.Run("draft course is hidden from get", func(t *testing.T) {
		_, err := NewGetCourseUseCase(courses).Execute(ctx, GetCourseInput{CourseID: courses.bySlug["imposto"].ID})
		assert.ErrorIs(t, err, domainerror.ErrCourseNotFound)

		course, err := NewGetCourseUseCase(courses).Execute(ctx, GetCourseInput{CourseID: courses.bySlug["acoes"].ID})
		require.NoError(t, err)
		assert.Equal(t, "Ações", course.Title)
	})
}

func TestListConsultants(t *testing.T) {
	ctx := context.Background()
	repo := &memConsultantRepo{bySlug: map[string]*entity.Consultant{}}
	_, err := NewSeedCatalogUseCase(newMemCourseRepo(), repo).Execute(ctx, seedInput())
	require.NoError(t, err)

	uc := NewListConsultantsUseCase(repo)

	out, err := uc.Execute(ctx, ListConsultantsInput{Specialty: "retirement"})
	require.NoError(t, err)
	assert.Len(t, out.Consultants, 1)

	out, err = uc.Execute(ctx, ListConsultantsInput{Specialty: "taxes"})
	require.NoError(t, err)
	assert.Empty(t, out.Consultants)

	_, err = uc.Execute(ctx, ListConsultantsInput{Specialty: "crypto"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidCatalogFilter)
}
