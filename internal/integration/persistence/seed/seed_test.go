package seed

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/application/usecase/catalog"
	"github.com/finance-academy/backend/internal/domain/entity"
	"github.com/finance-academy/backend/internal/integration/persistence"
	"github.com/finance-academy/backend/internal/integration/persistence/model"
)

func TestEmbeddedCatalogSeedsTwice(t *testing.T) {
	input, err := Catalog()
	require.NoError(t, err)
	require.NotEmpty(t, input.Courses)
	require.NotEmpty(t, input.Consultants)

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	courses := persistence.NewCourseRepository(db)
	seeder := catalog.NewSeedCatalogUseCase(courses, persistence.NewConsultantRepository(db))
	ctx := context.Background()

	first, err := seeder.Execute(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, len(input.Courses), first.Courses)

	_, err = seeder.Execute(ctx, input)
	require.NoError(t, err)

	all, err := courses.List(ctx, adapter.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(input.Courses))

	published := entity.ContentStatusPublished
	visible, err := courses.List(ctx, adapter.CourseFilter{Status: &published})
	require.NoError(t, err)
	assert.Less(t, len(visible), len(all))
}
