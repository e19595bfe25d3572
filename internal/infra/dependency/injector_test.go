package dependency

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-academy/backend/config"
	"github.com/finance-academy/backend/internal/integration/email"
	"github.com/finance-academy/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestNewSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		sessions := NewSessions(ctx, config.RedisConfig{URL: "redis://" + mr.Addr()})
		defer sessions.Close()

		assert.Nil(t, sessions.Memory)
		assert.True(t, sessions.Health())
	})

	t.Run("falls back to memory", func(t *testing.T) {
		sessions := NewSessions(ctx, config.RedisConfig{URL: "redis://127.0.0.1:1/0"})
		defer sessions.Close()

		assert.NotNil(t, sessions.Memory)
		assert.False(t, sessions.Health())
	})

	t.Run("empty url", func(t *testing.T) {
		sessions := NewSessions(ctx, config.RedisConfig{})
		assert.NotNil(t, sessions.Memory)
	})
}

func TestInjectorServesSeededCatalog(t *testing.T) {
	t.Setenv("ENV", "test")
	cfg := config.Load()
	ctx := context.Background()

	sessions := NewSessions(ctx, config.RedisConfig{})
	inj, err := NewInjector(cfg, newTestDB(t), sessions, email.NewMockEmailSender())
	require.NoError(t, err)
	defer inj.Scheduler.Stop()

	require.NoError(t, inj.SeedCatalog(ctx))
	require.NoError(t, inj.SeedCatalog(ctx))
	assert.ElementsMatch(t, []string{"rate-limiter-cleanup", "session-cleanup", "simulation-purge"}, inj.Scheduler.Jobs())
	require.NoError(t, inj.Scheduler.RunNow("simulation-purge"))

	engine := inj.Router.Setup(cfg.Server.Environment)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Courses []struct {
			Slug           string `json:"slug"`
			PriceFormatted string `json:"price_formatted"`
		} `json:"courses"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 5, body.Total)
	for _, c := range body.Courses {
		assert.NotEmpty(t, c.PriceFormatted)
	}
}
