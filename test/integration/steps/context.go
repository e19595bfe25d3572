// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-academy/backend/config"
	"github.com/finance-academy/backend/internal/infra/dependency"
	"github.com/finance-academy/backend/internal/integration/email"
	"github.com/finance-academy/backend/internal/integration/persistence/model"
	"github.com/finance-academy/backend/internal/integration/session"
	"github.com/finance-academy/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	sharedInit  sync.Once
	testDB      *mock.Db
	redisClient *redis.Client
	emailAPI    *mock.ResendMock
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	client       *http.Client
	status       int
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	users         map[string]uuid.UUID
	passwords     map[string]string

	// Captured IDs
	simulationID string

	injector *dependency.Injector
	timeMock *mock.Time
	db       *mock.Db
	redis    *redis.Client
	emailAPI *mock.ResendMock
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

func initShared() {
	sharedInit.Do(func() {
		testDB = mock.NewDb("finance_academy", map[string]any{
			"users":       &model.UserModel{},
			"simulations": &model.SimulationModel{},
			"courses":     &model.CourseModel{},
			"consultants": &model.ConsultantModel{},
			"enrollments": &model.EnrollmentModel{},
		})
		redisClient = mock.NewRedis()
		emailAPI = mock.NewResendServer()
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		initShared()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		initShared()

		if err := testDB.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(ctx, redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}
		emailAPI.Reset()

		tc := &TestContext{
			client:         &http.Client{Timeout: 10 * time.Second},
			requestHeaders: make(map[string]string),
			users:          make(map[string]uuid.UUID),
			passwords:      make(map[string]string),
			timeMock:       mock.NewTime(),
			db:             testDB,
			redis:          redisClient,
			emailAPI:       emailAPI,
		}
		if err := tc.startServer(ctx); err != nil {
			return ctx, err
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerStorageSteps(ctx)
}

// testConfig returns the configuration the suite server runs with: Resend
// pointed at the API mock and a rate limiter tight enough to trip in a scenario.
func testConfig(emailURL string) *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Email.ResendAPIKey = "re_test_key"
	cfg.Email.BaseURL = emailURL
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.MaxAttempts = 5
	cfg.RateLimit.Window = time.Minute
	return cfg
}

func (tc *TestContext) startServer(ctx context.Context) error {
	cfg := testConfig(tc.emailAPI.URL())

	sender, err := email.NewResendClientWithBaseURL(cfg.Email.ResendAPIKey, cfg.Email.BaseURL, cfg.Email.FromName, cfg.Email.FromEmail)
	if err != nil {
		return err
	}

	sessions := &dependency.Sessions{
		Store:  session.NewRedisStore(tc.redis),
		Health: func() bool { return tc.redis.Ping(context.Background()).Err() == nil },
	}

	injector, err := dependency.NewInjector(cfg, tc.db.DbConn, sessions, sender)
	if err != nil {
		return fmt.Errorf("failed to build injector: %w", err)
	}
	if err := injector.SeedCatalog(ctx); err != nil {
		return err
	}

	tc.injector = injector
	tc.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return nil
}
