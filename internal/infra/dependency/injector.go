// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-academy/backend/config"
	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/application/usecase/admin"
	"github.com/finance-academy/backend/internal/application/usecase/auth"
	"github.com/finance-academy/backend/internal/application/usecase/catalog"
	"github.com/finance-academy/backend/internal/application/usecase/checkout"
	"github.com/finance-academy/backend/internal/application/usecase/form"
	"github.com/finance-academy/backend/internal/application/usecase/simulator"
	"github.com/finance-academy/backend/internal/infra/scheduler"
	"github.com/finance-academy/backend/internal/infra/server/router"
	"github.com/finance-academy/backend/internal/integration/adapters"
	"github.com/finance-academy/backend/internal/integration/email"
	"github.com/finance-academy/backend/internal/integration/email/templates"
	"github.com/finance-academy/backend/internal/integration/entrypoint/controller"
	"github.com/finance-academy/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-academy/backend/internal/integration/persistence"
	"github.com/finance-academy/backend/internal/integration/persistence/seed"
	"github.com/finance-academy/backend/internal/integration/session"
)

// Sessions bundles the session store with what the rest of the wiring needs to know about it.
type Sessions struct {
	Store  adapter.SessionStore
	Health func() bool
	// Memory is set when the in-memory fallback is in use; it needs periodic cleanup.
	Memory *session.MemoryStore
	client *redis.Client
}

// Close releases the Redis connection, if any.
func (s *Sessions) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// NewSessions connects to Redis and falls back to an in-memory store when
// the URL is empty or the server is unreachable.
func NewSessions(ctx context.Context, cfg config.RedisConfig) *Sessions {
	if cfg.URL != "" {
		client, err := session.NewRedisClient(ctx, cfg.URL)
		if err == nil {
			slog.Info("Session store connected", "backend", "redis")
			return &Sessions{
				Store: session.NewRedisStore(client),
				Health: func() bool {
					pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer cancel()
					return client.Ping(pingCtx).Err() == nil
				},
				client: client,
			}
		}
		slog.Warn("Redis unavailable, using in-memory session store", "error", err)
	}

	memory := session.NewMemoryStore()
	return &Sessions{
		Store:  memory,
		Health: func() bool { return false },
		Memory: memory,
	}
}

// NewEmailSender returns the Resend client, or a recording mock when no API key is configured.
func NewEmailSender(cfg config.EmailConfig) adapter.EmailSender {
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, simulation reports will not be delivered")
		return email.NewMockEmailSender()
	}
	if cfg.BaseURL != "" {
		client, err := email.NewResendClientWithBaseURL(cfg.ResendAPIKey, cfg.BaseURL, cfg.FromName, cfg.FromEmail)
		if err == nil {
			return client
		}
		slog.Warn("Ignoring RESEND_BASE_URL", "error", err)
	}
	return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
}

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Scheduler *scheduler.Scheduler

	seedCatalog *catalog.SeedCatalogUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, sessions *Sessions, emailSender adapter.EmailSender) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	simulationRepo := persistence.NewSimulationRepository(db)
	courseRepo := persistence.NewCourseRepository(db)
	consultantRepo := persistence.NewConsultantRepository(db)
	enrollmentRepo := persistence.NewEnrollmentRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:            cfg.JWT.AccessTokenExpiry,
		Refresh:           cfg.JWT.RefreshTokenExpiry,
		RememberMeAccess:  cfg.JWT.RememberMeAccessExpiry,
		RememberMeRefresh: cfg.JWT.RememberMeRefreshExpiry,
	}, sessions.Store)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create simulator use cases
	investmentUseCase := simulator.NewSimulateInvestmentUseCase(simulationRepo)
	retirementUseCase := simulator.NewSimulateRetirementUseCase(simulationRepo)
	listSimulationsUseCase := simulator.NewListSimulationsUseCase(simulationRepo)
	getSimulationUseCase := simulator.NewGetSimulationUseCase(simulationRepo)
	deleteSimulationUseCase := simulator.NewDeleteSimulationUseCase(simulationRepo)
	sendReportUseCase := simulator.NewSendSimulationReportUseCase(simulationRepo, userRepo, renderer, emailSender)
	purgeUseCase := simulator.NewPurgeDeletedSimulationsUseCase(simulationRepo)

	// Create catalog and checkout use cases
	listCoursesUseCase := catalog.NewListCoursesUseCase(courseRepo)
	getCourseUseCase := catalog.NewGetCourseUseCase(courseRepo)
	listConsultantsUseCase := catalog.NewListConsultantsUseCase(consultantRepo)
	seedCatalogUseCase := catalog.NewSeedCatalogUseCase(courseRepo, consultantRepo)
	checkoutUseCase := checkout.NewCreateCheckoutUseCase(courseRepo, enrollmentRepo)
	listEnrollmentsUseCase := checkout.NewListEnrollmentsUseCase(enrollmentRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, sessions.Health)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	formatController := controller.NewFormatController(form.NewValidateFormUseCase())

	simulatorController := controller.NewSimulatorController(
		investmentUseCase,
		retirementUseCase,
		listSimulationsUseCase,
		getSimulationUseCase,
		deleteSimulationUseCase,
		sendReportUseCase,
	)

	catalogController := controller.NewCatalogController(
		listCoursesUseCase,
		getCourseUseCase,
		listConsultantsUseCase,
	)

	checkoutController := controller.NewCheckoutController(checkoutUseCase, listEnrollmentsUseCase)
	adminController := controller.NewAdminController(admin.NewListUsersUseCase(userRepo))

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window, cfg.RateLimit.Enabled)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create background jobs
	sched := scheduler.New()
	if err := sched.AddJob(cfg.Scheduler.CleanupSchedule, scheduler.FuncJob{JobName: "rate-limiter-cleanup", Fn: func(context.Context) error {
		if removed := loginRateLimiter.Cleanup(); removed > 0 {
			slog.Debug("rate limiter entries expired", "count", removed)
		}
		return nil
	}}); err != nil {
		return nil, err
	}
	if sessions.Memory != nil {
		if err := sched.AddJob(cfg.Scheduler.CleanupSchedule, scheduler.FuncJob{JobName: "session-cleanup", Fn: func(context.Context) error {
			if removed := sessions.Memory.Cleanup(); removed > 0 {
				slog.Debug("expired sessions removed", "count", removed)
			}
			return nil
		}}); err != nil {
			return nil, err
		}
	}
	if err := sched.AddJob(cfg.Scheduler.PurgeSchedule, scheduler.FuncJob{JobName: "simulation-purge", Fn: func(ctx context.Context) error {
		_, err := purgeUseCase.Execute(ctx, simulator.PurgeDeletedSimulationsInput{Retention: cfg.Scheduler.SimulationRetention})
		return err
	}}); err != nil {
		return nil, err
	}

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		formatController,
		simulatorController,
		catalogController,
		checkoutController,
		adminController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		Scheduler:   sched,
		seedCatalog: seedCatalogUseCase,
	}, nil
}

// SeedCatalog upserts the embedded course and consultant catalog.
func (i *Injector) SeedCatalog(ctx context.Context) error {
	input, err := seed.Catalog()
	if err != nil {
		return err
	}
	if _, err := i.seedCatalog.Execute(ctx, input); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
