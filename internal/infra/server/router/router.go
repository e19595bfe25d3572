// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-academy/backend/internal/integration/entrypoint/controller"
	"github.com/finance-academy/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	formatController    *controller.FormatController
	simulatorController *controller.SimulatorController
	catalogController   *controller.CatalogController
	checkoutController  *controller.CheckoutController
	adminController     *controller.AdminController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	formatController *controller.FormatController,
	simulatorController *controller.SimulatorController,
	catalogController *controller.CatalogController,
	checkoutController *controller.CheckoutController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		formatController:    formatController,
		simulatorController: simulatorController,
		catalogController:   catalogController,
		checkoutController:  checkoutController,
		adminController:     adminController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery middleware
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.loginRateLimiter.Middleware(), r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
	}

	format := v1.Group("/format")
	{
		format.POST("/currency", r.formatController.FormatCurrency)
		format.POST("/parse-currency", r.formatController.ParseCurrency)
		format.POST("/cpf", r.formatController.FormatCPF)
	}
	v1.POST("/forms/:form/validate", r.formatController.ValidateForm)

	simulations := v1.Group("/simulations")
	{
		// Anonymous visitors may simulate; signed-in users also get the run stored.
		simulations.POST("/investment", r.authMiddleware.OptionalAuthenticate(), r.simulatorController.Investment)
		simulations.POST("/retirement", r.authMiddleware.OptionalAuthenticate(), r.simulatorController.Retirement)

		history := simulations.Group("", r.authMiddleware.Authenticate())
		history.GET("", r.simulatorController.List)
		history.GET("/:id", r.simulatorController.Get)
		history.DELETE("/:id", r.simulatorController.Delete)
		history.POST("/:id/email", r.simulatorController.SendReport)
	}

	v1.GET("/courses", r.catalogController.ListCourses)
	v1.GET("/courses/:id", r.catalogController.GetCourse)
	v1.GET("/consultants", r.catalogController.ListConsultants)

	protected := v1.Group("", r.authMiddleware.Authenticate())
	{
		protected.POST("/checkout", r.checkoutController.Checkout)
		protected.GET("/enrollments", r.checkoutController.ListEnrollments)
		protected.GET("/admin/users", r.adminController.ListUsers)
	}
}
