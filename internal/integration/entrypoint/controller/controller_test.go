package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/application/usecase/admin"
	"github.com/finance-academy/backend/internal/application/usecase/checkout"
	"github.com/finance-academy/backend/internal/application/usecase/form"
	"github.com/finance-academy/backend/internal/application/usecase/simulator"
	"github.com/finance-academy/backend/internal/domain/entity"
	"github.com/finance-academy/backend/internal/integration/adapters"
	"github.com/finance-academy/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-academy/backend/internal/integration/persistence"
	"github.com/finance-academy/backend/internal/integration/persistence/model"
	"github.com/finance-academy/backend/internal/integration/session"
)

type testServer struct {
	router *gin.Engine
	tokens adapter.TokenService
	users  adapter.UserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	users := persistence.NewUserRepository(db)
	simulations := persistence.NewSimulationRepository(db)
	courses := persistence.NewCourseRepository(db)
	enrollments := persistence.NewEnrollmentRepository(db)
	tokens := adapters.NewTokenService("test-secret", adapters.DefaultTokenDurations(), session.NewMemoryStore())
	auth := middleware.NewAuthMiddleware(tokens)

	sim := NewSimulatorController(
		simulator.NewSimulateInvestmentUseCase(simulations),
		simulator.NewSimulateRetirementUseCase(simulations),
		simulator.NewListSimulationsUseCase(simulations),
		simulator.NewGetSimulationUseCase(simulations),
		simulator.NewDeleteSimulationUseCase(simulations),
		nil,
	)
	format := NewFormatController(form.NewValidateFormUseCase())
	chk := NewCheckoutController(
		checkout.NewCreateCheckoutUseCase(courses, enrollments),
		checkout.NewListEnrollmentsUseCase(enrollments),
	)
	adm := NewAdminController(admin.NewListUsersUseCase(users))

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/format/currency", format.FormatCurrency)
	api.POST("/format/parse-currency", format.ParseCurrency)
	api.POST("/format/cpf", format.FormatCPF)
	api.POST("/forms/:form/validate", format.ValidateForm)
	api.POST("/simulations/investment", auth.OptionalAuthenticate(), sim.Investment)
	api.POST("/simulations/retirement", auth.OptionalAuthenticate(), sim.Retirement)
	protected := api.Group("", auth.Authenticate())
	protected.GET("/simulations", sim.List)
	protected.GET("/simulations/:id", sim.Get)
	protected.DELETE("/simulations/:id", sim.Delete)
	protected.POST("/checkout", chk.Checkout)
	protected.GET("/admin/users", adm.ListUsers)

	return &testServer{router: r, tokens: tokens, users: users}
}

func (s *testServer) tokenFor(t *testing.T, userType entity.UserType) string {
	t.Helper()
	user := entity.NewUser(uuid.NewString()+"@example.com", "Ana", "", "hash", time.Now().UTC())
	user.Type = userType
	require.NoError(t, s.users.Create(context.Background(), user))

	pair, err := s.tokens.GenerateTokenPair(context.Background(), user.ID, user.Email, false)
	require.NoError(t, err)
	return pair.AccessToken
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func TestFormatEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/v1/format/currency", "", map[string]any{"value": 1234.5})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.234,50", body["formatted"])

	w, _ = s.do(t, http.MethodPost, "/api/v1/format/currency", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = s.do(t, http.MethodPost, "/api/v1/format/parse-currency", "", map[string]any{"text": "R$ 1.234,56"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1234.56, body["value"], 1e-9)

	w, body = s.do(t, http.MethodPost, "/api/v1/format/cpf", "", map[string]any{"text": "12345678909"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "123.456.789-09", body["formatted"])
}

func TestValidateFormEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/v1/forms/unknown/validate", "", map[string]any{"fields": map[string]string{}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "FRM-010001", body["code"])

	w, body = s.do(t, http.MethodPost, "/api/v1/forms/investment/validate", "", map[string]any{
		"fields": map[string]string{"initial_value": "1.000,00", "monthly_value": "500,00", "period_months": "12", "annual_rate": "12"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["valid"])
	assert.Empty(t, body["errors"])

	w, body = s.do(t, http.MethodPost, "/api/v1/forms/investment/validate", "", map[string]any{"fields": map[string]string{}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["valid"])
	assert.Contains(t, body["errors"], "initial_value")
}

func TestInvestmentSimulation(t *testing.T) {
	s := newTestServer(t)
	req := map[string]string{
		"initial_value": "1.000,00",
		"monthly_value": "500,00",
		"period_months": "12",
		"annual_rate":   "12",
	}

	t.Run("anonymous", func(t *testing.T) {
		w, body := s.do(t, http.MethodPost, "/api/v1/simulations/investment", "", req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, body, "simulation_id")

		result := body["result"].(map[string]any)
		final := result["final_value"].(map[string]any)
		assert.Equal(t, "7.468,08", final["formatted"])
		assert.Len(t, body["projection"], 12)
	})

	t.Run("validation errors carry field details", func(t *testing.T) {
		w, body := s.do(t, http.MethodPost, "/api/v1/simulations/investment", "", map[string]string{"initial_value": "abc"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "SIM-010001", body["code"])
		details := body["details"].(map[string]any)
		assert.Contains(t, details, "initial_value")
		assert.Contains(t, details, "period_months")
	})

	t.Run("authenticated run is stored and can be deleted", func(t *testing.T) {
		token := s.tokenFor(t, entity.UserTypeStudent)

		w, body := s.do(t, http.MethodPost, "/api/v1/simulations/investment", token, req)
		require.Equal(t, http.StatusOK, w.Code)
		id, ok := body["simulation_id"].(string)
		require.True(t, ok)

		w, body = s.do(t, http.MethodGet, "/api/v1/simulations", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, body["total"])

		w, body = s.do(t, http.MethodGet, "/api/v1/simulations/"+id, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "investment", body["kind"])

		other := s.tokenFor(t, entity.UserTypeStudent)
		w, _ = s.do(t, http.MethodGet, "/api/v1/simulations/"+id, other, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, _ = s.do(t, http.MethodDelete, "/api/v1/simulations/"+id, token, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w, _ = s.do(t, http.MethodGet, "/api/v1/simulations/"+id, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRetirementSimulation(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/v1/simulations/retirement", "", map[string]string{
		"current_age":            "30",
		"retirement_age":         "60",
		"desired_monthly_income": "5.000,00",
		"expected_annual_return": "8",
	})
	require.Equal(t, http.StatusOK, w.Code)

	result := body["result"].(map[string]any)
	capital := result["needed_capital"].(map[string]any)
	assert.Equal(t, "1.500.000,00", capital["formatted"])
	assert.EqualValues(t, 30, result["years_to_retire"])
	assert.EqualValues(t, 4, result["withdrawal_rate"])
}

func TestProtectedEndpoints(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodPost, "/api/v1/checkout", "", map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := s.do(t, http.MethodGet, "/api/v1/admin/users", s.tokenFor(t, entity.UserTypeStudent), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ADM-010001", body["code"])

	w, body = s.do(t, http.MethodGet, "/api/v1/admin/users", s.tokenFor(t, entity.UserTypeAdmin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["total"])

	w, _ = s.do(t, http.MethodGet, "/api/v1/admin/users?type=robot", s.tokenFor(t, entity.UserTypeAdmin), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, entity.UserTypeStudent)

	w, body := s.do(t, http.MethodPost, "/api/v1/checkout", token, map[string]string{
		"course_id": "not-a-uuid",
		"email":     "ana@",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CHK-010001", body["code"])
	details := body["details"].(map[string]any)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "course_id")
}
