package simulator

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/domain/validation"
)

type fakeSimulationRepo struct {
	mu          sync.Mutex
	simulations map[uuid.UUID]*entity.Simulation
	createErr   error
}

func newFakeSimulationRepo() *fakeSimulationRepo {
	return &fakeSimulationRepo{simulations: map[uuid.UUID]*entity.Simulation{}}
}

func (r *fakeSimulationRepo) Create(_ context.Context, s *entity.Simulation) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulations[s.ID] = s
	return nil
}

func (r *fakeSimulationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.simulations[id]
	if !ok || s.DeletedAt != nil {
		return nil, domainerror.ErrSimulationNotFound
	}
	return s, nil
}

func (r *fakeSimulationRepo) List(_ context.Context, f adapter.SimulationFilter) ([]*entity.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Simulation
	for _, s := range r.simulations {
		if s.UserID != f.UserID || s.DeletedAt != nil {
			continue
		}
		if f.Kind != nil && s.Kind != *f.Kind {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeSimulationRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.simulations[id].DeletedAt = &now
	return nil
}

func (r *fakeSimulationRepo) PurgeDeletedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var purged int64
	for id, s := range r.simulations {
		if s.DeletedAt != nil && s.DeletedAt.Before(cutoff) {
			delete(r.simulations, id)
			purged++
		}
	}
	return purged, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (r *fakeUserRepo) List(context.Context, adapter.UserFilter) ([]*entity.User, error) {
	return nil, nil
}

type fakeRenderer struct {
	got adapter.SimulationReportInput
}

func (r *fakeRenderer) RenderSimulationReport(in adapter.SimulationReportInput) (string, string, string, error) {
	r.got = in
	return "Sua simulação", "<p>ok</p>", "ok", nil
}

type fakeSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (s *fakeSender) Send(_ context.Context, in adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, in)
	return &adapter.SendEmailResult{ProviderID: "msg-1"}, nil
}

func TestSimulateInvestment(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous run is computed but not stored", func(t *testing.T) {
		repo := newFakeSimulationRepo()
		uc := NewSimulateInvestmentUseCase(repo)

		out, err := uc.Execute(ctx, SimulateInvestmentInput{
			InitialValue: "1.000,00",
			MonthlyValue: "500,00",
			PeriodMonths: "12",
			AnnualRate:   "12",
		})
		require.NoError(t, err)

		assert.Nil(t, out.SimulationID)
		assert.InDelta(t, 7000.0, float64(out.Result.TotalInvested), 0.001)
		assert.InDelta(t, 7468.08, float64(out.Result.FinalValue), 0.01)
		require.Len(t, out.Projection, 12)
		assert.InDelta(t, float64(out.Result.FinalValue), float64(out.Projection[11].Balance), 1e-9)
		assert.Empty(t, repo.simulations)
	})

	t.Run("authenticated run is stored", func(t *testing.T) {
		repo := newFakeSimulationRepo()
		uc := NewSimulateInvestmentUseCase(repo)
		userID := uuid.New()

		out, err := uc.Execute(ctx, SimulateInvestmentInput{
			UserID:       &userID,
			InitialValue: "0,00",
			MonthlyValue: "100,00",
			PeriodMonths: "10",
			AnnualRate:   "0",
		})
		require.NoError(t, err)
		require.NotNil(t, out.SimulationID)

		stored := repo.simulations[*out.SimulationID]
		require.NotNil(t, stored)
		assert.Equal(t, userID, stored.UserID)
		assert.InDelta(t, 1000.0, float64(stored.InvestmentResult.FinalValue), 1e-9)
	})

	t.Run("invalid form returns every field error", func(t *testing.T) {
		uc := NewSimulateInvestmentUseCase(newFakeSimulationRepo())

		_, err := uc.Execute(ctx, SimulateInvestmentInput{
			InitialValue: "abc",
			PeriodMonths: "0",
			AnnualRate:   "12",
		})

		var simErr *domainerror.SimulationError
		require.ErrorAs(t, err, &simErr)
		assert.Equal(t, domainerror.ErrCodeInvalidSimulationInput, simErr.Code)
		assert.Contains(t, simErr.Fields, validation.FieldInitialValue)
		assert.Contains(t, simErr.Fields, validation.FieldMonthlyValue)
		assert.Contains(t, simErr.Fields, validation.FieldPeriodMonths)
		assert.NotContains(t, simErr.Fields, validation.FieldAnnualRate)
		assert.ErrorIs(t, err, domainerror.ErrInvalidSimulationInput)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		repo := newFakeSimulationRepo()
		repo.createErr = errors.New("db down")
		uc := NewSimulateInvestmentUseCase(repo)
		userID := uuid.New()

		_, err := uc.Execute(ctx, SimulateInvestmentInput{
			UserID: &userID, InitialValue: "1,00", MonthlyValue: "1,00", PeriodMonths: "1", AnnualRate: "1",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestSimulateRetirement(t *testing.T) {
	ctx := context.Background()
	uc := NewSimulateRetirementUseCase(newFakeSimulationRepo())

	t.Run("computes needed capital and contribution", func(t *testing.T) {
		out, err := uc.Execute(ctx, SimulateRetirementInput{
			CurrentAge:           "30",
			RetirementAge:        "60",
			DesiredMonthlyIncome: "5.000,00",
			ExpectedAnnualReturn: "8",
		})
		require.NoError(t, err)

		assert.InDelta(t, 1500000.0, float64(out.Result.NeededCapital), 0.001)
		assert.InDelta(t, 1006.5, float64(out.Result.MonthlyContribution), 0.5)
		assert.Equal(t, 30, out.Result.YearsToRetire)
	})

	t.Run("retirement age must exceed current age", func(t *testing.T) {
		_, err := uc.Execute(ctx, SimulateRetirementInput{
			CurrentAge:           "60",
			RetirementAge:        "60",
			DesiredMonthlyIncome: "5.000,00",
			ExpectedAnnualReturn: "8",
		})

		var simErr *domainerror.SimulationError
		require.ErrorAs(t, err, &simErr)
		assert.Equal(t, "Idade de aposentadoria deve ser maior que idade atual", simErr.Fields[validation.FieldRetirementAge])
	})
}

func TestSimulationHistory(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSimulationRepo()
	owner, stranger := uuid.New(), uuid.New()

	invest := NewSimulateInvestmentUseCase(repo)
	retire := NewSimulateRetirementUseCase(repo)

	first, err := invest.Execute(ctx, SimulateInvestmentInput{
		UserID: &owner, InitialValue: "100,00", MonthlyValue: "10,00", PeriodMonths: "6", AnnualRate: "6",
	})
	require.NoError(t, err)
	_, err = retire.Execute(ctx, SimulateRetirementInput{
		UserID: &owner, CurrentAge: "40", RetirementAge: "65", DesiredMonthlyIncome: "3.000,00", ExpectedAnnualReturn: "6",
	})
	require.NoError(t, err)

	t.Run("list filters by kind", func(t *testing.T) {
		kind := entity.SimulationKindRetirement
		out, err := NewListSimulationsUseCase(repo).Execute(ctx, ListSimulationsInput{UserID: owner, Kind: &kind})
		require.NoError(t, err)
		require.Len(t, out.Simulations, 1)
		assert.Equal(t, entity.SimulationKindRetirement, out.Simulations[0].Kind)
	})

	t.Run("other users cannot read a simulation", func(t *testing.T) {
		_, err := NewGetSimulationUseCase(repo).Execute(ctx, GetSimulationInput{UserID: stranger, SimulationID: *first.SimulationID})
		assert.ErrorIs(t, err, domainerror.ErrUnauthorizedSimulationAccess)
	})

	t.Run("deleted simulations disappear", func(t *testing.T) {
		del := NewDeleteSimulationUseCase(repo)
		require.NoError(t, del.Execute(ctx, DeleteSimulationInput{UserID: owner, SimulationID: *first.SimulationID}))

		_, err := NewGetSimulationUseCase(repo).Execute(ctx, GetSimulationInput{UserID: owner, SimulationID: *first.SimulationID})
		var simErr *domainerror.SimulationError
		require.ErrorAs(t, err, &simErr)
		assert.Equal(t, domainerror.ErrCodeSimulationNotFound, simErr.Code)

		out, err := NewListSimulationsUseCase(repo).Execute(ctx, ListSimulationsInput{UserID: owner})
		require.NoError(t, err)
		assert.Len(t, out.Simulations, 1)
	})
}

func TestSendSimulationReport(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSimulationRepo()
	user := entity.NewUser("ana@example.com", "Ana", "", "hash", time.Now())
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}

	sim, err := NewSimulateInvestmentUseCase(repo).Execute(ctx, SimulateInvestmentInput{
		UserID: &user.ID, InitialValue: "1.000,00", MonthlyValue: "500,00", PeriodMonths: "12", AnnualRate: "12",
	})
	require.NoError(t, err)

	t.Run("renders and sends to the owner", func(t *testing.T) {
		renderer, sender := &fakeRenderer{}, &fakeSender{}
		uc := NewSendSimulationReportUseCase(repo, users, renderer, sender)

		out, err := uc.Execute(ctx, SendSimulationReportInput{UserID: user.ID, SimulationID: *sim.SimulationID})
		require.NoError(t, err)

		assert.Equal(t, "ana@example.com", out.SentTo)
		assert.Equal(t, "msg-1", out.ProviderID)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Sua simulação", sender.sent[0].Subject)
		assert.Equal(t, "investment", renderer.got.Kind)
		assert.Contains(t, renderer.got.Rows, adapter.ReportRow{Label: "Valor final", Value: "R$ 7.468,08"})
	})

	t.Run("provider failure maps to delivery error", func(t *testing.T) {
		uc := NewSendSimulationReportUseCase(repo, users, &fakeRenderer{}, &fakeSender{err: errors.New("503")})

		_, err := uc.Execute(ctx, SendSimulationReportInput{UserID: user.ID, SimulationID: *sim.SimulationID})
		assert.ErrorIs(t, err, domainerror.ErrReportDeliveryFailed)
	})
}

func TestPurgeDeletedSimulations(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := newFakeSimulationRepo()
	old := now.Add(-40 * 24 * time.Hour)
	recent := now.Add(-time.Hour)
	repo.simulations[uuid.New()] = &entity.Simulation{DeletedAt: &old}
	repo.simulations[uuid.New()] = &entity.Simulation{DeletedAt: &recent}
	repo.simulations[uuid.New()] = &entity.Simulation{}

	uc := NewPurgeDeletedSimulationsUseCase(repo)
	uc.now = func() time.Time { return now }

	out, err := uc.Execute(ctx, PurgeDeletedSimulationsInput{Retention: 30 * 24 * time.Hour})
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.Purged)
	assert.Len(t, repo.simulations, 2)

	_, err = uc.Execute(ctx, PurgeDeletedSimulationsInput{})
	assert.Error(t, err)
}
