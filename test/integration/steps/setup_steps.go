package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/finance-academy/backend/internal/integration/persistence/model"
)

const defaultPassword = "SenhaForte123"

func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^a user exists with email "([^"]*)"$`, aUserExistsWithEmail)
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, aUserExistsWithEmailAndPassword)
	ctx.Step(`^an? (student|consultant|admin) user exists with email "([^"]*)"$`, aTypedUserExistsWithEmail)
	ctx.Step(`^an inactive user exists with email "([^"]*)"$`, anInactiveUserExistsWithEmail)
	ctx.Step(`^I am logged in as "([^"]*)"$`, iAmLoggedInAs)
	ctx.Step(`^I am not logged in$`, iAmNotLoggedIn)
	ctx.Step(`^"([^"]*)" has a deleted simulation from (\d+) days ago$`, hasADeletedSimulationFromDaysAgo)
	ctx.Step(`^the email provider fails with status (\d+)$`, theEmailProviderFailsWithStatus)
	ctx.Step(`^the "([^"]*)" job runs$`, theJobRuns)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.timeMock.SetCurrentTime(now)
	return nil
}

func aUserExistsWithEmail(ctx context.Context, email string) error {
	return GetTestContext(ctx).createUser(email, defaultPassword, "student", "active")
}

func aUserExistsWithEmailAndPassword(ctx context.Context, email, password string) error {
	return GetTestContext(ctx).createUser(email, password, "student", "active")
}

func aTypedUserExistsWithEmail(ctx context.Context, userType, email string) error {
	return GetTestContext(ctx).createUser(email, defaultPassword, userType, "active")
}

func anInactiveUserExistsWithEmail(ctx context.Context, email string) error {
	return GetTestContext(ctx).createUser(email, defaultPassword, "student", "inactive")
}

func (tc *TestContext) createUser(email, password, userType, status string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := tc.timeMock.Now()
	user := &model.UserModel{
		ID:              uuid.New(),
		Email:           email,
		Name:            "Usuário " + email,
		PasswordHash:    string(hash),
		Type:            userType,
		Status:          status,
		TermsAcceptedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := tc.db.DbConn.Create(user).Error; err != nil {
		return err
	}

	tc.users[email] = user.ID
	tc.passwords[email] = password
	return nil
}

func iAmLoggedInAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if _, ok := tc.users[email]; !ok {
		if err := tc.createUser(email, defaultPassword, "student", "active"); err != nil {
			return err
		}
	}

	tc.accessToken = ""
	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, tc.passwords[email])
	if err := tc.send(http.MethodPost, "/api/v1/auth/login", []byte(body)); err != nil {
		return err
	}
	if tc.status != http.StatusOK {
		return fmt.Errorf("login as %s failed with status %d: %s", email, tc.status, tc.responseBody)
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &tokens); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}

	tc.accessToken = tokens.AccessToken
	tc.refreshToken = tokens.RefreshToken
	tc.currentUserID = tc.users[email]
	return nil
}

func iAmNotLoggedIn(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.accessToken = ""
	tc.refreshToken = ""
	tc.currentUserID = uuid.Nil
	return nil
}

func hasADeletedSimulationFromDaysAgo(ctx context.Context, email string, days int) error {
	tc := GetTestContext(ctx)
	userID, ok := tc.users[email]
	if !ok {
		return fmt.Errorf("user %s was not created by the scenario", email)
	}

	deletedAt := tc.timeMock.DaysAgo(days)
	simulation := &model.SimulationModel{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          "investment",
		InitialValue:  1000,
		MonthlyValue:  100,
		PeriodMonths:  12,
		AnnualRate:    6,
		FinalValue:    2295.29,
		TotalInvested: 2200,
		Earnings:      95.29,
		CreatedAt:     deletedAt.Add(-time.Hour),
		DeletedAt:     gorm.DeletedAt{Time: deletedAt, Valid: true},
	}
	return tc.db.DbConn.Create(simulation).Error
}

func theEmailProviderFailsWithStatus(ctx context.Context, status int) error {
	GetTestContext(ctx).emailAPI.Fail(status, "validation_error", "invalid recipient")
	return nil
}

func theJobRuns(ctx context.Context, name string) error {
	return GetTestContext(ctx).injector.Scheduler.RunNow(name)
}
