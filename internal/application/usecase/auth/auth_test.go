package auth

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/integration/adapters"
	"github.com/finance-academy/backend/internal/integration/persistence"
	"github.com/finance-academy/backend/internal/integration/persistence/model"
	"github.com/finance-academy/backend/internal/integration/session"
)

type authFixture struct {
	db       *gorm.DB
	tokens   adapter.TokenService
	register *RegisterUserUseCase
	login    *LoginUserUseCase
	refresh  *RefreshTokenUseCase
	logout   *LogoutUserUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	users := persistence.NewUserRepository(db)
	passwords := adapters.NewPasswordServiceWithCost(bcrypt.MinCost)
	tokens := adapters.NewTokenService("auth-test-secret", adapters.DefaultTokenDurations(), session.NewMemoryStore())

	return &authFixture{
		db:       db,
		tokens:   tokens,
		register: NewRegisterUserUseCase(users, passwords, tokens),
		login:    NewLoginUserUseCase(users, passwords, tokens),
		refresh:  NewRefreshTokenUseCase(tokens),
		logout:   NewLogoutUserUseCase(tokens),
	}
}

func assertAuthCode(t *testing.T, err error, code domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, code, authErr.Code)
}

func validRegistration() RegisterUserInput {
	return RegisterUserInput{
		Email:         "  Maria@Example.com ",
		Name:          "Maria Souza",
		Password:      "SenhaForte123",
		CPF:           "123.456.789-09",
		TermsAccepted: true,
	}
}

func TestRegisterUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", out.User.Email)
	assert.Equal(t, entity.UserTypeStudent, out.User.Type)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	tests := []struct {
		name   string
		mutate func(*RegisterUserInput)
		code   domainerror.AuthErrorCode
	}{
		{"duplicate email", func(in *RegisterUserInput) {}, domainerror.ErrCodeEmailExists},
		{"terms not accepted", func(in *RegisterUserInput) { in.TermsAccepted = false }, domainerror.ErrCodeTermsNotAccepted},
		{"malformed email", func(in *RegisterUserInput) { in.Email = "maria" }, domainerror.ErrCodeInvalidEmail},
		{"malformed cpf", func(in *RegisterUserInput) { in.Email = "other@example.com"; in.CPF = "12345678909" }, domainerror.ErrCodeInvalidCPF},
		{"weak password", func(in *RegisterUserInput) { in.Email = "other@example.com"; in.Password = "somenteletras" }, domainerror.ErrCodeWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegistration()
			tt.mutate(&input)
			_, err := f.register.Execute(ctx, input)
			assertAuthCode(t, err, tt.code)
		})
	}
}

func TestLoginRefreshLogout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, validRegistration())
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginUserInput{Email: "maria@example.com", Password: "Errada123"})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "SenhaForte123"})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})

	login, err := f.login.Execute(ctx, LoginUserInput{Email: "MARIA@example.com", Password: "SenhaForte123", RememberMe: true})
	require.NoError(t, err)

	rotated, err := f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	rotatedClaims, err := f.tokens.ValidateRefreshToken(ctx, rotated.RefreshToken)
	require.NoError(t, err)
	assert.True(t, rotatedClaims.RememberMe)
	assert.WithinDuration(t, time.Now().Add(adapters.DefaultTokenDurations().RememberMeRefresh), rotatedClaims.ExpiresAt, time.Minute)

	_, err = f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)

	out, err := f.logout.Execute(ctx, LogoutUserInput{RefreshToken: rotated.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Message)

	_, err = f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: rotated.RefreshToken})
	assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)

	_, err = f.logout.Execute(ctx, LogoutUserInput{RefreshToken: "garbage"})
	assert.NoError(t, err)
}

func TestLogin_InactiveAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, validRegistration())
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&model.UserModel{}).
		Where("id = ?", out.User.ID).
		Update("status", string(entity.UserStatusInactive)).Error)

	_, err = f.login.Execute(ctx, LoginUserInput{Email: "maria@example.com", Password: "SenhaForte123"})
	assertAuthCode(t, err, domainerror.ErrCodeInactiveAccount)
}
