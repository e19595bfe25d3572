// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/domain/validation"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email         string
	Name          string
	Password      string
	CPF           string
	TermsAccepted bool
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if !input.TermsAccepted {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeTermsNotAccepted,
			"terms of service must be accepted",
			domainerror.ErrTermsNotAccepted,
		)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	cpf := strings.TrimSpace(input.CPF)

	if err := checkRegisterFields(input.Name, email, input.Password, cpf); err != nil {
		return nil, err
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, strings.TrimSpace(input.Name), cpf, passwordHash, time.Now().UTC())

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// checkRegisterFields runs the register form rules and maps the first failing
// field to its auth error.
func checkRegisterFields(name, email, password, cpf string) error {
	rules, _ := validation.RuleSetFor(validation.FormRegister)
	errs := validation.Validate(map[string]string{
		validation.FieldName:     name,
		validation.FieldEmail:    email,
		validation.FieldPassword: password,
		validation.FieldCPF:      cpf,
	}, rules)

	if errs.Valid() {
		return nil
	}

	if _, ok := errs[validation.FieldName]; ok {
		return domainerror.NewAuthError(domainerror.ErrCodeMissingFields, "name is required", nil)
	}
	if _, ok := errs[validation.FieldPassword]; ok {
		return domainerror.NewAuthError(domainerror.ErrCodeMissingFields, "password is required", nil)
	}
	if _, ok := errs[validation.FieldEmail]; ok {
		return domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, "invalid email format", domainerror.ErrInvalidEmail)
	}
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidCPF, "cpf must follow 000.000.000-00", domainerror.ErrInvalidCPF)
}
