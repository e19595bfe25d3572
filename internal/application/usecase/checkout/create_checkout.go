// Package checkout contains course purchase use cases.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-academy/backend/internal/application/adapter"
	"github.com/finance-academy/backend/internal/domain/entity"
	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/domain/validation"
	"github.com/finance-academy/backend/internal/domain/valueobject"
)

// CreateCheckoutInput holds the raw payment form values.
type CreateCheckoutInput struct {
	UserID        uuid.UUID
	CourseID      string
	FullName      string
	Email         string
	CPF           string
	Amount        string
	PaymentMethod string
}

// CreateCheckoutOutput represents the output of a checkout.
type CreateCheckoutOutput struct {
	Enrollment *entity.Enrollment
	Course     *entity.Course
}

// CreateCheckoutUseCase validates the payment form and creates a pending enrollment.
type CreateCheckoutUseCase struct {
	courseRepo     adapter.CourseRepository
	enrollmentRepo adapter.EnrollmentRepository
}

// NewCreateCheckoutUseCase creates a new CreateCheckoutUseCase instance.
func NewCreateCheckoutUseCase(courseRepo adapter.CourseRepository, enrollmentRepo adapter.EnrollmentRepository) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Execute performs the checkout.
func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, input CreateCheckoutInput) (*CreateCheckoutOutput, error) {
	fields := map[string]string{
		validation.FieldCourseID:      input.CourseID,
		validation.FieldFullName:      input.FullName,
		validation.FieldEmail:         input.Email,
		validation.FieldCPF:           input.CPF,
		validation.FieldAmount:        input.Amount,
		validation.FieldPaymentMethod: input.PaymentMethod,
	}

	rules, _ := validation.RuleSetFor(validation.FormCheckout)
	errs := validation.Validate(fields, rules)

	courseID, err := uuid.Parse(strings.TrimSpace(input.CourseID))
	if err != nil && !errs.Contains(validation.FieldCourseID) {
		errs[validation.FieldCourseID] = "Curso inválido"
	}
	method, err := entity.ParsePaymentMethod(strings.TrimSpace(input.PaymentMethod))
	if err != nil && !errs.Contains(validation.FieldPaymentMethod) {
		errs[validation.FieldPaymentMethod] = "Forma de pagamento inválida"
	}
	if !errs.Valid() {
		return nil, domainerror.NewCheckoutValidationError(errs)
	}

	course, err := uc.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCourseNotFound) {
			return nil, domainerror.NewCheckoutError(
				domainerror.ErrCodeCheckoutCourseNotFound,
				"course not found",
				domainerror.ErrCourseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find course: %w", err)
	}

	if !course.IsPurchasable() {
		return nil, domainerror.NewCheckoutError(
			domainerror.ErrCodeCourseNotAvailable,
			"course is not available for purchase",
			domainerror.ErrCourseNotAvailable,
		)
	}

	amount := valueobject.ParseCurrencyToDecimal(input.Amount).Round(2)
	if !amount.Equal(course.Price.Round(2)) {
		return nil, domainerror.NewCheckoutError(
			domainerror.ErrCodeAmountMismatch,
			fmt.Sprintf("amount %s does not match course price %s", amount.StringFixed(2), course.Price.StringFixed(2)),
			domainerror.ErrAmountMismatch,
		)
	}

	enrolled, err := uc.enrollmentRepo.ExistsActive(ctx, input.UserID, course.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if enrolled {
		return nil, domainerror.NewCheckoutError(
			domainerror.ErrCodeAlreadyEnrolled,
			"user already enrolled in course",
			domainerror.ErrAlreadyEnrolled,
		)
	}

	enrollment := entity.NewEnrollment(
		input.UserID,
		course.ID,
		strings.TrimSpace(input.FullName),
		strings.ToLower(strings.TrimSpace(input.Email)),
		strings.TrimSpace(input.CPF),
		amount,
		method,
	)

	if err := uc.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	return &CreateCheckoutOutput{
		Enrollment: enrollment,
		Course:     course,
	}, nil
}
