// Package form contains the generic form validation use case used by the front-end.
package form

import (
	"context"

	domainerror "github.com/finance-academy/backend/internal/domain/error"
	"github.com/finance-academy/backend/internal/domain/validation"
)

// ValidateFormInput represents the input for validating a form.
type ValidateFormInput struct {
	Form   string
	Fields map[string]string
}

// ValidateFormOutput represents the output of validating a form.
type ValidateFormOutput struct {
	Valid  bool
	Errors validation.FieldErrorMap
}

// ValidateFormUseCase runs a named rule set against submitted fields.
type ValidateFormUseCase struct{}

// NewValidateFormUseCase creates a new ValidateFormUseCase instance.
func NewValidateFormUseCase() *ValidateFormUseCase {
	return &ValidateFormUseCase{}
}

// Execute performs the form validation.
func (uc *ValidateFormUseCase) Execute(_ context.Context, input ValidateFormInput) (*ValidateFormOutput, error) {
	rules, ok := validation.RuleSetFor(validation.FormName(input.Form))
	if !ok {
		return nil, domainerror.NewFormError(
			domainerror.ErrCodeUnknownForm,
			"form "+input.Form+" does not exist",
			domainerror.ErrUnknownForm,
		)
	}

	fields := input.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	errs := validation.Validate(fields, rules)
	return &ValidateFormOutput{
		Valid:  errs.Valid(),
		Errors: errs,
	}, nil
}
