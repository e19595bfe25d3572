package form

import (
	"context"
	"testing"

	domainerror "github.com/finance-academy/backend/internal/domain/error"
)

func TestValidateFormUseCase(t *testing.T) {
	uc := NewValidateFormUseCase()
	ctx := context.Background()

	tests := []struct {
		name        string
		input       ValidateFormInput
		expectValid bool
		expectField string
	}{
		{
			name: "valid login",
			input: ValidateFormInput{Form: "login", Fields: map[string]string{
				"email": "ana@example.com", "password": "secret",
			}},
			expectValid: true,
		},
		{
			name:        "nil fields reports required fields",
			input:       ValidateFormInput{Form: "login"},
			expectValid: false,
			expectField: "email",
		},
		{
			name: "malformed cpf on checkout",
			input: ValidateFormInput{Form: "checkout", Fields: map[string]string{
				"full_name": "Ana", "email": "ana@example.com", "cpf": "12345678900",
				"amount": "197,00", "payment_method": "pix", "course_id": "x",
			}},
			expectValid: false,
			expectField: "cpf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Valid != tt.expectValid {
				t.Errorf("expected valid=%v, got %v (%v)", tt.expectValid, out.Valid, out.Errors)
			}
			if tt.expectField != "" {
				if _, ok := out.Errors[tt.expectField]; !ok {
					t.Errorf("expected error on %s, got %v", tt.expectField, out.Errors)
				}
			}
		})
	}
}

func TestValidateFormUseCase_UnknownForm(t *testing.T) {
	_, err := NewValidateFormUseCase().Execute(context.Background(), ValidateFormInput{Form: "survey"})

	formErr, ok := err.(*domainerror.FormError)
	if !ok {
		t.Fatalf("expected *FormError, got %T", err)
	}
	if formErr.Code != domainerror.ErrCodeUnknownForm {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnknownForm, formErr.Code)
	}
}
