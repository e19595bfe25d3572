package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emailRequired = RuleSet{
	{Field: FieldEmail, Label: "E-mail", Required: true, Format: FormatEmail},
}

func TestValidate_Email(t *testing.T) {
	errs := Validate(map[string]string{"email": "bad"}, emailRequired)
	require.Len(t, errs, 1)
	assert.Equal(t, "E-mail inválido", errs["email"])

	errs = Validate(map[string]string{"email": "a@b.com"}, emailRequired)
	assert.Empty(t, errs)
	assert.True(t, errs.Valid())
}

func TestValidate_Required(t *testing.T) {
	rules := RuleSet{
		{Field: "name", Label: "Nome", Required: true},
		{Field: "phone", Label: "Telefone"},
	}

	t.Run("missing required field", func(t *testing.T) {
		errs := Validate(map[string]string{}, rules)
		assert.Equal(t, FieldErrorMap{"name": "Nome é obrigatório"}, errs)
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		errs := Validate(map[string]string{"name": "   "}, rules)
		assert.Contains(t, errs, "name")
	})

	t.Run("optional empty field is skipped", func(t *testing.T) {
		errs := Validate(map[string]string{"name": "Ana"}, rules)
		assert.Empty(t, errs)
	})
}

func TestValidate_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		value  string
		valid  bool
	}{
		{"cpf formatted", FormatCPF, "123.456.789-01", true},
		{"cpf digits only", FormatCPF, "12345678901", false},
		{"cpf partial", FormatCPF, "123.456.789-0", false},
		{"currency small", FormatCurrency, "0,50", true},
		{"currency thousands", FormatCurrency, "1.234,56", true},
		{"currency millions", FormatCurrency, "1.000.000,00", true},
		{"currency missing cents", FormatCurrency, "1.234", false},
		{"currency bad grouping", FormatCurrency, "12.34,56", false},
		{"currency us notation", FormatCurrency, "1,234.56", false},
		{"email ok", FormatEmail, "maria.silva@example.com.br", true},
		{"email missing domain", FormatEmail, "maria@", false},
		{"email missing at", FormatEmail, "maria.example.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rules := RuleSet{{Field: "f", Label: "Campo", Required: true, Format: tc.format}}
			errs := Validate(map[string]string{"f": tc.value}, rules)
			assert.Equal(t, tc.valid, errs.Valid(), "errors: %v", errs)
		})
	}
}

func TestValidate_Numbers(t *testing.T) {
	rules := RuleSet{
		{Field: "months", Label: "Período", Required: true, Integer: true, Positive: true, Max: bound(1200)},
		{Field: "rate", Label: "Taxa", Required: true, Numeric: true, Max: bound(100)},
	}

	tests := []struct {
		name    string
		months  string
		rate    string
		invalid []string
	}{
		{"valid", "12", "10,5", nil},
		{"zero rate allowed", "12", "0", nil},
		{"zero months", "0", "1", []string{"months"}},
		{"negative months", "-3", "1", []string{"months"}},
		{"fractional months", "1,5", "1", []string{"months"}},
		{"too many months", "1201", "1", []string{"months"}},
		{"negative rate", "12", "-1", []string{"rate"}},
		{"rate over max", "12", "100,01", []string{"rate"}},
		{"not a number", "doze", "abc", []string{"months", "rate"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(map[string]string{"months": tc.months, "rate": tc.rate}, rules)
			require.Len(t, errs, len(tc.invalid), "errors: %v", errs)
			for _, field := range tc.invalid {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidate_GreaterThan(t *testing.T) {
	rules, ok := RuleSetFor(FormRetirement)
	require.True(t, ok)

	fields := map[string]string{
		FieldCurrentAge:           "65",
		FieldRetirementAge:        "65",
		FieldDesiredMonthlyIncome: "4.000,00",
		FieldExpectedAnnualReturn: "7",
	}

	errs := Validate(fields, rules)
	require.Len(t, errs, 1)
	assert.Equal(t, "Idade de aposentadoria deve ser maior que idade atual", errs[FieldRetirementAge])

	fields[FieldRetirementAge] = "66"
	assert.Empty(t, Validate(fields, rules))
}

func TestValidate_ErrorsClearWhenFieldBecomesValid(t *testing.T) {
	rules, _ := RuleSetFor(FormCheckout)
	fields := map[string]string{
		FieldFullName:      "Maria Silva",
		FieldEmail:         "maria@example.com",
		FieldCPF:           "123.456.78",
		FieldAmount:        "497,00",
		FieldPaymentMethod: "pix",
		FieldCourseID:      "c0ffee00-0000-0000-0000-000000000000",
	}

	errs := Validate(fields, rules)
	assert.Equal(t, []string{FieldCPF}, keys(errs))

	fields[FieldCPF] = "123.456.789-01"
	assert.Empty(t, Validate(fields, rules))

	fields[FieldPaymentMethod] = "cash"
	assert.Contains(t, Validate(fields, rules), FieldPaymentMethod)
}

func TestValidate_Completeness(t *testing.T) {
	for _, name := range FormNames() {
		rules, ok := RuleSetFor(name)
		require.True(t, ok, "form %s", name)

		t.Run(string(name)+" empty input reports every required field", func(t *testing.T) {
			errs := Validate(map[string]string{}, rules)
			for _, r := range rules {
				if r.Required {
					assert.Contains(t, errs, r.Field)
				} else {
					assert.NotContains(t, errs, r.Field)
				}
			}
		})
	}

	investment, _ := RuleSetFor(FormInvestment)
	valid := map[string]string{
		FieldInitialValue: "1.000,00",
		FieldMonthlyValue: "500,00",
		FieldPeriodMonths: "12",
		FieldAnnualRate:   "12",
	}
	assert.Empty(t, Validate(valid, investment))
}

func TestRuleSetFor_Unknown(t *testing.T) {
	_, ok := RuleSetFor("newsletter")
	assert.False(t, ok)
}

func keys(m FieldErrorMap) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
