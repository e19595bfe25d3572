// Package validation implements the form validation rules shared by the API and
// the front-end forms. Validation is pure: it never touches storage and it
// reports every failing field at once.
package validation

import (
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/finance-academy/backend/internal/domain/valueobject"
)

// FieldErrorMap maps a field name to a human-readable error message. Only
// fields that are currently invalid have an entry.
type FieldErrorMap map[string]string

// Valid reports whether the form can be submitted.
func (m FieldErrorMap) Valid() bool {
	return len(m) == 0
}

// Contains reports whether field currently has an error.
func (m FieldErrorMap) Contains(field string) bool {
	_, ok := m[field]
	return ok
}

// Format identifies a text pattern a field must conform to.
type Format string

const (
	FormatNone     Format = ""
	FormatCPF      Format = "cpf"
	FormatCurrency Format = "currency"
	FormatEmail    Format = "email"
)

var (
	cpfPattern      = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	currencyPattern = regexp.MustCompile(`^\d{1,3}(\.\d{3})*,\d{2}$`)
	numberPattern   = regexp.MustCompile(`^(\d{1,3}(\.\d{3})+|\d+)(,\d+)?$`)

	emailValidator = validator.New()
)

// Rule describes the constraints on a single field.
type Rule struct {
	Field    string
	Label    string
	Required bool
	Format   Format

	// Numeric constraints. Numeric is implied by any of the others.
	Numeric     bool
	Integer     bool
	Positive    bool
	Min         *float64
	Max         *float64
	GreaterThan string

	// OneOf restricts the value to a closed set of options.
	OneOf []string
}

// RuleSet is the ordered list of rules of a form.
type RuleSet []Rule

// Validate checks every rule against fields and returns the failing ones.
func Validate(fields map[string]string, rules RuleSet) FieldErrorMap {
	errs := FieldErrorMap{}

	for _, rule := range rules {
		value := strings.TrimSpace(fields[rule.Field])

		if value == "" {
			if rule.Required {
				errs[rule.Field] = rule.label() + " é obrigatório"
			}
			continue
		}

		if msg, ok := checkFormat(rule, value); !ok {
			errs[rule.Field] = msg
			continue
		}

		if len(rule.OneOf) > 0 && !contains(rule.OneOf, value) {
			errs[rule.Field] = rule.label() + " possui uma opção inválida"
			continue
		}

		if rule.isNumeric() {
			if msg, ok := checkNumber(rule, value, fields, rules); !ok {
				errs[rule.Field] = msg
			}
		}
	}

	return errs
}

// checkFormat validates the text shape of a formatted field.
func checkFormat(rule Rule, value string) (string, bool) {
	switch rule.Format {
	case FormatCPF:
		if !cpfPattern.MatchString(value) {
			return "CPF deve estar no formato 000.000.000-00", false
		}
	case FormatCurrency:
		if !currencyPattern.MatchString(value) {
			return rule.label() + " deve estar no formato 0.000,00", false
		}
	case FormatEmail:
		if emailValidator.Var(value, "email") != nil {
			return "E-mail inválido", false
		}
	}
	return "", true
}

// checkNumber validates the numeric constraints of a field.
func checkNumber(rule Rule, value string, fields map[string]string, rules RuleSet) (string, bool) {
	if strings.HasPrefix(value, "-") {
		return rule.label() + " não pode ser negativo", false
	}
	if rule.Format != FormatCurrency && !numberPattern.MatchString(value) {
		return rule.label() + " deve ser um número válido", false
	}

	n := valueobject.ParseCurrencyToNumber(value)

	if rule.Integer && n != math.Trunc(n) {
		return rule.label() + " deve ser um número inteiro", false
	}
	if rule.Positive && n <= 0 {
		return rule.label() + " deve ser maior que zero", false
	}
	if rule.Min != nil && n < *rule.Min {
		return rule.label() + " deve ser no mínimo " + formatBound(*rule.Min), false
	}
	if rule.Max != nil && n > *rule.Max {
		return rule.label() + " deve ser no máximo " + formatBound(*rule.Max), false
	}

	if rule.GreaterThan != "" {
		other := strings.TrimSpace(fields[rule.GreaterThan])
		if other != "" && numberPattern.MatchString(other) {
			if n <= valueobject.ParseCurrencyToNumber(other) {
				return rule.label() + " deve ser maior que " + rules.labelOf(rule.GreaterThan), false
			}
		}
	}

	return "", true
}

// formatBound renders a numeric bound without superfluous decimals.
func formatBound(v float64) string {
	if v == math.Trunc(v) {
		return strings.TrimSuffix(valueobject.FormatNumberToCurrency(v), ",00")
	}
	return valueobject.FormatNumberToCurrency(v)
}

func (r Rule) label() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Field
}

func (r Rule) isNumeric() bool {
	return r.Numeric || r.Integer || r.Positive || r.Min != nil || r.Max != nil ||
		r.GreaterThan != "" || r.Format == FormatCurrency
}

func (rs RuleSet) labelOf(field string) string {
	for _, r := range rs {
		if r.Field == field {
			return strings.ToLower(r.label())
		}
	}
	return field
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
