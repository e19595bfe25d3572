package validation

// FormName identifies one of the forms rendered by the front-end.
type FormName string

const (
	FormInvestment FormName = "investment"
	FormRetirement FormName = "retirement"
	FormCheckout   FormName = "checkout"
	FormRegister   FormName = "register"
	FormLogin      FormName = "login"
	FormContact    FormName = "contact"
)

// Field names shared between the rule sets and the use cases that read them.
const (
	FieldInitialValue         = "initial_value"
	FieldMonthlyValue         = "monthly_value"
	FieldPeriodMonths         = "period_months"
	FieldAnnualRate           = "annual_rate"
	FieldCurrentAge           = "current_age"
	FieldRetirementAge        = "retirement_age"
	FieldDesiredMonthlyIncome = "desired_monthly_income"
	FieldExpectedAnnualReturn = "expected_annual_return"
	FieldFullName             = "full_name"
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldCPF                  = "cpf"
	FieldAmount               = "amount"
	FieldPaymentMethod        = "payment_method"
	FieldCourseID             = "course_id"
	FieldPassword             = "password"
	FieldPhone                = "phone"
	FieldMessage              = "message"
)

func bound(v float64) *float64 { return &v }

var ruleSets = map[FormName]RuleSet{
	FormInvestment: {
		{Field: FieldInitialValue, Label: "Valor inicial", Required: true, Format: FormatCurrency},
		{Field: FieldMonthlyValue, Label: "Aporte mensal", Required: true, Format: FormatCurrency},
		{Field: FieldPeriodMonths, Label: "Período", Required: true, Integer: true, Positive: true, Max: bound(1200)},
		{Field: FieldAnnualRate, Label: "Taxa de juros", Required: true, Numeric: true, Max: bound(100)},
	},
	FormRetirement: {
		{Field: FieldCurrentAge, Label: "Idade atual", Required: true, Integer: true, Positive: true, Max: bound(120)},
		{Field: FieldRetirementAge, Label: "Idade de aposentadoria", Required: true, Integer: true, Positive: true, Max: bound(120), GreaterThan: FieldCurrentAge},
		{Field: FieldDesiredMonthlyIncome, Label: "Renda mensal desejada", Required: true, Format: FormatCurrency, Positive: true},
		{Field: FieldExpectedAnnualReturn, Label: "Rentabilidade anual", Required: true, Numeric: true, Positive: true, Max: bound(100)},
	},
	FormCheckout: {
		{Field: FieldFullName, Label: "Nome completo", Required: true},
		{Field: FieldEmail, Label: "E-mail", Required: true, Format: FormatEmail},
		{Field: FieldCPF, Label: "CPF", Required: true, Format: FormatCPF},
		{Field: FieldAmount, Label: "Valor", Required: true, Format: FormatCurrency, Positive: true},
		{Field: FieldPaymentMethod, Label: "Forma de pagamento", Required: true, OneOf: []string{"pix", "credit_card", "boleto"}},
		{Field: FieldCourseID, Label: "Curso", Required: true},
	},
	FormRegister: {
		{Field: FieldName, Label: "Nome", Required: true},
		{Field: FieldEmail, Label: "E-mail", Required: true, Format: FormatEmail},
		{Field: FieldPassword, Label: "Senha", Required: true},
		{Field: FieldCPF, Label: "CPF", Format: FormatCPF},
	},
	FormLogin: {
		{Field: FieldEmail, Label: "E-mail", Required: true, Format: FormatEmail},
		{Field: FieldPassword, Label: "Senha", Required: true},
	},
	FormContact: {
		{Field: FieldName, Label: "Nome", Required: true},
		{Field: FieldEmail, Label: "E-mail", Required: true, Format: FormatEmail},
		{Field: FieldPhone, Label: "Telefone"},
		{Field: FieldMessage, Label: "Mensagem", Required: true},
	},
}

// RuleSetFor returns the rules of the named form.
func RuleSetFor(name FormName) (RuleSet, bool) {
	rules, ok := ruleSets[name]
	return rules, ok
}

// FormNames lists every known form.
func FormNames() []FormName {
	return []FormName{FormInvestment, FormRetirement, FormCheckout, FormRegister, FormLogin, FormContact}
}
