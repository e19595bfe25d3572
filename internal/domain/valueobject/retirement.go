// Package valueobject contains domain value objects for the financial education platform.
package valueobject

import "math"

// SafeWithdrawalRate is the annual percentage of capital assumed to be
// withdrawable in retirement. Fixed policy, not user configurable.
const SafeWithdrawalRate = 4.0

// RetirementInput holds the parameters of the retirement simulator.
type RetirementInput struct {
	CurrentAge                  int
	RetirementAge               int
	DesiredMonthlyIncome        MonetaryAmount
	ExpectedAnnualReturnPercent PercentageRate
}

// RetirementResult is the outcome of a retirement simulation.
type RetirementResult struct {
	NeededCapital       MonetaryAmount
	MonthlyContribution MonetaryAmount
	YearsToRetire       int
}

// CalculateRetirement backs the required capital out of the desired income and
// solves the future value of an annuity for the monthly contribution.
func CalculateRetirement(input RetirementInput) RetirementResult {
	yearsToRetire := input.RetirementAge - input.CurrentAge
	monthsToRetire := yearsToRetire * 12
	monthlyReturnRate := input.ExpectedAnnualReturnPercent.MonthlyRate()

	neededCapital := float64(input.DesiredMonthlyIncome) * 12 / (SafeWithdrawalRate / 100)

	var monthlyContribution float64
	switch {
	case monthsToRetire > 0 && monthlyReturnRate > 0:
		growth := math.Pow(1+monthlyReturnRate, float64(monthsToRetire))
		monthlyContribution = neededCapital * monthlyReturnRate / (growth - 1)
	case monthsToRetire > 0:
		monthlyContribution = neededCapital / float64(monthsToRetire)
	}

	return RetirementResult{
		NeededCapital:       MonetaryAmount(neededCapital),
		MonthlyContribution: MonetaryAmount(monthlyContribution),
		YearsToRetire:       yearsToRetire,
	}
}
