// Package valueobject contains domain value objects for the financial education platform.
package valueobject

// InvestmentInput holds the parameters of the investment growth simulator.
// PeriodMonths must be positive and every amount non-negative; the form
// validator enforces this before the calculator runs.
type InvestmentInput struct {
	InitialValue      MonetaryAmount
	MonthlyValue      MonetaryAmount
	PeriodMonths      int
	AnnualRatePercent PercentageRate
}

// InvestmentResult is the outcome of an investment simulation.
type InvestmentResult struct {
	FinalValue    MonetaryAmount
	TotalInvested MonetaryAmount
	Earnings      MonetaryAmount
}

// ProjectionPoint is the balance at the end of a given month.
type ProjectionPoint struct {
	Month         int
	Balance       MonetaryAmount
	TotalInvested MonetaryAmount
}

// CalculateInvestment compounds the balance monthly. Each month interest is
// applied first and the contribution is added afterwards.
func CalculateInvestment(input InvestmentInput) InvestmentResult {
	monthlyRate := input.AnnualRatePercent.MonthlyRate()
	balance := float64(input.InitialValue)
	monthly := float64(input.MonthlyValue)

	for i := 0; i < input.PeriodMonths; i++ {
		balance = balance*(1+monthlyRate) + monthly
	}

	totalInvested := float64(input.InitialValue) + monthly*float64(input.PeriodMonths)

	return InvestmentResult{
		FinalValue:    MonetaryAmount(balance),
		TotalInvested: MonetaryAmount(totalInvested),
		Earnings:      MonetaryAmount(balance - totalInvested),
	}
}

// ProjectInvestment returns the month-by-month balance of the same accumulation
// used by CalculateInvestment. The last point's balance equals FinalValue.
func ProjectInvestment(input InvestmentInput) []ProjectionPoint {
	if input.PeriodMonths <= 0 {
		return nil
	}

	monthlyRate := input.AnnualRatePercent.MonthlyRate()
	balance := float64(input.InitialValue)
	monthly := float64(input.MonthlyValue)

	points := make([]ProjectionPoint, 0, input.PeriodMonths)
	for month := 1; month <= input.PeriodMonths; month++ {
		balance = balance*(1+monthlyRate) + monthly
		points = append(points, ProjectionPoint{
			Month:         month,
			Balance:       MonetaryAmount(balance),
			TotalInvested: MonetaryAmount(float64(input.InitialValue) + monthly*float64(month)),
		})
	}
	return points
}
