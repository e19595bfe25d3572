package valueobject

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRetirement(t *testing.T) {
	result := CalculateRetirement(RetirementInput{
		CurrentAge:                  30,
		RetirementAge:               65,
		DesiredMonthlyIncome:        4000,
		ExpectedAnnualReturnPercent: 7,
	})

	rate := 7.0 / 100 / 12
	expectedContribution := 1200000 * rate / (math.Pow(1+rate, 420) - 1)

	assert.Equal(t, 35, result.YearsToRetire)
	assert.InDelta(t, 1200000.0, float64(result.NeededCapital), 1e-6)
	assert.InDelta(t, expectedContribution, float64(result.MonthlyContribution), 1e-6)
	assert.InDelta(t, 666.28, float64(result.MonthlyContribution), moneyTolerance)
}

func TestCalculateRetirement_EdgeCases(t *testing.T) {
	tests := []struct {
		name                 string
		input                RetirementInput
		expectedContribution float64
		expectedYears        int
	}{
		{
			name: "zero return splits capital linearly",
			input: RetirementInput{
				CurrentAge:           40,
				RetirementAge:        50,
				DesiredMonthlyIncome: 1000,
			},
			expectedContribution: 300000.0 / 120,
			expectedYears:        10,
		},
		{
			name: "already at retirement age",
			input: RetirementInput{
				CurrentAge:                  65,
				RetirementAge:               65,
				DesiredMonthlyIncome:        1000,
				ExpectedAnnualReturnPercent: 6,
			},
			expectedContribution: 0,
			expectedYears:        0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CalculateRetirement(tc.input)

			assert.Equal(t, tc.expectedYears, result.YearsToRetire)
			assert.InDelta(t, tc.expectedContribution, float64(result.MonthlyContribution), 1e-9)
		})
	}
}

func TestCalculateRetirement_YearsToRetire(t *testing.T) {
	for current := 18; current < 80; current += 7 {
		for retirement := current + 1; retirement <= 90; retirement += 5 {
			result := CalculateRetirement(RetirementInput{
				CurrentAge:                  current,
				RetirementAge:               retirement,
				DesiredMonthlyIncome:        2500,
				ExpectedAnnualReturnPercent: 5,
			})
			assert.Equal(t, retirement-current, result.YearsToRetire)
		}
	}
}

func TestCalculateRetirement_SafeWithdrawalRate(t *testing.T) {
	result := CalculateRetirement(RetirementInput{
		CurrentAge:                  20,
		RetirementAge:               60,
		DesiredMonthlyIncome:        10000,
		ExpectedAnnualReturnPercent: 10,
	})

	// 4% a year of capital must cover twelve months of income.
	assert.InDelta(t, 10000*12, float64(result.NeededCapital)*SafeWithdrawalRate/100, 1e-6)
}
