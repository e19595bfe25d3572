package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-academy/backend/internal/domain/valueobject"
)

func TestParseCourseCategory(t *testing.T) {
	for _, s := range []string{"investments", "budgeting", "retirement", "credit", "taxes"} {
		c, err := ParseCourseCategory(s)
		require.NoError(t, err)
		assert.Equal(t, CourseCategory(s), c)
	}

	_, err := ParseCourseCategory("crypto")
	assert.Error(t, err)

	_, err = ParseCourseCategory("")
	assert.Error(t, err)
}

func TestParseEnums_RejectUnknown(t *testing.T) {
	_, err := ParseCourseLevel("expert")
	assert.Error(t, err)

	_, err = ParseContentStatus("deleted")
	assert.Error(t, err)

	_, err = ParseUserType("root")
	assert.Error(t, err)

	_, err = ParseUserStatus("banned")
	assert.Error(t, err)

	_, err = ParsePaymentMethod("cash")
	assert.Error(t, err)

	_, err = ParseSimulationKind("loan")
	assert.Error(t, err)
}

func TestIcon_NameRoundTrip(t *testing.T) {
	icons := []Icon{
		IconPiggyBank, IconTrendingUp, IconWallet, IconCreditCard,
		IconReceipt, IconCalculator, IconGraduationCap, IconShield,
	}

	for _, icon := range icons {
		parsed, err := ParseIcon(icon.Name())
		require.NoError(t, err)
		assert.Equal(t, icon, parsed)
	}

	assert.Equal(t, "BookOpen", IconUnknown.Name())

	_, err := ParseIcon("Rocket")
	assert.Error(t, err)
}

func TestUser_IsAdmin(t *testing.T) {
	u := NewUser("admin@example.com", "Admin", "", "hash", time.Now())
	assert.False(t, u.IsAdmin())

	u.Type = UserTypeAdmin
	assert.True(t, u.IsAdmin())

	u.Status = UserStatusInactive
	assert.False(t, u.IsAdmin())
}

func TestNewSimulation(t *testing.T) {
	userID := uuid.New()
	input := valueobject.InvestmentInput{InitialValue: 100, MonthlyValue: 10, PeriodMonths: 2, AnnualRatePercent: 0}

	sim := NewInvestmentSimulation(userID, input, valueobject.CalculateInvestment(input))

	assert.Equal(t, SimulationKindInvestment, sim.Kind)
	assert.Equal(t, userID, sim.UserID)
	require.NotNil(t, sim.InvestmentResult)
	assert.Equal(t, valueobject.MonetaryAmount(120), sim.InvestmentResult.FinalValue)
	assert.Nil(t, sim.RetirementInput)
}
