// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-academy/backend/internal/domain/entity"
	"github.com/finance-academy/backend/internal/domain/valueobject"
)

// SimulationModel represents the simulations table. Investment and retirement
// columns share the table; only the ones matching Kind are populated.
type SimulationModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind   string    `gorm:"type:varchar(20);not null;index"`

	// Investment
	InitialValue  float64 `gorm:"not null;default:0"`
	MonthlyValue  float64 `gorm:"not null;default:0"`
	PeriodMonths  int     `gorm:"not null;default:0"`
	AnnualRate    float64 `gorm:"not null;default:0"`
	FinalValue    float64 `gorm:"not null;default:0"`
	TotalInvested float64 `gorm:"not null;default:0"`
	Earnings      float64 `gorm:"not null;default:0"`

	// Retirement
	CurrentAge           int     `gorm:"not null;default:0"`
	RetirementAge        int     `gorm:"not null;default:0"`
	DesiredMonthlyIncome float64 `gorm:"not null;default:0"`
	ExpectedAnnualReturn float64 `gorm:"not null;default:0"`
	NeededCapital        float64 `gorm:"not null;default:0"`
	MonthlyContribution  float64 `gorm:"not null;default:0"`
	YearsToRetire        int     `gorm:"not null;default:0"`

	CreatedAt time.Time      `gorm:"not null;index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for the SimulationModel.
func (SimulationModel) TableName() string {
	return "simulations"
}

// ToEntity converts a SimulationModel to a domain Simulation entity.
func (m *SimulationModel) ToEntity() *entity.Simulation {
	s := &entity.Simulation{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      entity.SimulationKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		s.DeletedAt = &deletedAt
	}

	switch s.Kind {
	case entity.SimulationKindInvestment:
		s.InvestmentInput = &valueobject.InvestmentInput{
			InitialValue:      valueobject.MonetaryAmount(m.InitialValue),
			MonthlyValue:      valueobject.MonetaryAmount(m.MonthlyValue),
			PeriodMonths:      m.PeriodMonths,
			AnnualRatePercent: valueobject.PercentageRate(m.AnnualRate),
		}
		s.InvestmentResult = &valueobject.InvestmentResult{
			FinalValue:    valueobject.MonetaryAmount(m.FinalValue),
			TotalInvested: valueobject.MonetaryAmount(m.TotalInvested),
			Earnings:      valueobject.MonetaryAmount(m.Earnings),
		}
	case entity.SimulationKindRetirement:
		s.RetirementInput = &valueobject.RetirementInput{
			CurrentAge:                  m.CurrentAge,
			RetirementAge:               m.RetirementAge,
			DesiredMonthlyIncome:        valueobject.MonetaryAmount(m.DesiredMonthlyIncome),
			ExpectedAnnualReturnPercent: valueobject.PercentageRate(m.ExpectedAnnualReturn),
		}
		s.RetirementResult = &valueobject.RetirementResult{
			NeededCapital:       valueobject.MonetaryAmount(m.NeededCapital),
			MonthlyContribution: valueobject.MonetaryAmount(m.MonthlyContribution),
			YearsToRetire:       m.YearsToRetire,
		}
	}

	return s
}

// SimulationFromEntity creates a SimulationModel from a domain Simulation entity.
func SimulationFromEntity(s *entity.Simulation) *SimulationModel {
	m := &SimulationModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Kind:      string(s.Kind),
		CreatedAt: s.CreatedAt,
	}
	if s.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	}

	if in := s.InvestmentInput; in != nil {
		m.InitialValue = float64(in.InitialValue)
		m.MonthlyValue = float64(in.MonthlyValue)
		m.PeriodMonths = in.PeriodMonths
		m.AnnualRate = float64(in.AnnualRatePercent)
	}
	if out := s.InvestmentResult; out != nil {
		m.FinalValue = float64(out.FinalValue)
		m.TotalInvested = float64(out.TotalInvested)
		m.Earnings = float64(out.Earnings)
	}
	if in := s.RetirementInput; in != nil {
		m.CurrentAge = in.CurrentAge
		m.RetirementAge = in.RetirementAge
		m.DesiredMonthlyIncome = float64(in.DesiredMonthlyIncome)
		m.ExpectedAnnualReturn = float64(in.ExpectedAnnualReturnPercent)
	}
	if out := s.RetirementResult; out != nil {
		m.NeededCapital = float64(out.NeededCapital)
		m.MonthlyContribution = float64(out.MonthlyContribution)
		m.YearsToRetire = out.YearsToRetire
	}

	return m
}
