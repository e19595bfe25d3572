// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-academy/backend/internal/domain/entity"
)

// EnrollmentModel represents the enrollments table in the database.
type EnrollmentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourseID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	FullName      string          `gorm:"type:varchar(200);not null"`
	Email         string          `gorm:"type:varchar(255);not null"`
	CPF           string          `gorm:"type:varchar(14);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Course *CourseModel `gorm:"foreignKey:CourseID;references:ID"`
}

// TableName returns the table name for the EnrollmentModel.
func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// ToEntity converts an EnrollmentModel to a domain Enrollment entity.
func (m *EnrollmentModel) ToEntity() *entity.Enrollment {
	return &entity.Enrollment{
		ID:            m.ID,
		UserID:        m.UserID,
		CourseID:      m.CourseID,
		FullName:      m.FullName,
		Email:         m.Email,
		CPF:           m.CPF,
		Amount:        m.Amount,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Status:        entity.EnrollmentStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// EnrollmentFromEntity creates an EnrollmentModel from a domain Enrollment entity.
func EnrollmentFromEntity(e *entity.Enrollment) *EnrollmentModel {
	return &EnrollmentModel{
		ID:            e.ID,
		UserID:        e.UserID,
		CourseID:      e.CourseID,
		FullName:      e.FullName,
		Email:         e.Email,
		CPF:           e.CPF,
		Amount:        e.Amount,
		PaymentMethod: string(e.PaymentMethod),
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// AllModels lists every model migrated at startup.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&SimulationModel{},
		&CourseModel{},
		&ConsultantModel{},
		&EnrollmentModel{},
	}
}
