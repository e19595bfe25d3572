// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-academy/backend/internal/domain/entity"
)

// CourseModel represents the courses table in the database.
type CourseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Slug          string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Title         string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Category      string          `gorm:"type:varchar(20);not null;index"`
	Level         string          `gorm:"type:varchar(20);not null;index"`
	Icon          string          `gorm:"type:varchar(30);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DurationHours int             `gorm:"not null;default:0"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CourseModel.
func (CourseModel) TableName() string {
	return "courses"
}

// ToEntity converts a CourseModel to a domain Course entity.
// An icon name that is no longer known degrades to IconUnknown.
func (m *CourseModel) ToEntity() *entity.Course {
	icon, _ := entity.ParseIcon(m.Icon)
	return &entity.Course{
		ID:            m.ID,
		Slug:          m.Slug,
		Title:         m.Title,
		Description:   m.Description,
		Category:      entity.CourseCategory(m.Category),
		Level:         entity.CourseLevel(m.Level),
		Icon:          icon,
		Price:         m.Price,
		DurationHours: m.DurationHours,
		Status:        entity.ContentStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CourseFromEntity creates a CourseModel from a domain Course entity.
func CourseFromEntity(c *entity.Course) *CourseModel {
	return &CourseModel{
		ID:            c.ID,
		Slug:          c.Slug,
		Title:         c.Title,
		Description:   c.Description,
		Category:      string(c.Category),
		Level:         string(c.Level),
		Icon:          c.Icon.Name(),
		Price:         c.Price,
		DurationHours: c.DurationHours,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ConsultantModel represents the consultants table in the database.
type ConsultantModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Slug       string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Bio        string          `gorm:"type:text"`
	Specialty  string          `gorm:"type:varchar(20);not null;index"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Rating     float64         `gorm:"not null;default:0"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ConsultantModel.
func (ConsultantModel) TableName() string {
	return "consultants"
}

// ToEntity converts a ConsultantModel to a domain Consultant entity.
func (m *ConsultantModel) ToEntity() *entity.Consultant {
	return &entity.Consultant{
		ID:         m.ID,
		Slug:       m.Slug,
		Name:       m.Name,
		Bio:        m.Bio,
		Specialty:  entity.CourseCategory(m.Specialty),
		HourlyRate: m.HourlyRate,
		Rating:     m.Rating,
		Status:     entity.ContentStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ConsultantFromEntity creates a ConsultantModel from a domain Consultant entity.
func ConsultantFromEntity(c *entity.Consultant) *ConsultantModel {
	return &ConsultantModel{
		ID:         c.ID,
		Slug:       c.Slug,
		Name:       c.Name,
		Bio:        c.Bio,
		Specialty:  string(c.Specialty),
		HourlyRate: c.HourlyRate,
		Rating:     c.Rating,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
