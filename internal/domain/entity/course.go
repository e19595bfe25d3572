// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CourseCategory is the subject area of a course or a consultant specialty.
type CourseCategory string

const (
	CourseCategoryInvestments CourseCategory = "investments"
	CourseCategoryBudgeting   CourseCategory = "budgeting"
	CourseCategoryRetirement  CourseCategory = "retirement"
	CourseCategoryCredit      CourseCategory = "credit"
	CourseCategoryTaxes       CourseCategory = "taxes"
)

// ParseCourseCategory converts raw input into a CourseCategory.
func ParseCourseCategory(s string) (CourseCategory, error) {
	switch CourseCategory(s) {
	case CourseCategoryInvestments, CourseCategoryBudgeting, CourseCategoryRetirement,
		CourseCategoryCredit, CourseCategoryTaxes:
		return CourseCategory(s), nil
	}
	return "", fmt.Errorf("unknown course category %q", s)
}

// CourseLevel is the difficulty of a course.
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

// ParseCourseLevel converts raw input into a CourseLevel.
func ParseCourseLevel(s string) (CourseLevel, error) {
	switch CourseLevel(s) {
	case CourseLevelBeginner, CourseLevelIntermediate, CourseLevelAdvanced:
		return CourseLevel(s), nil
	}
	return "", fmt.Errorf("unknown course level %q", s)
}

// ContentStatus is the publication status of catalog content.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// ParseContentStatus converts raw input into a ContentStatus.
func ParseContentStatus(s string) (ContentStatus, error) {
	switch ContentStatus(s) {
	case ContentStatusDraft, ContentStatusPublished, ContentStatusArchived:
		return ContentStatus(s), nil
	}
	return "", fmt.Errorf("unknown content status %q", s)
}

// Icon is the closed set of icons the catalog cards can display.
type Icon int

const (
	IconUnknown Icon = iota
	IconPiggyBank
	IconTrendingUp
	IconWallet
	IconCreditCard
	IconReceipt
	IconCalculator
	IconGraduationCap
	IconShield
)

// Name returns the front-end component name of the icon.
func (i Icon) Name() string {
	switch i {
	case IconPiggyBank:
		return "PiggyBank"
	case IconTrendingUp:
		return "TrendingUp"
	case IconWallet:
		return "Wallet"
	case IconCreditCard:
		return "CreditCard"
	case IconReceipt:
		return "Receipt"
	case IconCalculator:
		return "Calculator"
	case IconGraduationCap:
		return "GraduationCap"
	case IconShield:
		return "Shield"
	default:
		return "BookOpen"
	}
}

// ParseIcon maps a front-end component name to an Icon.
func ParseIcon(name string) (Icon, error) {
	switch name {
	case "PiggyBank":
		return IconPiggyBank, nil
	case "TrendingUp":
		return IconTrendingUp, nil
	case "Wallet":
		return IconWallet, nil
	case "CreditCard":
		return IconCreditCard, nil
	case "Receipt":
		return IconReceipt, nil
	case "Calculator":
		return IconCalculator, nil
	case "GraduationCap":
		return IconGraduationCap, nil
	case "Shield":
		return IconShield, nil
	}
	return IconUnknown, fmt.Errorf("unknown icon %q", name)
}

// Course represents a course in the catalog.
type Course struct {
	ID            uuid.UUID
	Slug          string
	Title         string
	Description   string
	Category      CourseCategory
	Level         CourseLevel
	Icon          Icon
	Price         decimal.Decimal
	DurationHours int
	Status        ContentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPurchasable reports whether the course can be checked out.
func (c *Course) IsPurchasable() bool {
	return c.Status == ContentStatusPublished
}

// Consultant represents a financial consultant listed on the platform.
type Consultant struct {
	ID         uuid.UUID
	Slug       string
	Name       string
	Bio        string
	Specialty  CourseCategory
	HourlyRate decimal.Decimal
	Rating     float64
	Status     ContentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
