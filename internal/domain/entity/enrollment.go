// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a checkout is paid.
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodPix, PaymentMethodCreditCard, PaymentMethodBoleto:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// EnrollmentStatus tracks the payment state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusPaid      EnrollmentStatus = "paid"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// Enrollment is a user's purchase of a course.
type Enrollment struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CourseID      uuid.UUID
	FullName      string
	Email         string
	CPF           string
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	Status        EnrollmentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewEnrollment creates a pending enrollment.
func NewEnrollment(userID, courseID uuid.UUID, fullName, email, cpf string, amount decimal.Decimal, method PaymentMethod) *Enrollment {
	now := time.Now().UTC()
	return &Enrollment{
		ID:            uuid.New(),
		UserID:        userID,
		CourseID:      courseID,
		FullName:      fullName,
		Email:         email,
		CPF:           cpf,
		Amount:        amount,
		PaymentMethod: method,
		Status:        EnrollmentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// EnrollmentWithCourse pairs an enrollment with its course.
type EnrollmentWithCourse struct {
	Enrollment *Enrollment
	Course     *Course
}
