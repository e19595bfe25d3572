// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserType represents the role of an account on the platform.
type UserType string

const (
	UserTypeStudent    UserType = "student"
	UserTypeConsultant UserType = "consultant"
	UserTypeAdmin      UserType = "admin"
)

// UserStatus represents the lifecycle status of an account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

// ParseUserType converts raw input into a UserType.
func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeStudent, UserTypeConsultant, UserTypeAdmin:
		return UserType(s), nil
	}
	return "", fmt.Errorf("unknown user type %q", s)
}

// ParseUserStatus converts raw input into a UserStatus.
func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case UserStatusActive, UserStatusInactive, UserStatusPending:
		return UserStatus(s), nil
	}
	return "", fmt.Errorf("unknown user status %q", s)
}

// User represents an account on the platform.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	CPF             string
	PasswordHash    string
	Type            UserType
	Status          UserStatus
	TermsAcceptedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new active student account.
func NewUser(email, name, cpf, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		CPF:             cpf,
		PasswordHash:    passwordHash,
		Type:            UserTypeStudent,
		Status:          UserStatusActive,
		TermsAcceptedAt: termsAcceptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsAdmin reports whether the user may access admin resources.
func (u *User) IsAdmin() bool {
	return u.Type == UserTypeAdmin && u.Status == UserStatusActive
}
