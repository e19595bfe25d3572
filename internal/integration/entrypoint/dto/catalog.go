package dto

import (
	"time"

	"github.com/finance-academy/backend/internal/domain/entity"
	"github.com/finance-academy/backend/internal/domain/valueobject"
)

// ListCoursesQuery represents the query parameters for listing courses.
type ListCoursesQuery struct {
	Category string `form:"category"`
	Level    string `form:"level"`
}

// ListConsultantsQuery represents the query parameters for listing consultants.
type ListConsultantsQuery struct {
	Specialty string `form:"specialty"`
}

// CourseResponse represents a course in API responses.
type CourseResponse struct {
	ID             string  `json:"id"`
	Slug           string  `json:"slug"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Level          string  `json:"level"`
	Icon           string  `json:"icon"`
	Price          float64 `json:"price"`
	PriceFormatted string  `json:"price_formatted"`
	DurationHours  int     `json:"duration_hours"`
}

// CourseListResponse represents a list of courses.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total"`
}

// ConsultantResponse represents a consultant in API responses.
type ConsultantResponse struct {
	ID                  string  `json:"id"`
	Slug                string  `json:"slug"`
	Name                string  `json:"name"`
	Bio                 string  `json:"bio"`
	Specialty           string  `json:"specialty"`
	HourlyRate          float64 `json:"hourly_rate"`
	HourlyRateFormatted string  `json:"hourly_rate_formatted"`
	Rating              float64 `json:"rating"`
}

// ConsultantListResponse represents a list of consultants.
type ConsultantListResponse struct {
	Consultants []ConsultantResponse `json:"consultants"`
	Total       int                  `json:"total"`
}

// ToCourseResponse converts a domain Course entity to a CourseResponse DTO.
func ToCourseResponse(c *entity.Course) CourseResponse {
	price := c.Price.InexactFloat64()
	return CourseResponse{
		ID:             c.ID.String(),
		Slug:           c.Slug,
		Title:          c.Title,
		Description:    c.Description,
		Category:       string(c.Category),
		Level:          string(c.Level),
		Icon:           c.Icon.Name(),
		Price:          price,
		PriceFormatted: valueobject.FormatNumberToCurrency(price),
		DurationHours:  c.DurationHours,
	}
}

// ToCourseListResponse converts courses to the listing DTO.
func ToCourseListResponse(courses []*entity.Course) CourseListResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, ToCourseResponse(c))
	}
	return CourseListResponse{Courses: out, Total: len(out)}
}

// ToConsultantListResponse converts consultants to the listing DTO.
func ToConsultantListResponse(consultants []*entity.Consultant) ConsultantListResponse {
	out := make([]ConsultantResponse, 0, len(consultants))
	for _, c := range consultants {
		rate := c.HourlyRate.InexactFloat64()
		out = append(out, ConsultantResponse{
			ID:                  c.ID.String(),
			Slug:                c.Slug,
			Name:                c.Name,
			Bio:                 c.Bio,
			Specialty:           string(c.Specialty),
			HourlyRate:          rate,
			HourlyRateFormatted: valueobject.FormatNumberToCurrency(rate),
			Rating:              c.Rating,
		})
	}
	return ConsultantListResponse{Consultants: out, Total: len(out)}
}

// EnrollmentResponse represents an enrollment in API responses.
type EnrollmentResponse struct {
	ID              string          `json:"id"`
	CourseID        string          `json:"course_id"`
	Course          *CourseResponse `json:"course,omitempty"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	CPF             string          `json:"cpf"`
	Amount          float64         `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	PaymentMethod   string          `json:"payment_method"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// EnrollmentListResponse represents a list of enrollments.
type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	Total       int                  `json:"total"`
}

// CheckoutRequest carries the payment form exactly as typed (pt-BR).
type CheckoutRequest struct {
	CourseID      string `json:"course_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	CPF           string `json:"cpf"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}

// ToEnrollmentResponse converts an enrollment and its optional course to the DTO.
func ToEnrollmentResponse(e *entity.Enrollment, course *entity.Course) EnrollmentResponse {
	amount := e.Amount.InexactFloat64()
	resp := EnrollmentResponse{
		ID:              e.ID.String(),
		CourseID:        e.CourseID.String(),
		FullName:        e.FullName,
		Email:           e.Email,
		CPF:             e.CPF,
		Amount:          amount,
		AmountFormatted: valueobject.FormatNumberToCurrency(amount),
		PaymentMethod:   string(e.PaymentMethod),
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
	}
	if course != nil {
		c := ToCourseResponse(course)
		resp.Course = &c
	}
	return resp
}

// ToEnrollmentListResponse converts enrollments to the listing DTO.
func ToEnrollmentListResponse(items []*entity.EnrollmentWithCourse) EnrollmentListResponse {
	out := make([]EnrollmentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToEnrollmentResponse(item.Enrollment, item.Course))
	}
	return EnrollmentListResponse{Enrollments: out, Total: len(out)}
}
