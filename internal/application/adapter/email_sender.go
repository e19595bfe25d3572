// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// SimulationReportInput holds the data rendered into a simulation report e-mail.
type SimulationReportInput struct {
	UserName  string
	UserEmail string
	Kind      string
	Rows      []ReportRow
}

// ReportRow is one label/value line of a simulation report.
type ReportRow struct {
	Label string
	Value string
}

// ReportRenderer renders simulation report e-mails.
type ReportRenderer interface {
	// RenderSimulationReport returns the subject, HTML and plain-text bodies.
	RenderSimulationReport(input SimulationReportInput) (subject, html, text string, err error)
}
