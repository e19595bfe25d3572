// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/finance-academy/backend/internal/application/adapter"
)

//go:embed *.html *.txt
var templateFS embed.FS

const simulationReportTemplate = "simulation_report"

var reportTitles = map[string]string{
	"investment": "Simulação de investimento",
	"retirement": "Simulação de aposentadoria",
}

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render renders both HTML and text versions of a template.
func (r *Renderer) Render(templateName string, data interface{}) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", templateName, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SimulationReportData contains data for the simulation report template.
type SimulationReportData struct {
	UserName string
	Title    string
	Rows     []adapter.ReportRow
}

// RenderSimulationReport implements adapter.ReportRenderer.
func (r *Renderer) RenderSimulationReport(input adapter.SimulationReportInput) (string, string, string, error) {
	title, ok := reportTitles[input.Kind]
	if !ok {
		title = "Simulação"
	}

	html, text, err := r.Render(simulationReportTemplate, SimulationReportData{
		UserName: input.UserName,
		Title:    title,
		Rows:     input.Rows,
	})
	if err != nil {
		return "", "", "", err
	}

	return title + " - Finance Academy", html, text, nil
}

var _ adapter.ReportRenderer = (*Renderer)(nil)
