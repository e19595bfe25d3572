package templates

import (
	"strings"
	"testing"

	"github.com/finance-academy/backend/internal/application/adapter"
)

func TestRenderSimulationReport(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	subject, html, text, err := r.RenderSimulationReport(adapter.SimulationReportInput{
		UserName: "Ana <script>",
		Kind:     "investment",
		Rows:     []adapter.ReportRow{{Label: "Valor final", Value: "R$ 7.468,08"}},
	})
	if err != nil {
		t.Fatalf("RenderSimulationReport: %v", err)
	}

	if subject != "Simulação de investimento - Finance Academy" {
		t.Errorf("unexpected subject %q", subject)
	}
	if !strings.Contains(html, "R$ 7.468,08") || !strings.Contains(text, "Valor final: R$ 7.468,08") {
		t.Errorf("rows missing from output:\n%s\n%s", html, text)
	}
	if strings.Contains(html, "<script>") {
		t.Error("expected user name to be escaped in HTML")
	}
}
