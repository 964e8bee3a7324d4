package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func sampleSweep() *domain.SensitivityAnalysis {
	age := func(v int) *int { return &v }
	return &domain.SensitivityAnalysis{
		Base: scenarioInput(),
		Parameter: domain.SensitivityParameter{
			Name:     domain.ParamRetirementAge,
			MinValue: decimal.NewFromInt(50),
			MaxValue: decimal.NewFromInt(95),
			Steps:    2,
		},
		Points: []domain.SensitivityPoint{
			{Value: decimal.NewFromInt(50), FireAge: age(42), SemiFiAge: age(36), CoastFiAge: age(30), FireTarget: decimal.RequireFromString("737579.7451"), RealRate: decimal.RequireFromString("0.0588235294117647")},
			{Value: decimal.NewFromInt(95), Error: "invalid input: retirement_age must be below life expectancy age 90"},
		},
	}
}

func TestFormatSensitivity_Console(t *testing.T) {
	out, err := FormatSensitivity(sampleSweep(), "console")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.HasPrefix(content, "SENSITIVITY: retirement_age from 50 to 95 (2 steps)") {
		t.Fatalf("unexpected heading: %s", truncate(content, 80))
	}
	if !strings.Contains(content, "$737,580") {
		t.Fatalf("expected rounded FIRE target")
	}
	if !strings.Contains(content, "95           invalid: invalid input: retirement_age") {
		t.Fatalf("expected invalid point row, got:\n%s", content)
	}
}

func TestFormatSensitivity_CSV(t *testing.T) {
	out, err := FormatSensitivity(sampleSweep(), "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1] != "retirement_age,50,0.058824,737579.75,42,36,30," {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "retirement_age,95,0.000000,0.00,,,,") {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestFormatSensitivity_JSONAndUnknown(t *testing.T) {
	out, err := FormatSensitivity(sampleSweep(), "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"name": "retirement_age"`) {
		t.Fatalf("json missing parameter name: %s", truncate(string(out), 200))
	}

	_, err = FormatSensitivity(sampleSweep(), "html")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
