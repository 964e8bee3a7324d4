package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validYAML = "projection:\n" +
	"  income: 65000\n" +
	"  savings_rate: 40\n" +
	"  expenses: 40000\n" +
	"  current_savings: 0\n" +
	"  age: 25\n" +
	"  return_rate: 8\n" +
	"  retirement_age: 50\n" +
	"  inflation_rate: 2.5\n"

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	file, err := parser.LoadFromFile(writeTemp(t, validYAML))

	require.NoError(t, err)
	in := file.Projection
	assert.True(t, in.Income.Equal(decimal.NewFromInt(65000)))
	assert.True(t, in.SavingsRate.Equal(decimal.NewFromInt(40)))
	assert.True(t, in.InflationRate.Equal(decimal.NewFromFloat(2.5)))
	assert.Equal(t, 25, in.Age)
	assert.Equal(t, 50, in.RetirementAge)
	assert.Nil(t, file.Sensitivity)
}

func TestLoadFromFile_WithSensitivity(t *testing.T) {
	content := validYAML +
		"sensitivity:\n" +
		"  name: savings_rate\n" +
		"  min_value: 10\n" +
		"  max_value: 60\n" +
		"  steps: 6\n"

	file, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	require.NoError(t, err)
	require.NotNil(t, file.Sensitivity)
	assert.Equal(t, domain.ParamSavingsRate, file.Sensitivity.Name)
	assert.Equal(t, 6, file.Sensitivity.Steps)
	assert.True(t, file.Sensitivity.MaxValue.Equal(decimal.NewFromInt(60)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	file, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	content := "projection:\n\tincome: [65000\n"

	file, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	assert.Error(t, err)
	assert.Nil(t, file)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	content := "projection:\n" +
		"  income: 65000\n" +
		"  savings_rate: 140\n" +
		"  expenses: 40000\n" +
		"  age: 25\n" +
		"  return_rate: 8\n" +
		"  retirement_age: 50\n" +
		"  inflation_rate: 2\n"

	file, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	assert.Nil(t, file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "savings_rate")
}

func TestValidateInput_Sensitivity(t *testing.T) {
	parser := NewInputParser()
	tests := []struct {
		name    string
		param   domain.SensitivityParameter
		wantErr bool
	}{
		{"valid", domain.SensitivityParameter{Name: domain.ParamExpenses, MinValue: decimal.NewFromInt(20000), MaxValue: decimal.NewFromInt(60000), Steps: 5}, false},
		{"unknown name", domain.SensitivityParameter{Name: "height", Steps: 2}, true},
		{"no steps", domain.SensitivityParameter{Name: domain.ParamIncome, Steps: 0}, true},
		{"inverted range", domain.SensitivityParameter{Name: domain.ParamIncome, MinValue: decimal.NewFromInt(9), MaxValue: decimal.NewFromInt(1), Steps: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := parser.CreateExampleInput()
			param := tt.param
			file.Sensitivity = &param
			err := parser.ValidateInput(file)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateExampleInput_RoundTrips(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleInput()
	require.NoError(t, parser.ValidateInput(example))

	data, err := yaml.Marshal(example)
	require.NoError(t, err)

	parsed, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, example.Projection.Key(), parsed.Projection.Key())
	require.NotNil(t, parsed.Sensitivity)
	assert.Equal(t, example.Sensitivity.Name, parsed.Sensitivity.Name)
}
