package config

import (
	"fmt"
	"os"

	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputFile is the on-disk shape of a projection input file. The sensitivity
// block is optional and only used by the sensitivity command.
type InputFile struct {
	Projection  domain.ProjectionInput       `yaml:"projection"`
	Sensitivity *domain.SensitivityParameter `yaml:"sensitivity,omitempty"`
}

// InputParser handles parsing of projection input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a projection input from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*InputFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML input bytes
func (ip *InputParser) Parse(data []byte) (*InputFile, error) {
	var file InputFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&file); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &file, nil
}

// ValidateInput validates the projection block and, when present, the sensitivity block
func (ip *InputParser) ValidateInput(file *InputFile) error {
	if err := file.Projection.Validate(); err != nil {
		return err
	}
	if file.Sensitivity != nil {
		if err := ip.validateSensitivity(file.Sensitivity); err != nil {
			return fmt.Errorf("sensitivity: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateSensitivity(param *domain.SensitivityParameter) error {
	known := false
	for _, name := range domain.SensitivityParameterNames {
		if param.Name == name {
			known = true
			break
		}
	}
	if !known {
		return domain.NewInputError("name", fmt.Sprintf("unknown parameter %q", param.Name))
	}
	if param.Steps < 1 {
		return domain.NewInputError("steps", "must be at least 1")
	}
	if param.MinValue.GreaterThan(param.MaxValue) {
		return domain.NewInputError("min_value", "cannot exceed max_value")
	}
	return nil
}

// CreateExampleInput creates an example input file
func (ip *InputParser) CreateExampleInput() *InputFile {
	return &InputFile{
		Projection: domain.ProjectionInput{
			Income:         decimal.NewFromInt(65000),
			SavingsRate:    decimal.NewFromInt(40),
			Expenses:       decimal.NewFromInt(40000),
			CurrentSavings: decimal.NewFromInt(10000),
			Age:            25,
			ReturnRate:     decimal.NewFromInt(8),
			RetirementAge:  50,
			InflationRate:  decimal.NewFromInt(2),
		},
		Sensitivity: &domain.SensitivityParameter{
			Name:     domain.ParamReturnRate,
			MinValue: decimal.NewFromInt(4),
			MaxValue: decimal.NewFromInt(10),
			Steps:    7,
		},
	}
}
