package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fipath/fi-calculator/internal/config"
	"github.com/fipath/fi-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the result in the named format into outputDir and returns the
// files written. "all" writes the verbose console report and the yearly CSV.
func GenerateReport(result *domain.ProjectionResult, format, outputDir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, result, outputDir, extensionFor(f.Name()))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	name, err := WriteFormatted(f, result, outputDir, extensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// UnsupportedFormatError enriches ErrUnsupportedFormat with the available names and aliases.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveInput writes an input file that InputParser can load back.
func SaveInput(file *config.InputFile, filename string) error {
	b, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
