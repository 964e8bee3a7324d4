package output

import (
	"github.com/goccy/go-json"

	"github.com/fipath/fi-calculator/internal/domain"
)

// JSONFormatter serializes the projection result as pretty-printed JSON, money in cents.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(RoundedResult(result), "", "  ")
}
