package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/internal/domain/repositories"
)

// JSONReportRepository renders the advice result as indented JSON.
type JSONReportRepository struct{}

var _ repositories.ReportRepository = (*JSONReportRepository)(nil)

// NewJSONReportRepository creates a new JSONReportRepository.
func NewJSONReportRepository() *JSONReportRepository {
	return &JSONReportRepository{}
}

func (it *JSONReportRepository) Name() string { return "json" }

func (it *JSONReportRepository) Write(w io.Writer, result *entities.AdviceResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(newAdviceDocument(result)); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
