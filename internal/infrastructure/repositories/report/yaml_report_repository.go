package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/internal/domain/repositories"
)

// YAMLReportRepository renders the advice result as YAML.
type YAMLReportRepository struct{}

var _ repositories.ReportRepository = (*YAMLReportRepository)(nil)

// NewYAMLReportRepository creates a new YAMLReportRepository.
func NewYAMLReportRepository() *YAMLReportRepository {
	return &YAMLReportRepository{}
}

func (it *YAMLReportRepository) Name() string { return "yaml" }

func (it *YAMLReportRepository) Write(w io.Writer, result *entities.AdviceResult) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // two-space indentation
	if err := encoder.Encode(newAdviceDocument(result)); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return encoder.Close()
}
