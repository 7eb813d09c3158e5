//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository as a configurable spy.
type SpyReportRepository struct {
	// --- identity ---
	ReportName string

	// --- Write ---
	Output   string
	WriteErr error
	Results  []*entities.AdviceResult
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) Name() string { return s.ReportName }

func (s *SpyReportRepository) Write(w io.Writer, result *entities.AdviceResult) error {
	s.Results = append(s.Results, result)
	if s.WriteErr != nil {
		return s.WriteErr
	}
	_, err := io.WriteString(w, s.Output)
	return err
}
