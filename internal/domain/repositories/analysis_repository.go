package repositories

import (
	"context"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

// AnalysisRepository loads the pre-built inputs of one project analysis:
// usage reports, graph views, declarations and project facts.
type AnalysisRepository interface {
	// Load reads the analysis stored at path (a single document or a directory).
	Load(ctx context.Context, path string) (*entities.AnalysisInput, error)
}
