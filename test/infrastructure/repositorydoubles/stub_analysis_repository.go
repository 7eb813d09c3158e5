//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/internal/domain/repositories"
)

// StubAnalysisRepository implements repositories.AnalysisRepository with a canned analysis.
type StubAnalysisRepository struct {
	Input       *entities.AnalysisInput
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.AnalysisRepository = (*StubAnalysisRepository)(nil)

func (s *StubAnalysisRepository) Load(_ context.Context, path string) (*entities.AnalysisInput, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Input, nil
}
