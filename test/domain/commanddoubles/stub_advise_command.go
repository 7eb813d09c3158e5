//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depadvice/internal/domain/commands"
	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

// StubAdviseCommand is a stub implementation of commands.Advise.
type StubAdviseCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.AdviseOptions
}

var _ commands.Advise = (*StubAdviseCommand)(nil)

func (s *StubAdviseCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.AdviseOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
