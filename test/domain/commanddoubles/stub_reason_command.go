//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depadvice/internal/domain/commands"
	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

// StubReasonCommand is a stub implementation of commands.Reason.
type StubReasonCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ReasonOptions
}

var _ commands.Reason = (*StubReasonCommand)(nil)

func (s *StubReasonCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ReasonOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
