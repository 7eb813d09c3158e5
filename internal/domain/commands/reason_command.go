package commands

import (
	"context"
	"errors"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/internal/domain/repositories"
	reportRepo "github.com/rios0rios0/depadvice/internal/infrastructure/repositories/report"
)

// Reason is the interface for the reason command.
type Reason interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReasonOptions) error
}

// ReasonOptions holds runtime options for explaining one dependency.
type ReasonOptions struct {
	InputPath   string
	Identifier  string
	Out         io.Writer // Defaults to stdout
	IgnoreKtx   bool
	KaptApplied bool
}

// ReasonCommand explains why a dependency did or did not receive advice.
type ReasonCommand struct {
	analysisRepository repositories.AnalysisRepository
}

// NewReasonCommand creates a new ReasonCommand.
func NewReasonCommand(analysisRepository repositories.AnalysisRepository) *ReasonCommand {
	return &ReasonCommand{analysisRepository: analysisRepository}
}

// Execute loads the analysis, runs the engine and prints the explanation.
func (it *ReasonCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReasonOptions,
) error {
	if opts.Identifier == "" {
		return errors.New("a dependency identifier is required")
	}

	input, err := it.analysisRepository.Load(ctx, opts.InputPath)
	if err != nil {
		return err
	}

	result, err := computeAdvice(input, settings, opts.IgnoreKtx, opts.KaptApplied)
	if err != nil {
		return err
	}

	reason := entities.ExplainDependency(result, *input, opts.Identifier)
	if !reason.IsKnown() {
		logger.Warnf("%s is neither declared nor used in %s", opts.Identifier, input.Project.Identifier)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return reportRepo.WriteReason(out, reason)
}
