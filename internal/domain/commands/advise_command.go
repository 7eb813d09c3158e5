package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depadvice/internal/infrastructure/repositories"
)

// ErrAdviceFound is returned when FailOnAdvice is set and the project has advice.
var ErrAdviceFound = errors.New("dependency advice found")

// Advise is the interface for the advise command.
type Advise interface {
	Execute(ctx context.Context, settings *entities.Settings, opts AdviseOptions) error
}

// AdviseOptions holds runtime options for a single advise run.
type AdviseOptions struct {
	InputPath    string
	Format       string    // If set, overrides the configured format
	OutputPath   string    // If empty, the report goes to Out
	Out          io.Writer // Defaults to stdout
	IgnoreKtx    bool      // Enables the ktx companion bundle rule on top of the settings
	KaptApplied  bool      // Forces the kapt plugin to be considered applied
	FailOnAdvice bool
	Verbose      bool
}

// AdviseCommand computes the dependency advice of one project and renders it.
type AdviseCommand struct {
	analysisRepository repositories.AnalysisRepository
	reportRegistry     *infraRepos.ReportRegistry
}

// NewAdviseCommand creates a new AdviseCommand.
func NewAdviseCommand(
	analysisRepository repositories.AnalysisRepository,
	reportRegistry *infraRepos.ReportRegistry,
) *AdviseCommand {
	return &AdviseCommand{
		analysisRepository: analysisRepository,
		reportRegistry:     reportRegistry,
	}
}

// Execute loads the analysis, computes the advice and writes the report.
func (it *AdviseCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts AdviseOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	format := settings.Format
	if opts.Format != "" {
		format = opts.Format
	}
	report, err := it.reportRegistry.Get(format)
	if err != nil {
		return err
	}

	input, err := it.analysisRepository.Load(ctx, opts.InputPath)
	if err != nil {
		return err
	}

	result, err := computeAdvice(input, settings, opts.IgnoreKtx, opts.KaptApplied)
	if err != nil {
		return err
	}

	logger.Infof(
		"Computed %d dependency advice and %d plugin advice for %s (%d suppressed by bundles)",
		len(result.ProjectAdvice.DependencyAdvice),
		len(result.ProjectAdvice.PluginAdvice),
		result.ProjectAdvice.ProjectPath,
		len(result.BundledTraces),
	)

	if writeErr := writeReport(report, result, opts); writeErr != nil {
		return writeErr
	}

	if opts.FailOnAdvice && !result.ProjectAdvice.IsEmpty() {
		return ErrAdviceFound
	}
	return nil
}

// computeAdvice merges settings and CLI overrides and runs the engine.
func computeAdvice(
	input *entities.AnalysisInput,
	settings *entities.Settings,
	ignoreKtx, kaptApplied bool,
) (*entities.AdviceResult, error) {
	rules, err := settings.BundleRules()
	if err != nil {
		return nil, err
	}

	analysis := *input
	analysis.KaptApplied = input.KaptApplied || kaptApplied

	logger.Debugf("Bundles configured: %v", rules.Names())

	return entities.BuildDependencyAdvice(analysis, entities.AdviceOptions{
		BundleRules: rules,
		IgnoreKtx:   settings.IgnoreKtx || ignoreKtx,
	}), nil
}

func writeReport(report repositories.ReportRepository, result *entities.AdviceResult, opts AdviseOptions) error {
	if opts.OutputPath == "" {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return report.Write(out, result)
	}

	file, err := os.Create(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file %q: %w", opts.OutputPath, err)
	}
	defer file.Close()

	if writeErr := report.Write(file, result); writeErr != nil {
		return writeErr
	}
	logger.Infof("Wrote %s report to %s", report.Name(), opts.OutputPath)
	return nil
}
