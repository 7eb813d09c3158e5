package controllers

import (
	"context"
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depadvice/internal/domain/commands"
	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

// AdviseController handles the "advise" subcommand.
type AdviseController struct {
	command commands.Advise
	exit    func(code int)
}

// NewAdviseController creates a new AdviseController.
func NewAdviseController(command commands.Advise) *AdviseController {
	return &AdviseController{command: command, exit: os.Exit}
}

// GetBind returns the Cobra command metadata for the advise controller.
func (it *AdviseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "advise",
		Short: "Compute dependency advice for a project",
		Long: `Compare the declared dependencies of a project with their observed usage
and print the declarations to add, remove or change.

The input is an analysis document (YAML or JSON) or a directory holding
analysis.yaml plus reports/ and graphs/ subdirectories.`,
	}
}

// Execute runs the advise mode.
func (it *AdviseController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()
	flags := newFlagReader(cmd)

	settings, err := loadSettings(flags)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		it.exit(1)
		return
	}

	runErr := it.command.Execute(ctx, settings, commands.AdviseOptions{
		InputPath:    flags.GetString("input"),
		Format:       flags.GetString("format"),
		OutputPath:   flags.GetString("output"),
		IgnoreKtx:    flags.GetBool("ignore-ktx"),
		KaptApplied:  flags.GetBool("kapt"),
		FailOnAdvice: flags.GetBool("fail-on-advice"),
		Verbose:      flags.GetBool("verbose"),
	})
	switch {
	case errors.Is(runErr, commands.ErrAdviceFound):
		logger.Warn("Dependency advice found")
		it.exit(1)
	case runErr != nil:
		logger.Errorf("Advise failed: %v", runErr)
		it.exit(1)
	}
}

// AddFlags adds the advise-specific flags to the given Cobra command.
func (it *AdviseController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", ".", "Analysis document or directory")
	cmd.Flags().StringP("format", "f", "", "Report format (console, json, yaml)")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("ignore-ktx", false, "Bundle -ktx artifacts with the artifact they extend")
	cmd.Flags().Bool("kapt", false, "Treat the kapt plugin as applied")
	cmd.Flags().Bool("fail-on-advice", false, "Exit with status 1 when there is any advice")
}
