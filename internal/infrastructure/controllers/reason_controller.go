package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depadvice/internal/domain/commands"
	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

// ReasonController handles the "reason" subcommand.
type ReasonController struct {
	command commands.Reason
	exit    func(code int)
}

// NewReasonController creates a new ReasonController.
func NewReasonController(command commands.Reason) *ReasonController {
	return &ReasonController{command: command, exit: os.Exit}
}

// GetBind returns the Cobra command metadata for the reason controller.
func (it *ReasonController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "reason [identifier]",
		Short: "Explain the advice for one dependency",
		Long: `Show how a dependency is declared, how it was used in every variant,
and which advice it received or why bundling suppressed it.`,
	}
}

// Execute runs the reason mode.
func (it *ReasonController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	flags := newFlagReader(cmd)

	settings, err := loadSettings(flags)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		it.exit(1)
		return
	}

	identifier := flags.GetString("id")
	if len(args) > 0 {
		identifier = args[0]
	}

	if runErr := it.command.Execute(ctx, settings, commands.ReasonOptions{
		InputPath:   flags.GetString("input"),
		Identifier:  identifier,
		IgnoreKtx:   flags.GetBool("ignore-ktx"),
		KaptApplied: flags.GetBool("kapt"),
	}); runErr != nil {
		logger.Errorf("Reason failed: %v", runErr)
		it.exit(1)
	}
}

// AddFlags adds the reason-specific flags to the given Cobra command.
func (it *ReasonController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", ".", "Analysis document or directory")
	cmd.Flags().String("id", "", "Dependency identifier (group:artifact or :project)")
	cmd.Flags().Bool("ignore-ktx", false, "Bundle -ktx artifacts with the artifact they extend")
	cmd.Flags().Bool("kapt", false, "Treat the kapt plugin as applied")
}
