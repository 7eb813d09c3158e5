//go:build unit

package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depadvice/internal/domain/commands"
	"github.com/rios0rios0/depadvice/internal/infrastructure/controllers"
	"github.com/rios0rios0/depadvice/test/domain/commanddoubles"
)

type flagged interface {
	AddFlags(cmd *cobra.Command)
}

func newCommand(t *testing.T, controller flagged, configContent string) *cobra.Command {
	t.Helper()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("verbose", false, "")
	controller.AddFlags(cmd)

	configPath := filepath.Join(t.TempDir(), "depadvice.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))
	require.NoError(t, cmd.Flags().Set("config", configPath))
	return cmd
}

type exitRecorder struct {
	codes []int
}

func (it *exitRecorder) exit(code int) {
	it.codes = append(it.codes, code)
}

func TestAdviseController(t *testing.T) {
	t.Parallel()

	t.Run("should bind to the advise subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewAdviseController(&commanddoubles.StubAdviseCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "advise", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})

	t.Run("should pass flags and settings to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAdviseCommand{}
		controller := controllers.NewAdviseController(stub)
		cmd := newCommand(t, controller, "format: json\nignore_ktx: true\n")
		require.NoError(t, cmd.Flags().Set("input", "build/analysis"))
		require.NoError(t, cmd.Flags().Set("output", "advice.json"))
		require.NoError(t, cmd.Flags().Set("kapt", "true"))

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "json", stub.LastSettings.Format)
		assert.True(t, stub.LastSettings.IgnoreKtx)
		assert.Equal(t, "build/analysis", stub.LastOpts.InputPath)
		assert.Equal(t, "advice.json", stub.LastOpts.OutputPath)
		assert.True(t, stub.LastOpts.KaptApplied)
		assert.False(t, stub.LastOpts.FailOnAdvice)
		assert.Empty(t, stub.LastOpts.Format)
	})

	t.Run("should not run the command when the settings are invalid", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAdviseCommand{}
		recorder := &exitRecorder{}
		controller := controllers.NewAdviseController(stub).WithExit(recorder.exit)
		cmd := newCommand(t, controller, "bundles:\n  empty: {}\n")

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 0, stub.ExecuteCallCount)
		assert.Equal(t, []int{1}, recorder.codes)
	})

	t.Run("should exit with status 1 when the command fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAdviseCommand{ExecuteErr: errors.New("boom")}
		recorder := &exitRecorder{}
		controller := controllers.NewAdviseController(stub).WithExit(recorder.exit)
		cmd := newCommand(t, controller, "format: console\n")
		require.NoError(t, cmd.Flags().Set("fail-on-advice", "true"))

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, []int{1}, recorder.codes)
	})

	t.Run("should exit with status 1 when advice is found", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAdviseCommand{ExecuteErr: commands.ErrAdviceFound}
		recorder := &exitRecorder{}
		controller := controllers.NewAdviseController(stub).WithExit(recorder.exit)
		cmd := newCommand(t, controller, "format: console\n")

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, []int{1}, recorder.codes)
	})

	t.Run("should not exit when the command succeeds", func(t *testing.T) {
		t.Parallel()

		// given
		recorder := &exitRecorder{}
		controller := controllers.NewAdviseController(&commanddoubles.StubAdviseCommand{}).WithExit(recorder.exit)
		cmd := newCommand(t, controller, "format: console\n")

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Empty(t, recorder.codes)
	})
}

func TestReasonController(t *testing.T) {
	t.Parallel()

	t.Run("should bind to the reason subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewReasonController(&commanddoubles.StubReasonCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "reason [identifier]", bind.Use)
	})

	t.Run("should prefer the positional identifier over the flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubReasonCommand{}
		controller := controllers.NewReasonController(stub)
		cmd := newCommand(t, controller, "format: console\n")
		require.NoError(t, cmd.Flags().Set("id", "g:flag"))
		require.NoError(t, cmd.Flags().Set("input", "analysis.yaml"))

		// when
		controller.Execute(cmd, []string{"g:arg"})

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "g:arg", stub.LastOpts.Identifier)
		assert.Equal(t, "analysis.yaml", stub.LastOpts.InputPath)
	})

	t.Run("should fall back to the identifier flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubReasonCommand{}
		controller := controllers.NewReasonController(stub)
		cmd := newCommand(t, controller, "format: console\n")
		require.NoError(t, cmd.Flags().Set("id", "g:flag"))

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, "g:flag", stub.LastOpts.Identifier)
	})

	t.Run("should exit with status 1 when the command fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubReasonCommand{ExecuteErr: errors.New("unknown dependency")}
		recorder := &exitRecorder{}
		controller := controllers.NewReasonController(stub).WithExit(recorder.exit)
		cmd := newCommand(t, controller, "format: console\n")

		// when
		controller.Execute(cmd, []string{"g:missing"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, []int{1}, recorder.codes)
	})

	t.Run("should exit with status 1 when the settings are invalid", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubReasonCommand{}
		recorder := &exitRecorder{}
		controller := controllers.NewReasonController(stub).WithExit(recorder.exit)
		cmd := newCommand(t, controller, "bundles:\n  empty: {}\n")

		// when
		controller.Execute(cmd, []string{"g:a"})

		// then
		assert.Equal(t, 0, stub.ExecuteCallCount)
		assert.Equal(t, []int{1}, recorder.codes)
	})
}

func TestNewControllers(t *testing.T) {
	t.Parallel()

	t.Run("should expose every controller", func(t *testing.T) {
		t.Parallel()

		// given
		advise := controllers.NewAdviseController(&commanddoubles.StubAdviseCommand{})
		reason := controllers.NewReasonController(&commanddoubles.StubReasonCommand{})

		// when
		all := controllers.NewControllers(advise, reason)

		// then
		require.Len(t, *all, 2)
		assert.Equal(t, "advise", (*all)[0].GetBind().Use)
	})
}
