//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depadvice/internal/domain/commands"
	"github.com/rios0rios0/depadvice/internal/domain/entities"
	doubles "github.com/rios0rios0/depadvice/test/infrastructure/repositorydoubles"
)

func TestReasonCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should require an identifier", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.StubAnalysisRepository{Input: analysisWithAdvice()}
		cmd := commands.NewReasonCommand(repo)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ReasonOptions{})

		// then
		require.Error(t, err)
		assert.Empty(t, repo.LoadedPaths)
	})

	t.Run("should explain the advice of one dependency", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.StubAnalysisRepository{Input: analysisWithAdvice()}
		cmd := commands.NewReasonCommand(repo)
		var out bytes.Buffer

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ReasonOptions{
			InputPath:  "analysis.yaml",
			Identifier: "g:a",
			Out:        &out,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"analysis.yaml"}, repo.LoadedPaths)
		assert.Contains(t, out.String(), "Declarations:")
		assert.Contains(t, out.String(), `api("g:a") (was implementation)`)
	})

	t.Run("should explain an unknown dependency without failing", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.StubAnalysisRepository{Input: analysisWithAdvice()}
		cmd := commands.NewReasonCommand(repo)
		var out bytes.Buffer

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ReasonOptions{
			Identifier: "g:missing",
			Out:        &out,
		})

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Not declared and never observed in any variant.")
	})

	t.Run("should propagate a load error", func(t *testing.T) {
		t.Parallel()

		// given
		loadErr := errors.New("boom")
		cmd := commands.NewReasonCommand(&doubles.StubAnalysisRepository{LoadErr: loadErr})

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ReasonOptions{Identifier: "g:a"})

		// then
		require.ErrorIs(t, err, loadErr)
	})
}
