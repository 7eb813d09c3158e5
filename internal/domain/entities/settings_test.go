//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should parse a YAML settings file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, ".depadvice.yaml", `
ignore_ktx: true
format: json
bundles:
  kotlin:
    include_groups:
      - org.jetbrains.kotlin
  google:
    include_globs: ["com.google.*:*"]
  okhttp:
    include_dependencies:
      - com.squareup.okhttp3:okhttp
    includes:
      - com\.squareup\.okio:.*
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.True(t, settings.IgnoreKtx)
		assert.Equal(t, "json", settings.Format)
		rules, err := settings.BundleRules()
		require.NoError(t, err)
		assert.Equal(t, []string{"google", "kotlin", "okhttp"}, rules.Names())
		assert.Len(t, rules.Matching("com.google.dagger:dagger"), 1)
		assert.Len(t, rules.Matching("com.squareup.okio:okio"), 1)
		assert.Len(t, rules.Matching("org.jetbrains.kotlin:kotlin-stdlib"), 1)
	})

	t.Run("should parse an HCL settings file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "depadvice.hcl", `
ignore_ktx = true

bundle "kotlin" {
  include_groups = ["org.jetbrains.kotlin"]
}
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.True(t, settings.IgnoreKtx)
		assert.Equal(t, "console", settings.Format)
		assert.Equal(t, []string{"org.jetbrains.kotlin"}, settings.Bundles["kotlin"].IncludeGroups)
	})

	t.Run("should reject an unknown HCL bundle attribute", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "depadvice.hcl", `
bundle "kotlin" {
  include_artifacts = ["kotlin-stdlib"]
}
`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "include_artifacts")
	})

	t.Run("should default the format", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "depadvice.yml", "ignore_ktx: false\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "console", settings.Format)
		assert.Empty(t, settings.Bundles)
	})

	t.Run("should reject a bundle without patterns", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "depadvice.yaml", "bundles:\n  empty: {}\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bundles.empty must include at least one group, dependency, pattern or glob")
	})

	t.Run("should reject an invalid pattern", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "depadvice.yaml", "bundles:\n  broken:\n    includes: ['(']\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})
}

func TestNewSettingsExpandsEnvironment(t *testing.T) {
	t.Setenv("DEPADVICE_TEST_FORMAT", "yaml")

	// given
	path := writeSettings(t, "depadvice.yaml", "format: ${DEPADVICE_TEST_FORMAT}\n")

	// when
	settings, err := entities.NewSettings(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, "yaml", settings.Format)
}
