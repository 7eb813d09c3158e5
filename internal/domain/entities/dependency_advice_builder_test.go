//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
	"github.com/rios0rios0/depadvice/test/domain/entitybuilders"
)

func bundleOptions(t *testing.T, group string) entities.AdviceOptions {
	t.Helper()
	rules, err := entities.NewBundleRules(map[string][]string{group: {entities.IncludeGroup(group)}})
	require.NoError(t, err)
	return entities.AdviceOptions{BundleRules: rules}
}

func TestBuildDependencyAdvice(t *testing.T) {
	t.Parallel()

	t.Run("should combine add, remove and change advice in canonical order", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithDeclaration("g:changed", "implementation").
			WithDeclaration("g:unused", "api").
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithDependency("g:changed", entities.BucketAPI).
				WithDependency("g:unused", entities.BucketNone).
				WithDependency("g:added", entities.BucketImplementation).
				BuildReport()).
			BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})

		// then
		assert.Equal(t, ":app", result.ProjectAdvice.ProjectPath)
		assert.Equal(t, []string{
			"add g:added ->implementation",
			"change g:changed implementation->api",
			"remove g:unused api->",
		}, describe(result.ProjectAdvice.DependencyAdvice))
		assert.Empty(t, result.BundledTraces)
	})

	t.Run("should move a main declaration used only by tests instead of removing it", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithDeclaration("g:a", "implementation").
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithDependency("g:a", entities.BucketNone).
				BuildReport()).
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithVariant("debugUnitTest").
				WithKind(entities.SourceSetTest).
				WithDependency("g:a", entities.BucketAPI).
				BuildReport()).
			BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})

		// then
		assert.Equal(t, []string{"change g:a implementation->testApi"}, describe(result.ProjectAdvice.DependencyAdvice))
		for _, advice := range result.ProjectAdvice.DependencyAdvice {
			assert.NotEqual(t, entities.AdviceRemove, advice.Kind())
		}
	})

	t.Run("should carry the resolved version from the graph", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithEdge("debug", ":app", "g:a:1.2.3").
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithDependency("g:a", entities.BucketImplementation).
				BuildReport()).
			BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})

		// then
		require.Len(t, result.ProjectAdvice.DependencyAdvice, 1)
		assert.Equal(t, "g:a:1.2.3", result.ProjectAdvice.DependencyAdvice[0].Coordinates.GAV())
	})

	t.Run("should never advise on the project itself", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithDependency(":app", entities.BucketImplementation).
				BuildReport()).
			BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})

		// then
		assert.Empty(t, result.ProjectAdvice.DependencyAdvice)
	})

	t.Run("should suppress add and remove advice inside a bundle", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewAnalysisInputBuilder().
			WithEdge("debug", ":app", "com.g:parent").
			WithEdge("debug", "com.g:parent", "com.g:child").
			WithDeclaration("com.g:parent", "implementation").
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithDependency("com.g:parent", entities.BucketNone).
				WithDependency("com.g:child", entities.BucketImplementation).
				BuildReport())
		input := builder.BuildInput()

		// when
		unbundled := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})
		bundled := entities.BuildDependencyAdvice(input, bundleOptions(t, "com.g"))

		// then
		assert.Equal(t, []string{
			"add com.g:child ->implementation",
			"remove com.g:parent implementation->",
		}, describe(unbundled.ProjectAdvice.DependencyAdvice))
		assert.Empty(t, bundled.ProjectAdvice.DependencyAdvice)
		assert.Equal(t, []string{"com.g:child", "com.g:parent"}, bundled.BundledTraces)
	})

	t.Run("should keep remove advice for a bundle parent with no used member", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithEdge("debug", ":app", "com.g:parent").
			WithEdge("debug", "com.g:parent", "com.g:child").
			WithDeclaration("com.g:parent", "implementation").
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithDependency("com.g:parent", entities.BucketNone).
				WithDependency("com.g:child", entities.BucketNone).
				BuildReport()).
			BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, bundleOptions(t, "com.g"))

		// then
		assert.Equal(t, []string{"remove com.g:parent implementation->"}, describe(result.ProjectAdvice.DependencyAdvice))
		assert.Empty(t, result.BundledTraces)
	})

	t.Run("should never suppress change advice", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithEdge("debug", ":app", "com.g:parent").
			WithDeclaration("com.g:parent", "api").
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithDependency("com.g:parent", entities.BucketImplementation).
				BuildReport()).
			BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, bundleOptions(t, "com.g"))

		// then
		assert.Equal(t, []string{"change com.g:parent api->implementation"}, describe(result.ProjectAdvice.DependencyAdvice))
	})

	t.Run("should bundle ktx companions when ignoring ktx", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithEdge("debug", ":app", "androidx.core:core-ktx").
			WithEdge("debug", "androidx.core:core-ktx", "androidx.core:core").
			WithDeclaration("androidx.core:core-ktx", "implementation").
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithDependency("androidx.core:core-ktx", entities.BucketNone).
				WithDependency("androidx.core:core", entities.BucketImplementation).
				BuildReport()).
			BuildInput()

		// when
		plain := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})
		ignoring := entities.BuildDependencyAdvice(input, entities.AdviceOptions{IgnoreKtx: true})

		// then
		assert.Len(t, plain.ProjectAdvice.DependencyAdvice, 2)
		assert.Empty(t, ignoring.ProjectAdvice.DependencyAdvice)
		assert.Equal(t, []string{"androidx.core:core", "androidx.core:core-ktx"}, ignoring.BundledTraces)
	})

	t.Run("should produce the same advice regardless of report order", func(t *testing.T) {
		t.Parallel()

		// given
		debug := entitybuilders.NewUsageReportBuilder().
			WithVariant("debug").
			WithDependency("g:a", entities.BucketAPI).
			WithDependency("g:b", entities.BucketImplementation).
			BuildReport()
		release := entitybuilders.NewUsageReportBuilder().
			WithVariant("release").
			WithBuildType("release").
			WithDependency("g:a", entities.BucketImplementation).
			WithDependency("g:c", entities.BucketCompileOnly).
			BuildReport()
		forward := entitybuilders.NewAnalysisInputBuilder().WithReport(debug).WithReport(release).BuildInput()
		backward := entitybuilders.NewAnalysisInputBuilder().WithReport(release).WithReport(debug).BuildInput()

		// when
		first := entities.BuildDependencyAdvice(forward, entities.AdviceOptions{})
		second := entities.BuildDependencyAdvice(backward, entities.AdviceOptions{})

		// then
		assert.Equal(t, first.ProjectAdvice, second.ProjectAdvice)
		assert.Equal(t, []string{
			"add g:a ->api",
			"add g:b ->implementation",
			"add g:c ->compileOnly",
		}, describe(first.ProjectAdvice.DependencyAdvice))
	})

	t.Run("should flag kapt as redundant when no processor is used", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithKaptApplied().
			WithRedundantPlugin("java-library", "already applied by android").
			BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})

		// then
		assert.Equal(t, []entities.PluginAdvice{
			{RedundantPlugin: "java-library", Reason: "already applied by android"},
			entities.RedundantKapt(),
		}, result.ProjectAdvice.PluginAdvice)
	})

	t.Run("should keep kapt and advise processors when one is used", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().
			WithKaptApplied().
			WithReport(entitybuilders.NewUsageReportBuilder().
				WithProcessor("com.google.dagger:dagger-compiler", entities.BucketAnnotationProcessor).
				BuildReport()).
			BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})

		// then
		assert.Empty(t, result.ProjectAdvice.PluginAdvice)
		assert.Equal(t, []string{"add com.google.dagger:dagger-compiler ->kapt"}, describe(result.ProjectAdvice.DependencyAdvice))
		assert.True(t, result.ProjectAdvice.DependencyAdvice[0].IsAnnotationProcessor())
	})

	t.Run("should report nothing for an empty analysis", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewAnalysisInputBuilder().BuildInput()

		// when
		result := entities.BuildDependencyAdvice(input, entities.AdviceOptions{})

		// then
		assert.True(t, result.ProjectAdvice.IsEmpty())
	})
}

func TestSortAdvice(t *testing.T) {
	t.Parallel()

	t.Run("should deduplicate and order by identifier then kind", func(t *testing.T) {
		t.Parallel()

		// given
		b := entities.ParseCoordinates("g:b")
		a := entities.ParseCoordinates("g:a")
		advice := []entities.Advice{
			entities.NewChangeAdvice(b, "api", "implementation"),
			entities.NewRemoveAdvice(a, "api"),
			entities.NewAddAdvice(a, "implementation"),
			entities.NewRemoveAdvice(a, "api"),
		}

		// when
		sorted := entities.SortAdvice(advice)

		// then
		assert.Equal(t, []string{
			"add g:a ->implementation",
			"remove g:a api->",
			"change g:b api->implementation",
		}, describe(sorted))
	})
}
