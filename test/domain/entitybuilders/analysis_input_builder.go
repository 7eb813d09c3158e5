//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depadvice/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// AnalysisInputBuilder helps create engine inputs with a fluent interface.
type AnalysisInputBuilder struct {
	*testkit.BaseBuilder
	project          string
	reports          []entities.UsageReport
	edges            map[string][]entities.Edge
	declarations     []entities.Declaration
	sourceSets       []string
	kaptApplied      bool
	redundantPlugins []entities.PluginAdvice
}

// NewAnalysisInputBuilder creates a new builder for the ":app" project.
func NewAnalysisInputBuilder() *AnalysisInputBuilder {
	return &AnalysisInputBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		project:     ":app",
		edges:       map[string][]entities.Edge{},
	}
}

// WithProject sets the project path.
func (b *AnalysisInputBuilder) WithProject(project string) *AnalysisInputBuilder {
	b.project = project
	return b
}

// WithReport adds a usage report.
func (b *AnalysisInputBuilder) WithReport(report entities.UsageReport) *AnalysisInputBuilder {
	b.reports = append(b.reports, report)
	return b
}

// WithDeclaration declares a dependency on a configuration.
func (b *AnalysisInputBuilder) WithDeclaration(identifier, configuration string) *AnalysisInputBuilder {
	b.declarations = append(b.declarations, entities.Declaration{
		Identifier:        identifier,
		ConfigurationName: configuration,
	})
	return b
}

// WithEdge adds a "from depends on to" edge to the named graph view.
func (b *AnalysisInputBuilder) WithEdge(view, from, to string) *AnalysisInputBuilder {
	b.edges[view] = append(b.edges[view], entities.Edge{
		From: entities.ParseCoordinates(from),
		To:   entities.ParseCoordinates(to),
	})
	return b
}

// WithSupportedSourceSets restricts where additions may be proposed.
func (b *AnalysisInputBuilder) WithSupportedSourceSets(sourceSets ...string) *AnalysisInputBuilder {
	b.sourceSets = sourceSets
	return b
}

// WithKaptApplied marks the kapt plugin as applied.
func (b *AnalysisInputBuilder) WithKaptApplied() *AnalysisInputBuilder {
	b.kaptApplied = true
	return b
}

// WithRedundantPlugin adds a plugin advice computed elsewhere.
func (b *AnalysisInputBuilder) WithRedundantPlugin(plugin, reason string) *AnalysisInputBuilder {
	b.redundantPlugins = append(b.redundantPlugins, entities.PluginAdvice{RedundantPlugin: plugin, Reason: reason})
	return b
}

// Build creates the input (satisfies testkit.Builder interface).
func (b *AnalysisInputBuilder) Build() interface{} {
	return b.BuildInput()
}

// BuildInput creates the input with a concrete return type.
func (b *AnalysisInputBuilder) BuildInput() entities.AnalysisInput {
	project := entities.ParseCoordinates(b.project)
	input := entities.AnalysisInput{
		Project:             project,
		Reports:             append([]entities.UsageReport(nil), b.reports...),
		Declarations:        append([]entities.Declaration(nil), b.declarations...),
		SupportedSourceSets: b.sourceSets,
		KaptApplied:         b.kaptApplied,
		RedundantPlugins:    append([]entities.PluginAdvice(nil), b.redundantPlugins...),
	}
	for name, edges := range b.edges {
		input.Graphs = append(input.Graphs, entities.NewDependencyGraphView(name, project, nil, edges))
	}
	return input
}

// Reset clears the builder state, allowing it to be reused.
func (b *AnalysisInputBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.project = ":app"
	b.reports = nil
	b.edges = map[string][]entities.Edge{}
	b.declarations = nil
	b.sourceSets = nil
	b.kaptApplied = false
	b.redundantPlugins = nil
	return b
}

// Clone creates a deep copy of the AnalysisInputBuilder.
func (b *AnalysisInputBuilder) Clone() testkit.Builder {
	edges := make(map[string][]entities.Edge, len(b.edges))
	for name, e := range b.edges {
		edges[name] = append([]entities.Edge(nil), e...)
	}
	return &AnalysisInputBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		project:          b.project,
		reports:          append([]entities.UsageReport(nil), b.reports...),
		edges:            edges,
		declarations:     append([]entities.Declaration(nil), b.declarations...),
		sourceSets:       append([]string(nil), b.sourceSets...),
		kaptApplied:      b.kaptApplied,
		redundantPlugins: append([]entities.PluginAdvice(nil), b.redundantPlugins...),
	}
}
