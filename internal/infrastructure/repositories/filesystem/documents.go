package filesystem

import (
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

// analysisDocument is the on-disk form of an analysis. In directory mode the
// graphs and reports may live in their own files instead.
type analysisDocument struct {
	Project             string                  `json:"project"             yaml:"project"`
	SupportedSourceSets []string                `json:"supportedSourceSets" yaml:"supported_source_sets"`
	KaptApplied         bool                    `json:"kaptApplied"         yaml:"kapt_applied"`
	RedundantPlugins    []entities.PluginAdvice `json:"redundantPlugins"    yaml:"redundant_plugins"`
	Declarations        []entities.Declaration  `json:"declarations"        yaml:"declarations"`
	Graphs              []graphDocument         `json:"graphs"              yaml:"graphs"`
	Reports             []reportDocument        `json:"reports"             yaml:"reports"`
}

type graphDocument struct {
	Name  string         `json:"name"  yaml:"name"`
	Nodes []string       `json:"nodes" yaml:"nodes"`
	Edges []edgeDocument `json:"edges" yaml:"edges"`
}

type edgeDocument struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to"   yaml:"to"`
}

type reportDocument struct {
	Variant              string          `json:"variant"              yaml:"variant"`
	BuildType            string          `json:"buildType"            yaml:"build_type"`
	Flavor               string          `json:"flavor"               yaml:"flavor"`
	Kind                 string          `json:"kind"                 yaml:"kind"`
	Dependencies         []traceDocument `json:"dependencies"         yaml:"dependencies"`
	AnnotationProcessors []traceDocument `json:"annotationProcessors" yaml:"annotation_processors"`
}

type traceDocument struct {
	Coordinates string   `json:"coordinates" yaml:"coordinates"`
	Bucket      string   `json:"bucket"      yaml:"bucket"`
	Reasons     []string `json:"reasons"     yaml:"reasons"`
}

var errMissingProject = errors.New("analysis document must name the project")

// toInput converts the document into the engine's input. Unknown buckets and
// kinds are logged and fall back to NONE and main.
func (d *analysisDocument) toInput() (*entities.AnalysisInput, error) {
	if d.Project == "" {
		return nil, errMissingProject
	}

	project := entities.ParseCoordinates(d.Project)
	input := &entities.AnalysisInput{
		Project:             project,
		Declarations:        make([]entities.Declaration, 0, len(d.Declarations)),
		SupportedSourceSets: d.SupportedSourceSets,
		KaptApplied:         d.KaptApplied,
		RedundantPlugins:    d.RedundantPlugins,
	}

	for _, decl := range d.Declarations {
		decl.Identifier = entities.ParseCoordinates(decl.Identifier).Identifier
		input.Declarations = append(input.Declarations, decl)
	}
	for _, g := range d.Graphs {
		input.Graphs = append(input.Graphs, g.toView(project))
	}
	for _, r := range d.Reports {
		input.Reports = append(input.Reports, r.toReport())
	}

	return input, nil
}

func (g graphDocument) toView(project entities.Coordinates) *entities.DependencyGraphView {
	nodes := make([]entities.Coordinates, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, entities.ParseCoordinates(n))
	}

	edges := make([]entities.Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, entities.Edge{
			From: entities.ParseCoordinates(e.From),
			To:   entities.ParseCoordinates(e.To),
		})
	}

	return entities.NewDependencyGraphView(g.Name, project, nodes, edges)
}

func (r reportDocument) toReport() entities.UsageReport {
	kind, ok := entities.ParseSourceSetKind(r.Kind)
	if !ok {
		logger.Warnf("Report %q: unknown source set kind %q, assuming main", r.Variant, r.Kind)
	}

	return entities.UsageReport{
		Variant:              r.Variant,
		BuildType:            r.BuildType,
		Flavor:               r.Flavor,
		Kind:                 kind,
		Dependencies:         toTraces(r.Variant, r.Dependencies),
		AnnotationProcessors: toTraces(r.Variant, r.AnnotationProcessors),
	}
}

func toTraces(variant string, documents []traceDocument) []entities.Trace {
	traces := make([]entities.Trace, 0, len(documents))
	for _, t := range documents {
		bucket, ok := entities.ParseBucket(t.Bucket)
		if !ok {
			logger.Warnf("Report %q: unknown bucket %q for %s, assuming none", variant, t.Bucket, t.Coordinates)
		}
		traces = append(traces, entities.Trace{
			Coordinates: entities.ParseCoordinates(t.Coordinates),
			Bucket:      bucket,
			Reasons:     t.Reasons,
		})
	}
	return traces
}
