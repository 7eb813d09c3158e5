package report

import "github.com/rios0rios0/depadvice/internal/domain/entities"

// adviceDocument is the serialised form of an advice result, shared by the
// JSON and YAML renderers.
type adviceDocument struct {
	ProjectPath               string                  `json:"projectPath"               yaml:"project_path"`
	DependencyAdvice          []adviceEntry           `json:"dependencyAdvice"          yaml:"dependency_advice"`
	PluginAdvice              []entities.PluginAdvice `json:"pluginAdvice"              yaml:"plugin_advice"`
	DependencyUsages          []usageEntry            `json:"dependencyUsages"          yaml:"dependency_usages"`
	AnnotationProcessorUsages []usageEntry            `json:"annotationProcessorUsages" yaml:"annotation_processor_usages"`
	BundledTraces             []string                `json:"bundledTraces"             yaml:"bundled_traces"`
}

type adviceEntry struct {
	Coordinates       string `json:"coordinates"                 yaml:"coordinates"`
	Kind              string `json:"kind"                        yaml:"kind"`
	FromConfiguration string `json:"fromConfiguration,omitempty" yaml:"from_configuration,omitempty"`
	ToConfiguration   string `json:"toConfiguration,omitempty"   yaml:"to_configuration,omitempty"`
}

type usageEntry struct {
	Coordinates string           `json:"coordinates" yaml:"coordinates"`
	Usages      []entities.Usage `json:"usages"      yaml:"usages"`
}

func newAdviceDocument(result *entities.AdviceResult) adviceDocument {
	doc := adviceDocument{
		ProjectPath:               result.ProjectAdvice.ProjectPath,
		DependencyAdvice:          make([]adviceEntry, 0, len(result.ProjectAdvice.DependencyAdvice)),
		PluginAdvice:              append([]entities.PluginAdvice{}, result.ProjectAdvice.PluginAdvice...),
		DependencyUsages:          usageEntries(result.DependencyUsages),
		AnnotationProcessorUsages: usageEntries(result.AnnotationProcessorUsages),
		BundledTraces:             append([]string{}, result.BundledTraces...),
	}

	for _, a := range result.ProjectAdvice.DependencyAdvice {
		doc.DependencyAdvice = append(doc.DependencyAdvice, adviceEntry{
			Coordinates:       a.Coordinates.GAV(),
			Kind:              string(a.Kind()),
			FromConfiguration: a.FromConfiguration,
			ToConfiguration:   a.ToConfiguration,
		})
	}

	return doc
}

func usageEntries(usages *entities.UsageMap) []usageEntry {
	entries := []usageEntry{}
	if usages == nil {
		return entries
	}
	for _, c := range usages.Coordinates() {
		entries = append(entries, usageEntry{Coordinates: c.GAV(), Usages: usages.Get(c)})
	}
	return entries
}
