package entities

import "sort"

const kaptPluginID = "kotlin-kapt"

// PluginAdvice recommends removing a build plugin.
type PluginAdvice struct {
	RedundantPlugin string `json:"redundantPlugin" yaml:"redundant_plugin"`
	Reason          string `json:"reason"          yaml:"reason"`
}

// RedundantKapt is the advice emitted when kapt is applied but no processor is used.
func RedundantKapt() PluginAdvice {
	return PluginAdvice{
		RedundantPlugin: kaptPluginID,
		Reason:          "this plugin's processing step is redundant: no annotation processors are used",
	}
}

// SortPluginAdvice returns the plugin advice deduplicated and ordered by plugin id.
func SortPluginAdvice(advice []PluginAdvice) []PluginAdvice {
	seen := map[PluginAdvice]bool{}
	result := make([]PluginAdvice, 0, len(advice))
	for _, a := range advice {
		if seen[a] {
			continue
		}
		seen[a] = true
		result = append(result, a)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].RedundantPlugin != result[j].RedundantPlugin {
			return result[i].RedundantPlugin < result[j].RedundantPlugin
		}
		return result[i].Reason < result[j].Reason
	})
	return result
}

// ProjectAdvice is the final advice for one project.
type ProjectAdvice struct {
	ProjectPath      string         `json:"projectPath"      yaml:"project_path"`
	DependencyAdvice []Advice       `json:"dependencyAdvice" yaml:"dependency_advice"`
	PluginAdvice     []PluginAdvice `json:"pluginAdvice"     yaml:"plugin_advice"`
}

// IsEmpty reports whether nothing needs to change.
func (p ProjectAdvice) IsEmpty() bool {
	return len(p.DependencyAdvice) == 0 && len(p.PluginAdvice) == 0
}

// AdviceResult is everything one invocation of the engine produces.
type AdviceResult struct {
	ProjectAdvice             ProjectAdvice
	DependencyUsages          *UsageMap
	AnnotationProcessorUsages *UsageMap
	// BundledTraces lists the identifiers whose advice bundling suppressed, sorted.
	BundledTraces []string
}
