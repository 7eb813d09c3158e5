package entities

import (
	"sort"
	"strings"
)

// TransformOptions configures a StandardTransform.
type TransformOptions struct {
	// SupportedSourceSets limits where new declarations may be proposed.
	// Empty means unrestricted.
	SupportedSourceSets []string
	KaptApplied         bool
	// AnnotationProcessors selects the processor path instead of the regular one.
	AnnotationProcessors bool
}

// StandardTransform turns one dependency's usages and declarations into advice.
type StandardTransform struct {
	coordinates  Coordinates
	declarations []Declaration
	supported    map[string]bool
	kaptApplied  bool
	processors   bool
}

// usageGroup collects the evidence and declarations of one source set.
type usageGroup struct {
	sourceSet    string
	usages       []Usage
	declarations []Declaration
}

// NewStandardTransform creates a transform for one dependency. Declarations of
// other paths (processor vs regular) are ignored.
func NewStandardTransform(
	coordinates Coordinates,
	declarations []Declaration,
	opts TransformOptions,
) *StandardTransform {
	supported := map[string]bool{}
	for _, s := range opts.SupportedSourceSets {
		supported[s] = true
	}

	transform := &StandardTransform{
		coordinates: coordinates,
		supported:   supported,
		kaptApplied: opts.KaptApplied,
		processors:  opts.AnnotationProcessors,
	}
	for _, d := range declarations {
		if d.Identifier != coordinates.Identifier || !transform.onPath(d.Bucket()) {
			continue
		}
		transform.declarations = append(transform.declarations, d)
	}
	sortDeclarations(transform.declarations)
	return transform
}

func (it *StandardTransform) onPath(bucket Bucket) bool {
	if it.processors {
		return bucket == BucketAnnotationProcessor
	}
	return bucket.IsUsed() && bucket != BucketAnnotationProcessor
}

// Reduce computes the advice for the dependency. No usages at all is read as
// "unused everywhere". A declaration left unused in one source set is moved to
// a source set that uses the dependency without declaring it, never removed.
func (it *StandardTransform) Reduce(usages []Usage) []Advice {
	groups := it.group(usages)

	var stale, undeclared []*usageGroup
	for _, group := range groups {
		used := group.observed().IsUsed()
		switch {
		case !used && len(group.declarations) > 0:
			stale = append(stale, group)
		case used && len(group.declarations) == 0:
			undeclared = append(undeclared, group)
		}
	}

	moved := map[*usageGroup]bool{}
	var advice []Advice
	for i := 0; i < len(stale) && i < len(undeclared); i++ {
		advice = append(advice, it.move(stale[i], undeclared[i])...)
		moved[stale[i]], moved[undeclared[i]] = true, true
	}

	for _, group := range groups {
		if !moved[group] {
			advice = append(advice, it.reduceGroup(group)...)
		}
	}
	return advice
}

// move changes the most permissive declaration of an unused group into the
// configuration the used group needs. Further declarations of the unused group
// are redundant and removed.
func (it *StandardTransform) move(from, to *usageGroup) []Advice {
	var advice []Advice
	current := from.declarations[0]
	if it.isSupported(to.sourceSet) {
		target := ConfigurationName(to.sourceSet, to.observed(), it.kaptApplied)
		if target != current.ConfigurationName {
			advice = append(advice, NewChangeAdvice(it.coordinates, current.ConfigurationName, target))
		}
	}
	for _, d := range from.declarations[1:] {
		advice = append(advice, NewRemoveAdvice(it.coordinates, d.ConfigurationName))
	}
	return advice
}

func (it *usageGroup) observed() Bucket {
	observed := BucketNone
	for _, u := range it.usages {
		observed = mostPermissive(observed, u.Bucket)
	}
	return observed
}

func (it *StandardTransform) reduceGroup(group *usageGroup) []Advice {
	observed := group.observed()

	var advice []Advice
	if !observed.IsUsed() {
		for _, d := range group.declarations {
			advice = append(advice, NewRemoveAdvice(it.coordinates, d.ConfigurationName))
		}
		return advice
	}

	if len(group.declarations) == 0 {
		// No valid configuration in this project: no advice rather than a guess.
		if !it.isSupported(group.sourceSet) {
			return nil
		}
		to := ConfigurationName(group.sourceSet, observed, it.kaptApplied)
		return []Advice{NewAddAdvice(it.coordinates, to)}
	}

	keep := -1
	for i, d := range group.declarations {
		if it.matches(d, observed) {
			keep = i
			break
		}
	}
	if keep < 0 {
		keep = 0
		current := group.declarations[0]
		to := ConfigurationName(current.SourceSetName(), observed, it.kaptApplied)
		if to != current.ConfigurationName {
			advice = append(advice, NewChangeAdvice(it.coordinates, current.ConfigurationName, to))
		}
	}
	for i, d := range group.declarations {
		if i != keep {
			advice = append(advice, NewRemoveAdvice(it.coordinates, d.ConfigurationName))
		}
	}
	return advice
}

func (it *StandardTransform) matches(d Declaration, observed Bucket) bool {
	if d.Bucket() != observed {
		return false
	}
	if it.processors && it.kaptApplied {
		return d.IsKapt()
	}
	return true
}

func (it *StandardTransform) isSupported(sourceSet string) bool {
	return len(it.supported) == 0 || it.supported[sourceSet]
}

// group partitions usages by source set and attaches each declaration to the
// group it configures. Groups are returned by source set name.
func (it *StandardTransform) group(usages []Usage) []*usageGroup {
	groups := map[string]*usageGroup{}
	get := func(name string) *usageGroup {
		g, ok := groups[name]
		if !ok {
			g = &usageGroup{sourceSet: name}
			groups[name] = g
		}
		return g
	}

	for _, u := range usages {
		if u.Bucket.IsUsed() && !it.onPath(u.Bucket) {
			continue
		}
		g := get(u.SourceSetName())
		g.usages = append(g.usages, u)
	}

	for _, d := range it.declarations {
		g := get(it.groupOf(d.SourceSetName(), groups))
		g.declarations = append(g.declarations, d)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]*usageGroup, 0, len(names))
	for _, name := range names {
		result = append(result, groups[name])
	}
	return result
}

// groupOf resolves the group of a declaration's source set. Variant-specific
// source sets ("debug", "testDebug", "androidTestRelease") join the group whose
// usages come from that variant.
func (it *StandardTransform) groupOf(sourceSet string, groups map[string]*usageGroup) string {
	if _, ok := groups[sourceSet]; ok {
		return sourceSet
	}

	target, variant := mainSourceSet, sourceSet
	for _, prefix := range []string{"androidTest", "test"} {
		rest, found := strings.CutPrefix(sourceSet, prefix)
		if found && rest != "" {
			target, variant = prefix, decapitalize(rest)
			break
		}
	}

	if g, ok := groups[target]; ok {
		for _, u := range g.usages {
			if u.describes(variant) {
				return target
			}
		}
	}
	return sourceSet
}
