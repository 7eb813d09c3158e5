package entities

import "sort"

// AnalysisInput is everything the advice engine consumes for one project.
type AnalysisInput struct {
	Project             Coordinates
	Reports             []UsageReport
	Graphs              []*DependencyGraphView
	Declarations        []Declaration
	SupportedSourceSets []string
	KaptApplied         bool
	// RedundantPlugins are plugin facts computed elsewhere; they pass through.
	RedundantPlugins []PluginAdvice
}

// AdviceOptions holds the user-controlled knobs of one computation.
type AdviceOptions struct {
	BundleRules *BundleRules
	IgnoreKtx   bool
}

// DependencyAdviceBuilder runs the advice pipeline for one project:
// aggregate usages, index bundles, transform each dependency, suppress
// bundled advice and sort.
type DependencyAdviceBuilder struct {
	input        AnalysisInput
	opts         AdviceOptions
	declarations *Declarations
	catalog      coordinatesCatalog

	bundledTraces map[string]bool
}

// NewDependencyAdviceBuilder prepares a builder. The input is only read.
func NewDependencyAdviceBuilder(input AnalysisInput, opts AdviceOptions) *DependencyAdviceBuilder {
	catalog := coordinatesCatalog{}
	for _, view := range input.Graphs {
		if view == nil {
			continue
		}
		for _, node := range view.Nodes() {
			catalog.add(node)
		}
	}
	return &DependencyAdviceBuilder{
		input:         input,
		opts:          opts,
		declarations:  NewDeclarations(input.Declarations),
		catalog:       catalog,
		bundledTraces: map[string]bool{},
	}
}

// BuildDependencyAdvice is a shortcut for NewDependencyAdviceBuilder(...).Build().
func BuildDependencyAdvice(input AnalysisInput, opts AdviceOptions) *AdviceResult {
	return NewDependencyAdviceBuilder(input, opts).Build()
}

// Build computes the advice result.
func (it *DependencyAdviceBuilder) Build() *AdviceResult {
	dependencyUsages, processorUsages := AggregateUsages(it.input.Reports)
	for _, c := range dependencyUsages.Coordinates() {
		it.catalog.add(c)
	}
	for _, c := range processorUsages.Coordinates() {
		it.catalog.add(c)
	}

	bundles := NewBundleIndex(
		it.input.Project,
		it.input.Graphs,
		it.opts.BundleRules,
		dependencyUsages,
		it.opts.IgnoreKtx,
	)

	regular := it.reduceAll(dependencyUsages, TransformOptions{
		SupportedSourceSets: it.input.SupportedSourceSets,
		KaptApplied:         it.input.KaptApplied,
	})
	regular = it.suppressBundled(regular, bundles)

	processors := it.reduceAll(processorUsages, TransformOptions{
		SupportedSourceSets:  it.input.SupportedSourceSets,
		KaptApplied:          it.input.KaptApplied,
		AnnotationProcessors: true,
	})

	advice := make([]Advice, 0, len(regular)+len(processors))
	advice = append(advice, regular...)
	advice = append(advice, processors...)

	return &AdviceResult{
		ProjectAdvice: ProjectAdvice{
			ProjectPath:      it.input.Project.Identifier,
			DependencyAdvice: SortAdvice(advice),
			PluginAdvice:     it.pluginAdvice(processorUsages),
		},
		DependencyUsages:          dependencyUsages,
		AnnotationProcessorUsages: processorUsages,
		BundledTraces:             it.traces(),
	}
}

// reduceAll runs the transform over every dependency that is either observed
// in usages or declared on the transform's path.
func (it *DependencyAdviceBuilder) reduceAll(usages *UsageMap, opts TransformOptions) []Advice {
	onPath := func(d Declaration) bool {
		if opts.AnnotationProcessors {
			return d.IsAnnotationProcessor()
		}
		return d.Bucket().IsUsed() && !d.IsAnnotationProcessor()
	}

	identifiers := map[string]bool{}
	for _, c := range usages.Coordinates() {
		identifiers[c.Identifier] = true
	}
	for _, id := range it.declarations.Identifiers(onPath) {
		identifiers[id] = true
	}
	// the project never advises on itself
	delete(identifiers, it.input.Project.Identifier)

	sorted := make([]string, 0, len(identifiers))
	for id := range identifiers {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	var advice []Advice
	for _, id := range sorted {
		coordinates := it.catalog.resolve(id)
		transform := NewStandardTransform(coordinates, it.declarations.ForIdentifier(id), opts)
		advice = append(advice, transform.Reduce(usages.Get(coordinates))...)
	}
	return advice
}

// suppressBundled drops add advice for bundle members and remove advice for
// bundle parents with a used member, recording each suppressed identifier.
func (it *DependencyAdviceBuilder) suppressBundled(advice []Advice, bundles *BundleIndex) []Advice {
	result := make([]Advice, 0, len(advice))
	for _, a := range advice {
		suppressed := false
		switch a.Kind() {
		case AdviceAdd:
			suppressed = bundles.HasParentInBundle(a.Coordinates)
		case AdviceRemove:
			suppressed = bundles.HasUsedChild(a.Coordinates)
		case AdviceChange:
		}

		if suppressed {
			it.bundledTraces[a.Coordinates.Identifier] = true
			continue
		}
		result = append(result, a)
	}
	return result
}

func (it *DependencyAdviceBuilder) pluginAdvice(processorUsages *UsageMap) []PluginAdvice {
	advice := append([]PluginAdvice(nil), it.input.RedundantPlugins...)
	if it.input.KaptApplied && !processorUsages.AnyBucket(BucketAnnotationProcessor) {
		advice = append(advice, RedundantKapt())
	}
	return SortPluginAdvice(advice)
}

func (it *DependencyAdviceBuilder) traces() []string {
	result := make([]string, 0, len(it.bundledTraces))
	for id := range it.bundledTraces {
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}
