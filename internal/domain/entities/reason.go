package entities

// Reason explains the verdict for one dependency.
type Reason struct {
	Coordinates          Coordinates
	Usages               []Usage
	ProcessorUsages      []Usage
	Declarations         []Declaration
	Advice               []Advice
	SuppressedByBundling bool
}

// IsKnown reports whether the dependency appears anywhere in the analysis.
func (r Reason) IsKnown() bool {
	return len(r.Usages) > 0 || len(r.ProcessorUsages) > 0 || len(r.Declarations) > 0
}

// ExplainDependency collects what the engine knew and decided about one identifier.
func ExplainDependency(result *AdviceResult, input AnalysisInput, identifier string) Reason {
	parsed := ParseCoordinates(identifier)
	identifier = parsed.Identifier

	coordinates, ok := result.DependencyUsages.Lookup(identifier)
	if !ok {
		coordinates, ok = result.AnnotationProcessorUsages.Lookup(identifier)
	}
	if !ok {
		coordinates = parsed
	}

	reason := Reason{
		Coordinates:     coordinates,
		Usages:          result.DependencyUsages.Get(coordinates),
		ProcessorUsages: result.AnnotationProcessorUsages.Get(coordinates),
		Declarations:    NewDeclarations(input.Declarations).ForIdentifier(identifier),
	}

	for _, a := range result.ProjectAdvice.DependencyAdvice {
		if a.Coordinates.Identifier == identifier {
			reason.Advice = append(reason.Advice, a)
		}
	}
	for _, id := range result.BundledTraces {
		if id == identifier {
			reason.SuppressedByBundling = true
			break
		}
	}
	return reason
}
