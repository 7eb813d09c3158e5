package entities

import "sort"

// Declaration records that a dependency is currently declared on a configuration.
type Declaration struct {
	Identifier        string `json:"identifier"    yaml:"identifier"`
	ConfigurationName string `json:"configuration" yaml:"configuration"`
}

// Bucket returns the bucket implied by the declaring configuration.
func (d Declaration) Bucket() Bucket {
	return BucketOf(d.ConfigurationName)
}

// SourceSetName returns the source set the declaring configuration belongs to.
func (d Declaration) SourceSetName() string {
	return SourceSetOf(d.ConfigurationName)
}

// IsAnnotationProcessor reports whether the declaration is on a processor configuration.
func (d Declaration) IsAnnotationProcessor() bool {
	return d.Bucket() == BucketAnnotationProcessor
}

// IsKapt reports whether the declaration is on a kapt configuration.
func (d Declaration) IsKapt() bool {
	return isKaptConfiguration(d.ConfigurationName)
}

// Declarations groups declarations by identifier.
type Declarations struct {
	byIdentifier map[string][]Declaration
}

// NewDeclarations indexes the given declarations, dropping exact duplicates.
func NewDeclarations(declarations []Declaration) *Declarations {
	index := map[string][]Declaration{}
	seen := map[Declaration]bool{}
	for _, d := range declarations {
		if seen[d] || d.Identifier == "" {
			continue
		}
		seen[d] = true
		index[d.Identifier] = append(index[d.Identifier], d)
	}
	for id := range index {
		sortDeclarations(index[id])
	}
	return &Declarations{byIdentifier: index}
}

// ForIdentifier returns the declarations of one dependency.
func (it *Declarations) ForIdentifier(identifier string) []Declaration {
	return it.byIdentifier[identifier]
}

// Identifiers returns every declared identifier whose declarations satisfy the
// predicate, sorted.
func (it *Declarations) Identifiers(match func(Declaration) bool) []string {
	var result []string
	for id, decls := range it.byIdentifier {
		for _, d := range decls {
			if match(d) {
				result = append(result, id)
				break
			}
		}
	}
	sort.Strings(result)
	return result
}

// sortDeclarations orders by permissiveness (most permissive first), then by name.
func sortDeclarations(declarations []Declaration) {
	sort.SliceStable(declarations, func(i, j int) bool {
		ri, rj := declarations[i].Bucket().rank(), declarations[j].Bucket().rank()
		if ri != rj {
			return ri > rj
		}
		return declarations[i].ConfigurationName < declarations[j].ConfigurationName
	})
}
