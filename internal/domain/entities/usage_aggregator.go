package entities

import "sort"

// UsageMap maps each dependency identifier to every usage observed for it.
// Usages are kept as a set: identical facts collapse, distinct facts
// (e.g. API in one variant and IMPLEMENTATION in another) are all retained.
type UsageMap struct {
	coordinates coordinatesCatalog
	usages      map[string]map[string]Usage
}

// NewUsageMap creates an empty UsageMap.
func NewUsageMap() *UsageMap {
	return &UsageMap{
		coordinates: coordinatesCatalog{},
		usages:      map[string]map[string]Usage{},
	}
}

// Add records a usage for the given coordinates.
func (it *UsageMap) Add(c Coordinates, usage Usage) {
	it.coordinates.add(c)
	set, ok := it.usages[c.Identifier]
	if !ok {
		set = map[string]Usage{}
		it.usages[c.Identifier] = set
	}
	set[usage.key()] = usage
}

// Coordinates returns every dependency with at least one usage, sorted by identifier.
func (it *UsageMap) Coordinates() []Coordinates {
	result := make([]Coordinates, 0, len(it.coordinates))
	for _, c := range it.coordinates {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Compare(result[j]) < 0 })
	return result
}

// Lookup returns the best-known coordinates for an identifier.
func (it *UsageMap) Lookup(identifier string) (Coordinates, bool) {
	c, ok := it.coordinates[identifier]
	return c, ok
}

// Get returns the usages recorded for the coordinates in a stable order.
// A dependency with no recorded usage yields an empty slice.
func (it *UsageMap) Get(c Coordinates) []Usage {
	set := it.usages[c.Identifier]
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]Usage, 0, len(keys))
	for _, k := range keys {
		result = append(result, set[k])
	}
	return result
}

// Len returns the number of distinct dependencies.
func (it *UsageMap) Len() int {
	return len(it.usages)
}

// AnyBucket reports whether any usage of any dependency is in the bucket.
func (it *UsageMap) AnyBucket(bucket Bucket) bool {
	for _, set := range it.usages {
		for _, u := range set {
			if u.Bucket == bucket {
				return true
			}
		}
	}
	return false
}

// isUsed reports whether the dependency has a usage whose bucket is not NONE.
func (it *UsageMap) isUsed(c Coordinates) bool {
	for _, u := range it.usages[c.Identifier] {
		if u.Bucket.IsUsed() {
			return true
		}
	}
	return false
}

// AggregateUsages merges per-variant usage reports into one mapping for regular
// dependencies and one for annotation processors. Nothing is fabricated for
// dependencies that no report mentions.
func AggregateUsages(reports []UsageReport) (*UsageMap, *UsageMap) {
	dependencies := NewUsageMap()
	processors := NewUsageMap()

	for _, report := range reports {
		for _, trace := range report.Dependencies {
			dependencies.Add(trace.Coordinates, report.usageOf(trace))
		}
		for _, trace := range report.AnnotationProcessors {
			processors.Add(trace.Coordinates, report.usageOf(trace))
		}
	}

	return dependencies, processors
}
