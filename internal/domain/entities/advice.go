package entities

import "sort"

// AdviceKind is the operation an Advice recommends.
type AdviceKind string

const (
	AdviceAdd    AdviceKind = "add"
	AdviceRemove AdviceKind = "remove"
	AdviceChange AdviceKind = "change"
)

// kindOrder fixes the position of each kind in a sorted advice set.
func (k AdviceKind) order() int {
	switch k {
	case AdviceAdd:
		return 0
	case AdviceRemove:
		return 1
	default:
		return 2 //nolint:mnd // change sorts last
	}
}

// Advice is one recommended change to a dependency declaration.
// An empty FromConfiguration means "add"; an empty ToConfiguration means "remove".
type Advice struct {
	Coordinates       Coordinates `json:"coordinates"                 yaml:"coordinates"`
	FromConfiguration string      `json:"fromConfiguration,omitempty" yaml:"from_configuration,omitempty"`
	ToConfiguration   string      `json:"toConfiguration,omitempty"   yaml:"to_configuration,omitempty"`
}

// NewAddAdvice recommends declaring c on the given configuration.
func NewAddAdvice(c Coordinates, toConfiguration string) Advice {
	return Advice{Coordinates: c, ToConfiguration: toConfiguration}
}

// NewRemoveAdvice recommends dropping the declaration of c from the given configuration.
func NewRemoveAdvice(c Coordinates, fromConfiguration string) Advice {
	return Advice{Coordinates: c, FromConfiguration: fromConfiguration}
}

// NewChangeAdvice recommends moving the declaration of c between configurations.
func NewChangeAdvice(c Coordinates, fromConfiguration, toConfiguration string) Advice {
	return Advice{Coordinates: c, FromConfiguration: fromConfiguration, ToConfiguration: toConfiguration}
}

// Kind returns the operation this advice recommends.
func (a Advice) Kind() AdviceKind {
	switch {
	case a.FromConfiguration == "":
		return AdviceAdd
	case a.ToConfiguration == "":
		return AdviceRemove
	default:
		return AdviceChange
	}
}

// FromBucket returns the bucket of the current declaration (NONE for an add).
func (a Advice) FromBucket() Bucket {
	if a.FromConfiguration == "" {
		return BucketNone
	}
	return BucketOf(a.FromConfiguration)
}

// ToBucket returns the bucket of the recommended declaration (NONE for a remove).
func (a Advice) ToBucket() Bucket {
	if a.ToConfiguration == "" {
		return BucketNone
	}
	return BucketOf(a.ToConfiguration)
}

// IsAnnotationProcessor reports whether the advice concerns a processor configuration.
func (a Advice) IsAnnotationProcessor() bool {
	return a.FromBucket() == BucketAnnotationProcessor || a.ToBucket() == BucketAnnotationProcessor
}

// Less orders advice by identifier, then kind, then configurations.
func (a Advice) Less(other Advice) bool {
	if c := a.Coordinates.Compare(other.Coordinates); c != 0 {
		return c < 0
	}
	if a.Kind() != other.Kind() {
		return a.Kind().order() < other.Kind().order()
	}
	if a.FromConfiguration != other.FromConfiguration {
		return a.FromConfiguration < other.FromConfiguration
	}
	return a.ToConfiguration < other.ToConfiguration
}

func (a Advice) key() string {
	return a.Coordinates.Identifier + "\x1e" + a.FromConfiguration + "\x1e" + a.ToConfiguration
}

// SortAdvice returns the advice deduplicated and in canonical order.
func SortAdvice(advice []Advice) []Advice {
	seen := map[string]bool{}
	result := make([]Advice, 0, len(advice))
	for _, a := range advice {
		if seen[a.key()] {
			continue
		}
		seen[a.key()] = true
		result = append(result, a)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Less(result[j]) })
	return result
}
