package entities

import (
	"sort"
	"strings"
)

// SourceSetKind is the family a variant's source set belongs to.
type SourceSetKind string

const (
	SourceSetMain        SourceSetKind = "main"
	SourceSetTest        SourceSetKind = "test"
	SourceSetAndroidTest SourceSetKind = "android_test"
	SourceSetCustomJVM   SourceSetKind = "custom_jvm"
)

// ParseSourceSetKind maps a kind name from an input document. Unknown names map
// to SourceSetMain and ok is false.
func ParseSourceSetKind(raw string) (SourceSetKind, bool) {
	switch strings.ToLower(strings.ReplaceAll(raw, "-", "_")) {
	case "", "main":
		return SourceSetMain, true
	case "test":
		return SourceSetTest, true
	case "android_test", "androidtest":
		return SourceSetAndroidTest, true
	case "custom_jvm", "customjvm":
		return SourceSetCustomJVM, true
	default:
		return SourceSetMain, false
	}
}

// Usage is one observed fact: in this variant, the dependency fell into Bucket.
type Usage struct {
	Variant   string        `json:"variant"             yaml:"variant"`
	BuildType string        `json:"buildType,omitempty" yaml:"build_type,omitempty"`
	Flavor    string        `json:"flavor,omitempty"    yaml:"flavor,omitempty"`
	Kind      SourceSetKind `json:"kind"                yaml:"kind"`
	Bucket    Bucket        `json:"bucket"              yaml:"bucket"`
	Reasons   []string      `json:"reasons,omitempty"   yaml:"reasons,omitempty"`
}

// SourceSetName returns the source set whose configurations declare the
// dependency for this usage.
func (u Usage) SourceSetName() string {
	switch u.Kind {
	case SourceSetTest:
		return "test"
	case SourceSetAndroidTest:
		return "androidTest"
	case SourceSetCustomJVM:
		return u.Variant
	default:
		return mainSourceSet
	}
}

// describes reports whether the usage belongs to the named variant, build type
// or flavor. Used to attach variant-specific declarations to their group.
func (u Usage) describes(name string) bool {
	return name != "" && (u.Variant == name || u.BuildType == name || u.Flavor == name)
}

func (u Usage) key() string {
	reasons := append([]string(nil), u.Reasons...)
	sort.Strings(reasons)
	return strings.Join([]string{
		u.Variant, u.BuildType, u.Flavor, string(u.Kind), string(u.Bucket), strings.Join(reasons, "\x1f"),
	}, "\x1e")
}

// Trace is one dependency entry of a usage report.
type Trace struct {
	Coordinates Coordinates
	Bucket      Bucket
	Reasons     []string
}

// UsageReport is the usage evidence for one variant (compilation unit).
type UsageReport struct {
	Variant              string
	BuildType            string
	Flavor               string
	Kind                 SourceSetKind
	Dependencies         []Trace
	AnnotationProcessors []Trace
}

func (r UsageReport) usageOf(trace Trace) Usage {
	return Usage{
		Variant:   r.Variant,
		BuildType: r.BuildType,
		Flavor:    r.Flavor,
		Kind:      r.Kind,
		Bucket:    trace.Bucket,
		Reasons:   trace.Reasons,
	}
}
