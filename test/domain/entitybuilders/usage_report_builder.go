//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depadvice/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// UsageReportBuilder helps create per-variant usage reports with a fluent interface.
type UsageReportBuilder struct {
	*testkit.BaseBuilder
	variant      string
	buildType    string
	flavor       string
	kind         entities.SourceSetKind
	dependencies []entities.Trace
	processors   []entities.Trace
}

// NewUsageReportBuilder creates a new builder for the "debug" main variant.
func NewUsageReportBuilder() *UsageReportBuilder {
	return &UsageReportBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		variant:     "debug",
		buildType:   "debug",
		kind:        entities.SourceSetMain,
	}
}

// WithVariant sets the variant name.
func (b *UsageReportBuilder) WithVariant(variant string) *UsageReportBuilder {
	b.variant = variant
	return b
}

// WithBuildType sets the build type.
func (b *UsageReportBuilder) WithBuildType(buildType string) *UsageReportBuilder {
	b.buildType = buildType
	return b
}

// WithFlavor sets the product flavor.
func (b *UsageReportBuilder) WithFlavor(flavor string) *UsageReportBuilder {
	b.flavor = flavor
	return b
}

// WithKind sets the source set kind.
func (b *UsageReportBuilder) WithKind(kind entities.SourceSetKind) *UsageReportBuilder {
	b.kind = kind
	return b
}

// WithDependency records a regular dependency usage.
func (b *UsageReportBuilder) WithDependency(coordinates string, bucket entities.Bucket, reasons ...string) *UsageReportBuilder {
	b.dependencies = append(b.dependencies, entities.Trace{
		Coordinates: entities.ParseCoordinates(coordinates),
		Bucket:      bucket,
		Reasons:     reasons,
	})
	return b
}

// WithProcessor records an annotation processor usage.
func (b *UsageReportBuilder) WithProcessor(coordinates string, bucket entities.Bucket) *UsageReportBuilder {
	b.processors = append(b.processors, entities.Trace{
		Coordinates: entities.ParseCoordinates(coordinates),
		Bucket:      bucket,
	})
	return b
}

// Build creates the report (satisfies testkit.Builder interface).
func (b *UsageReportBuilder) Build() interface{} {
	return b.BuildReport()
}

// BuildReport creates the report with a concrete return type.
func (b *UsageReportBuilder) BuildReport() entities.UsageReport {
	return entities.UsageReport{
		Variant:              b.variant,
		BuildType:            b.buildType,
		Flavor:               b.flavor,
		Kind:                 b.kind,
		Dependencies:         append([]entities.Trace(nil), b.dependencies...),
		AnnotationProcessors: append([]entities.Trace(nil), b.processors...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *UsageReportBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.variant = "debug"
	b.buildType = "debug"
	b.flavor = ""
	b.kind = entities.SourceSetMain
	b.dependencies = nil
	b.processors = nil
	return b
}

// Clone creates a deep copy of the UsageReportBuilder.
func (b *UsageReportBuilder) Clone() testkit.Builder {
	return &UsageReportBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		variant:      b.variant,
		buildType:    b.buildType,
		flavor:       b.flavor,
		kind:         b.kind,
		dependencies: append([]entities.Trace(nil), b.dependencies...),
		processors:   append([]entities.Trace(nil), b.processors...),
	}
}
