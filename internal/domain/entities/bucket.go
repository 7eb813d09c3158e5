package entities

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Bucket is the category a dependency falls into for one compilation unit.
// Its value is the configuration suffix used to declare it.
type Bucket string

const (
	BucketNone                Bucket = "none"
	BucketAPI                 Bucket = "api"
	BucketImplementation      Bucket = "implementation"
	BucketCompileOnly         Bucket = "compileOnly"
	BucketCompileOnlyAPI      Bucket = "compileOnlyApi"
	BucketRuntimeOnly         Bucket = "runtimeOnly"
	BucketAnnotationProcessor Bucket = "annotationProcessor"
)

const (
	mainSourceSet = "main"
	kaptPrefix    = "kapt"
)

// bucketsBySuffix is checked in order; compileOnlyApi must precede api.
//
//nolint:gochecknoglobals // lookup table
var bucketsBySuffix = []Bucket{
	BucketCompileOnlyAPI,
	BucketAPI,
	BucketImplementation,
	BucketCompileOnly,
	BucketRuntimeOnly,
	BucketAnnotationProcessor,
}

// ParseBucket maps a bucket name from an input document. Unknown names map to
// BucketNone and ok is false.
func ParseBucket(raw string) (Bucket, bool) {
	if raw == "" {
		return BucketNone, true
	}
	for _, b := range append([]Bucket{BucketNone}, bucketsBySuffix...) {
		if strings.EqualFold(raw, string(b)) {
			return b, true
		}
	}
	if strings.EqualFold(raw, "impl") {
		return BucketImplementation, true
	}
	return BucketNone, false
}

// BucketOf derives the bucket of a configuration name, e.g. "testApi" -> API and
// "kaptTest" -> ANNOTATION_PROCESSOR. Configurations that do not declare
// dependencies map to BucketNone.
func BucketOf(configurationName string) Bucket {
	if isKaptConfiguration(configurationName) {
		return BucketAnnotationProcessor
	}
	lower := strings.ToLower(configurationName)
	for _, b := range bucketsBySuffix {
		if strings.HasSuffix(lower, strings.ToLower(string(b))) {
			return b
		}
	}
	return BucketNone
}

// rank orders buckets by permissiveness; the highest observed rank wins.
func (b Bucket) rank() int {
	switch b {
	case BucketAPI:
		return 5 //nolint:mnd // rank table
	case BucketImplementation:
		return 4 //nolint:mnd // rank table
	case BucketCompileOnlyAPI:
		return 3 //nolint:mnd // rank table
	case BucketCompileOnly:
		return 2 //nolint:mnd // rank table
	case BucketRuntimeOnly, BucketAnnotationProcessor:
		return 1
	default:
		return 0
	}
}

// IsUsed reports whether the bucket records actual usage.
func (b Bucket) IsUsed() bool {
	return b != BucketNone && b != ""
}

// mostPermissive returns the highest-ranked bucket among the given ones.
func mostPermissive(buckets ...Bucket) Bucket {
	result := BucketNone
	for _, b := range buckets {
		if b.rank() > result.rank() {
			result = b
		}
	}
	return result
}

// ConfigurationName returns the configuration that declares a dependency in the
// given bucket for the given source set.
func ConfigurationName(sourceSetName string, bucket Bucket, kaptApplied bool) string {
	if bucket == BucketAnnotationProcessor && kaptApplied {
		if sourceSetName == mainSourceSet {
			return kaptPrefix
		}
		return kaptPrefix + capitalize(sourceSetName)
	}
	if sourceSetName == mainSourceSet || sourceSetName == "" {
		return string(bucket)
	}
	return sourceSetName + capitalize(string(bucket))
}

// SourceSetOf derives the source set a configuration belongs to, e.g.
// "testImplementation" -> "test", "api" -> "main", "kaptAndroidTest" -> "androidTest".
func SourceSetOf(configurationName string) string {
	if isKaptConfiguration(configurationName) {
		rest := strings.TrimPrefix(configurationName, kaptPrefix)
		if rest == "" {
			return mainSourceSet
		}
		return decapitalize(rest)
	}

	bucket := BucketOf(configurationName)
	if !bucket.IsUsed() {
		return mainSourceSet
	}
	prefix := configurationName[:len(configurationName)-len(bucket)]
	if prefix == "" {
		return mainSourceSet
	}
	return prefix
}

func isKaptConfiguration(name string) bool {
	if !strings.HasPrefix(name, kaptPrefix) {
		return false
	}
	rest := strings.TrimPrefix(name, kaptPrefix)
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func decapitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
