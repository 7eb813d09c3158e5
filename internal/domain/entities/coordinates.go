package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// CoordinatesType distinguishes the kinds of node a dependency graph can hold.
type CoordinatesType string

const (
	CoordinatesModule        CoordinatesType = "module"
	CoordinatesProject       CoordinatesType = "project"
	CoordinatesFlat          CoordinatesType = "flat"
	CoordinatesIncludedBuild CoordinatesType = "included_build"
)

// Coordinates identify a dependency or the project itself.
// Identity (equality, ordering, map keys) is the Identifier; the resolved
// version is carried only for display.
type Coordinates struct {
	Type            CoordinatesType `json:"type"                      yaml:"type"`
	Identifier      string          `json:"identifier"                yaml:"identifier"`
	ResolvedVersion string          `json:"resolvedVersion,omitempty" yaml:"resolved_version,omitempty"`
}

// NewModuleCoordinates creates coordinates for an external module ("group:artifact").
func NewModuleCoordinates(identifier, version string) Coordinates {
	return Coordinates{Type: CoordinatesModule, Identifier: identifier, ResolvedVersion: version}
}

// NewProjectCoordinates creates coordinates for a project path (":lib").
func NewProjectCoordinates(path string) Coordinates {
	return Coordinates{Type: CoordinatesProject, Identifier: path}
}

// ParseCoordinates parses the textual forms used in input documents:
//   - ":path:to:project" is a project
//   - "group:artifact", "group:artifact:version" and
//     "group:artifact:version:classifier" are modules
//   - anything else is a flat (file) dependency
func ParseCoordinates(raw string) Coordinates {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, ":") {
		return NewProjectCoordinates(raw)
	}

	parts := strings.Split(raw, ":")
	switch {
	case len(parts) == 2: //nolint:mnd // group:artifact
		return NewModuleCoordinates(raw, "")
	case len(parts) >= 3: //nolint:mnd // group:artifact:version[:classifier]
		return NewModuleCoordinates(parts[0]+":"+parts[1], parts[2])
	default:
		return Coordinates{Type: CoordinatesFlat, Identifier: raw}
	}
}

// GAV returns the identifier with the resolved version appended, if known.
func (c Coordinates) GAV() string {
	if c.ResolvedVersion == "" {
		return c.Identifier
	}
	return c.Identifier + ":" + c.ResolvedVersion
}

// IsZero reports whether the coordinates were never set.
func (c Coordinates) IsZero() bool {
	return c.Identifier == ""
}

// Equal compares by identity only.
func (c Coordinates) Equal(other Coordinates) bool {
	return c.Identifier == other.Identifier
}

// Compare orders coordinates by identifier.
func (c Coordinates) Compare(other Coordinates) int {
	return strings.Compare(c.Identifier, other.Identifier)
}

func (c Coordinates) String() string {
	return c.GAV()
}

// preferred returns whichever of c and other carries the higher resolved version.
// Both must share an identifier.
func (c Coordinates) preferred(other Coordinates) Coordinates {
	if c.ResolvedVersion == "" {
		return other
	}
	if other.ResolvedVersion == "" {
		return c
	}
	if IsNewerVersion(c.ResolvedVersion, other.ResolvedVersion) {
		return other
	}
	return c
}

// IsNewerVersion compares two version strings and returns true if newVersion is newer.
func IsNewerVersion(currentVersion, newVersion string) bool {
	current := normalizeVersion(currentVersion)
	candidate := normalizeVersion(newVersion)

	if semver.IsValid(current) && semver.IsValid(candidate) {
		return semver.Compare(candidate, current) > 0
	}

	// Fall back to string comparison for non-semver versions
	return newVersion > currentVersion
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// coordinatesCatalog remembers the best-known coordinates for each identifier.
type coordinatesCatalog map[string]Coordinates

func (it coordinatesCatalog) add(c Coordinates) {
	if c.IsZero() {
		return
	}
	if known, ok := it[c.Identifier]; ok {
		it[c.Identifier] = known.preferred(c)
		return
	}
	it[c.Identifier] = c
}

func (it coordinatesCatalog) resolve(identifier string) Coordinates {
	if c, ok := it[identifier]; ok {
		return c
	}
	return ParseCoordinates(identifier)
}
