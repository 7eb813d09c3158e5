package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the user configuration of depadvice.
type Settings struct {
	IgnoreKtx bool                      `yaml:"ignore_ktx"`
	Format    string                    `yaml:"format"`
	Bundles   map[string]BundleSettings `yaml:"bundles"`
}

// BundleSettings describes one bundle. Every entry contributes patterns that
// are matched against dependency identifiers.
type BundleSettings struct {
	IncludeGroups       []string `yaml:"include_groups"`
	IncludeDependencies []string `yaml:"include_dependencies"`
	Includes            []string `yaml:"includes"`      // raw regular expressions
	IncludeGlobs        []string `yaml:"include_globs"` // e.g. "com.google.*:*"
}

const defaultFormat = "console"

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings is used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Format:  defaultFormat,
		Bundles: map[string]BundleSettings{},
	}
}

// NewSettings reads and parses a settings file. Files ending in ".hcl" are
// parsed as HCL, everything else as YAML. ${ENV_VAR} references are expanded
// before parsing.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	content := expandEnv(string(data))

	var settings *Settings
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		settings, err = parseHCLSettings(content, path)
	} else {
		settings, err = parseYAMLSettings(content)
	}
	if err != nil {
		return nil, err
	}

	if settings.Format == "" {
		settings.Format = defaultFormat
	}
	if settings.Bundles == nil {
		settings.Bundles = map[string]BundleSettings{}
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

func parseYAMLSettings(content string) (*Settings, error) {
	var settings Settings
	if unmarshalErr := yaml.Unmarshal([]byte(content), &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}
	return &settings, nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depadvice.yaml",
		".depadvice.yml",
		".depadvice.hcl",
		"depadvice.yaml",
		"depadvice.yml",
		"depadvice.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// BundleRules compiles the configured bundles.
func (s *Settings) BundleRules() (*BundleRules, error) {
	patterns := make(map[string][]string, len(s.Bundles))
	globs := make(map[string][]string, len(s.Bundles))
	for name, bundle := range s.Bundles {
		patterns[name] = bundle.patterns()
		globs[name] = bundle.IncludeGlobs
	}
	return compileBundleRules(patterns, globs)
}

func (b BundleSettings) patterns() []string {
	var patterns []string
	for _, group := range b.IncludeGroups {
		patterns = append(patterns, IncludeGroup(group))
	}
	for _, dependency := range b.IncludeDependencies {
		patterns = append(patterns, IncludeDependency(dependency))
	}
	patterns = append(patterns, b.Includes...)
	return patterns
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks every bundle has at least one valid pattern.
func validate(settings *Settings) error {
	names := make([]string, 0, len(settings.Bundles))
	for name := range settings.Bundles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		bundle := settings.Bundles[name]
		if len(bundle.patterns()) == 0 && len(bundle.IncludeGlobs) == 0 {
			return fmt.Errorf("bundles.%s must include at least one group, dependency, pattern or glob", name)
		}
	}

	if _, err := settings.BundleRules(); err != nil {
		return err
	}

	return nil
}
