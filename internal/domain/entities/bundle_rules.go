package entities

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/gobwas/glob"
)

// globSeparator keeps a single "*" inside one coordinate segment.
const globSeparator = ':'

// BundleRule is a named group of identifier patterns.
type BundleRule struct {
	Name     string
	matchers []func(string) bool
}

// Matches reports whether any of the rule's patterns matches the whole identifier.
func (r BundleRule) Matches(identifier string) bool {
	for _, match := range r.matchers {
		if match(identifier) {
			return true
		}
	}
	return false
}

// BundleRules holds every configured bundle, compiled.
type BundleRules struct {
	rules []BundleRule
}

// NewBundleRules compiles a mapping of bundle name to regular expressions.
// Expressions are anchored so they must match the full identifier.
func NewBundleRules(definitions map[string][]string) (*BundleRules, error) {
	return compileBundleRules(definitions, nil)
}

// compileBundleRules builds one rule per name found in either map. Globs use
// ':' as separator: "com.google.*:*" stays within the group segment while
// "com.google.**" spans segments.
func compileBundleRules(patterns, globs map[string][]string) (*BundleRules, error) {
	seen := map[string]bool{}
	for name := range patterns {
		seen[name] = true
	}
	for name := range globs {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := make([]BundleRule, 0, len(names))
	for _, name := range names {
		rule := BundleRule{Name: name}
		for _, expr := range patterns[name] {
			compiled, err := regexp.Compile("^(?:" + expr + ")$")
			if err != nil {
				return nil, fmt.Errorf("bundle %q: invalid pattern %q: %w", name, expr, err)
			}
			rule.matchers = append(rule.matchers, compiled.MatchString)
		}
		for _, expr := range globs[name] {
			compiled, err := glob.Compile(expr, globSeparator)
			if err != nil {
				return nil, fmt.Errorf("bundle %q: invalid glob %q: %w", name, expr, err)
			}
			rule.matchers = append(rule.matchers, compiled.Match)
		}
		rules = append(rules, rule)
	}
	return &BundleRules{rules: rules}, nil
}

// EmptyBundleRules returns a rule set without bundles.
func EmptyBundleRules() *BundleRules {
	return &BundleRules{}
}

// Matching returns the rules whose patterns match the identifier, by name.
func (it *BundleRules) Matching(identifier string) []BundleRule {
	if it == nil {
		return nil
	}
	var result []BundleRule
	for _, r := range it.rules {
		if r.Matches(identifier) {
			result = append(result, r)
		}
	}
	return result
}

// Names returns the configured bundle names, sorted.
func (it *BundleRules) Names() []string {
	if it == nil {
		return nil
	}
	names := make([]string, 0, len(it.rules))
	for _, r := range it.rules {
		names = append(names, r.Name)
	}
	return names
}

// IncludeGroup returns the pattern for every artifact of a group.
func IncludeGroup(group string) string {
	return regexp.QuoteMeta(group) + ":.*"
}

// IncludeDependency returns the pattern for exactly one identifier.
func IncludeDependency(identifier string) string {
	return regexp.QuoteMeta(identifier)
}
