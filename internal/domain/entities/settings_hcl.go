package entities

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// parseHCLSettings reads the HCL form of the settings file:
//
//	ignore_ktx = true
//	format     = "json"
//
//	bundle "kotlin-stdlib" {
//	  include_groups = ["org.jetbrains.kotlin"]
//	}
func parseHCLSettings(content, filePath string) (*Settings, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL([]byte(content), filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %w", diags)
	}

	bodyContent, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "ignore_ktx"},
			{Name: "format"},
		},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "bundle", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %w", diags)
	}

	settings := DefaultSettings()
	settings.Format = ""

	if attr, ok := bodyContent.Attributes["ignore_ktx"]; ok {
		val, valDiags := attr.Expr.Value(&hcl.EvalContext{})
		if valDiags.HasErrors() || val.IsNull() || val.Type() != cty.Bool {
			return nil, fmt.Errorf("%s: ignore_ktx must be a bool", attr.Range.String())
		}
		settings.IgnoreKtx = val.True()
	}

	if attr, ok := bodyContent.Attributes["format"]; ok {
		val, valDiags := attr.Expr.Value(&hcl.EvalContext{})
		if valDiags.HasErrors() || val.IsNull() || val.Type() != cty.String {
			return nil, fmt.Errorf("%s: format must be a string", attr.Range.String())
		}
		settings.Format = val.AsString()
	}

	for _, block := range bodyContent.Blocks {
		if block.Type != "bundle" || len(block.Labels) == 0 {
			continue
		}

		bundle, err := parseHCLBundle(block)
		if err != nil {
			return nil, err
		}
		settings.Bundles[block.Labels[0]] = bundle
	}

	return settings, nil
}

func parseHCLBundle(block *hcl.Block) (BundleSettings, error) {
	var bundle BundleSettings

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return bundle, fmt.Errorf("bundle %q: %w", block.Labels[0], diags)
	}

	targets := map[string]*[]string{
		"include_groups":       &bundle.IncludeGroups,
		"include_dependencies": &bundle.IncludeDependencies,
		"includes":             &bundle.Includes,
		"include_globs":        &bundle.IncludeGlobs,
	}
	for name, attr := range attrs {
		target, known := targets[name]
		if !known {
			return bundle, fmt.Errorf("%s: unknown bundle attribute %q", attr.Range.String(), name)
		}

		values, err := stringList(attr)
		if err != nil {
			return bundle, err
		}
		*target = values
	}

	return bundle, nil
}

// stringList evaluates an attribute holding a list (or tuple) of strings.
func stringList(attr *hcl.Attribute) ([]string, error) {
	val, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() || val.IsNull() || !val.IsKnown() {
		return nil, fmt.Errorf("%s: %s must be a list of strings", attr.Range.String(), attr.Name)
	}
	if !val.Type().IsListType() && !val.Type().IsTupleType() && !val.Type().IsSetType() {
		return nil, fmt.Errorf("%s: %s must be a list of strings", attr.Range.String(), attr.Name)
	}

	var result []string
	for it := val.ElementIterator(); it.Next(); {
		_, element := it.Element()
		if element.IsNull() || element.Type() != cty.String {
			return nil, fmt.Errorf("%s: %s must be a list of strings", attr.Range.String(), attr.Name)
		}
		result = append(result, element.AsString())
	}
	return result, nil
}
