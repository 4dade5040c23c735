// Package hclconf loads the optional buildstamp settings file. The file is
// plain HCL with two blocks: an `output` block supplying defaults for the
// output directory and dialect (explicit flags win), and a `constants` block
// whose attributes become extra constants in the generated artifact.
//
//	output {
//	  path = "build"
//	  type = "C++"
//	}
//
//	constants {
//	  product       = "frobnicator"
//	  release_major = 3
//	}
package hclconf

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/buildstamp/internal/ctxlog"
	"github.com/vk/buildstamp/internal/emit"
)

// Settings is the decoded content of a settings file.
type Settings struct {
	// OutputPath is the default output directory, empty when not set.
	OutputPath string
	// OutputType is the default dialect token, empty when not set.
	OutputType string
	// Constants are the extra emitted constants, sorted by name so the
	// rendered artifact is deterministic.
	Constants []emit.Constant
}

// fileRoot decodes the top-level blocks of a settings file.
type fileRoot struct {
	Output    *outputBlock    `hcl:"output,block"`
	Constants *constantsBlock `hcl:"constants,block"`
	Remain    hcl.Body        `hcl:",remain"`
}

type outputBlock struct {
	Path string `hcl:"path,optional"`
	Type string `hcl:"type,optional"`
}

// constantsBlock keeps its body undecoded; the attribute set is free-form.
type constantsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Loader is the HCL implementation of the app's settings loader.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses and decodes the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	settings := &Settings{}
	if root.Output != nil {
		settings.OutputPath = root.Output.Path
		settings.OutputType = root.Output.Type
	}

	if root.Constants != nil {
		constants, err := decodeConstants(root.Constants.Body)
		if err != nil {
			return nil, fmt.Errorf("invalid constants in settings file %s: %w", path, err)
		}
		settings.Constants = constants
	}

	logger.Debug("Settings file loaded.", "path", path, "constants", len(settings.Constants))
	return settings, nil
}

// decodeConstants turns the free-form attribute set of a constants block into
// typed emit constants. Only strings, integer numbers and bools are legal.
func decodeConstants(body hcl.Body) ([]emit.Constant, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	constants := make([]emit.Constant, 0, len(attrs))
	for _, name := range names {
		val, valDiags := attrs[name].Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, valDiags
		}

		switch val.Type() {
		case cty.String:
			constants = append(constants, emit.Constant{Name: name, Value: val.AsString()})
		case cty.Number:
			var n int64
			if err := gocty.FromCtyValue(val, &n); err != nil {
				return nil, fmt.Errorf("constant %q must be an integer: %w", name, err)
			}
			constants = append(constants, emit.Constant{Name: name, Value: n})
		case cty.Bool:
			constants = append(constants, emit.Constant{Name: name, Value: val.True()})
		default:
			return nil, fmt.Errorf("constant %q has unsupported type %s (expected string, number or bool)", name, val.Type().FriendlyName())
		}
	}

	return constants, nil
}
