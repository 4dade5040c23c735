// Package dialect maps the user-requested output type token onto one of the
// supported source-code dialects and the artifact file name it produces.
// Selection is a pure function; no file system access happens here.
package dialect

import "fmt"

// Dialect identifies a supported output source-code style.
type Dialect int

const (
	// Invalid is the zero value and never matches a legal type token.
	Invalid Dialect = iota
	C
	CPlusPlus
	CSharp
)

// String returns the canonical type token for the dialect.
func (d Dialect) String() string {
	switch d {
	case C:
		return "C"
	case CPlusPlus:
		return "C++"
	case CSharp:
		return "C#"
	default:
		return "invalid"
	}
}

// baseName is the shared prefix of every generated artifact file name.
const baseName = "build_no."

// OutputSpec describes the emission target derived from a type token.
type OutputSpec struct {
	Dialect  Dialect
	FileName string
}

// Select maps a requested type token onto an OutputSpec. The three legal
// tokens are the literal strings "C", "C++" and "C#" (case-sensitive); any
// other token is an unsupported output type and emission must not proceed.
func Select(token string) (OutputSpec, error) {
	switch token {
	case "C":
		return OutputSpec{Dialect: C, FileName: baseName + "h"}, nil
	case "C++":
		return OutputSpec{Dialect: CPlusPlus, FileName: baseName + "hpp"}, nil
	case "C#":
		return OutputSpec{Dialect: CSharp, FileName: baseName + "cs"}, nil
	default:
		return OutputSpec{}, fmt.Errorf("unsupported output type %q (expected \"C\", \"C++\" or \"C#\")", token)
	}
}
