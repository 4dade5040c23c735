package emit

import (
	"fmt"
	"strings"
	"unicode"
)

// renderC produces a classic C header: an include guard, a numeric macro and
// its quoted string twin.
func renderC(build uint32, extras []Constant) string {
	var b strings.Builder
	b.WriteString("#ifndef BUILD_NO_H\n")
	b.WriteString("#define BUILD_NO_H\n\n")
	fmt.Fprintf(&b, "#define BUILD_NO %d\n", build)
	fmt.Fprintf(&b, "#define BUILD_NO_STR \"%d\"\n", build)
	for _, c := range extras {
		fmt.Fprintf(&b, "#define %s %s\n", macroName(c.Name), cLiteral(c.Value))
	}
	b.WriteString("\n#endif /* BUILD_NO_H */\n")
	return b.String()
}

// renderCPlusPlus produces a C++ header with fixed-width typed constants.
func renderCPlusPlus(build uint32, extras []Constant) string {
	var b strings.Builder
	b.WriteString("#ifndef BUILD_NO_HPP\n")
	b.WriteString("#define BUILD_NO_HPP\n\n")
	b.WriteString("#include <cstdint>\n\n")
	fmt.Fprintf(&b, "constexpr std::uint32_t kBuildNo = %dU;\n", build)
	fmt.Fprintf(&b, "constexpr char kBuildNoStr[] = \"%d\";\n", build)
	for _, c := range extras {
		switch v := c.Value.(type) {
		case string:
			fmt.Fprintf(&b, "constexpr char k%s[] = %q;\n", pascalName(c.Name), v)
		case int64:
			fmt.Fprintf(&b, "constexpr std::int64_t k%s = %d;\n", pascalName(c.Name), v)
		case bool:
			fmt.Fprintf(&b, "constexpr bool k%s = %t;\n", pascalName(c.Name), v)
		}
	}
	b.WriteString("\n#endif /* BUILD_NO_HPP */\n")
	return b.String()
}

// renderCSharp produces a static container class with public constants.
func renderCSharp(build uint32, extras []Constant) string {
	var b strings.Builder
	b.WriteString("namespace Build\n{\n")
	b.WriteString("    public static class BuildNo\n    {\n")
	fmt.Fprintf(&b, "        public const uint Number = %d;\n", build)
	fmt.Fprintf(&b, "        public const string NumberString = \"%d\";\n", build)
	for _, c := range extras {
		switch v := c.Value.(type) {
		case string:
			fmt.Fprintf(&b, "        public const string %s = %q;\n", pascalName(c.Name), v)
		case int64:
			fmt.Fprintf(&b, "        public const long %s = %d;\n", pascalName(c.Name), v)
		case bool:
			fmt.Fprintf(&b, "        public const bool %s = %t;\n", pascalName(c.Name), v)
		}
	}
	b.WriteString("    }\n}\n")
	return b.String()
}

// cLiteral renders a constant value as a C preprocessor token. Booleans
// become 1/0 so the macro stays usable in #if checks.
func cLiteral(value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

// macroName converts a settings identifier into an upper-snake macro name:
// "release_major" -> "RELEASE_MAJOR".
func macroName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// pascalName converts a settings identifier into PascalCase:
// "release_major" -> "ReleaseMajor".
func pascalName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
