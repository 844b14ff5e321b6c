package doc

import (
	"fmt"
	"strings"

	"github.com/rubiojr/rugo-cmath/modules"
)

// FormatSymbol formats a single symbol lookup result.
func FormatSymbol(docStr, signature string) string {
	var sb strings.Builder
	sb.WriteString(signature)
	sb.WriteString("\n")
	if docStr != "" {
		sb.WriteString("    ")
		sb.WriteString(strings.ReplaceAll(docStr, "\n", "\n    "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatModule formats a registered module for terminal display.
func FormatModule(m *modules.Module) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("module %s", m.Name))
	sb.WriteString("\n")
	if m.Doc != "" {
		sb.WriteString("    ")
		sb.WriteString(m.Doc)
		sb.WriteString("\n")
	}
	if len(m.Includes) > 0 {
		sb.WriteString("    includes: ")
		sb.WriteString(strings.Join(m.Includes, ", "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, f := range m.Funcs {
		sb.WriteString(Signature(m.Name, f))
		sb.WriteString("\n")
		if f.Doc != "" {
			sb.WriteString("    ")
			sb.WriteString(f.Doc)
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// FormatAllModules lists all registered modules.
func FormatAllModules() string {
	var sb strings.Builder

	sb.WriteString("Modules:\n")
	for _, name := range modules.Names() {
		m, _ := modules.Get(name)
		line := fmt.Sprintf("  %-12s", name)
		if m.Doc != "" {
			line += " " + m.Doc
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// paramNames maps an argument type to the name used in signatures.
var paramNames = map[modules.ArgType]string{
	modules.String:  "s",
	modules.Int:     "n",
	modules.Float:   "x",
	modules.Bool:    "b",
	modules.Any:     "v",
	modules.Numeric: "z",
}

// Signature renders "module.func(params)". A parameter type that occurs
// more than once is numbered: math.pow(x1, x2).
func Signature(modName string, f modules.FuncDef) string {
	counts := make(map[modules.ArgType]int)
	for _, a := range f.Args {
		counts[a]++
	}

	seen := make(map[modules.ArgType]int)
	params := make([]string, 0, len(f.Args)+1)
	for _, a := range f.Args {
		name := paramNames[a]
		if counts[a] > 1 {
			seen[a]++
			name = fmt.Sprintf("%s%d", name, seen[a])
		}
		params = append(params, name)
	}
	if f.Variadic {
		params = append(params, "...")
	}
	return fmt.Sprintf("%s.%s(%s)", modName, f.Name, strings.Join(params, ", "))
}
