// Package doc renders the module registry for the doc command.
package doc

import (
	"fmt"
	"strings"

	"github.com/rubiojr/rugo-cmath/modules"
)

// Lookup resolves a documentation query. query is a module name
// ("cmath") or a qualified function ("cmath.sqrt"); functions reached
// through an included module are reported under the module that defines
// them.
func Lookup(query string) (string, error) {
	modName, funcName, qualified := strings.Cut(query, ".")
	m, ok := modules.Get(modName)
	if !ok {
		return "", fmt.Errorf("unknown module %q", modName)
	}
	if !qualified {
		return FormatModule(m), nil
	}

	docStr, signature, found := LookupSymbol(modName, funcName)
	if !found {
		return "", fmt.Errorf("%s: undefined function %q", modName, funcName)
	}
	return FormatSymbol(docStr, signature), nil
}

// LookupSymbol finds a function by name in a module or its includes.
func LookupSymbol(modName, name string) (doc string, signature string, found bool) {
	owner, f, ok := modules.LookupFunc(modName, name)
	if !ok {
		return "", "", false
	}
	return f.Doc, Signature(owner.Name, f), true
}
