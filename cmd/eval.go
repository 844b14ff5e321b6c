package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rubiojr/rugo-cmath/cmath"
	"github.com/rubiojr/rugo-cmath/modules"
)

// ParseLiteral converts a command-line literal to the value handed to a
// module function: int, then float64, then cmath.Complex. "-0" is kept as
// a float so its sign survives.
func ParseLiteral(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && !(n == 0 && strings.HasPrefix(s, "-")) {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if c, err := strconv.ParseComplex(s, 128); err == nil {
		return cmath.Make(cmath.Float(real(c)), cmath.Float(imag(c))), nil
	}
	return nil, fmt.Errorf("invalid numeric literal %q", s)
}

// Eval evaluates a call expression: module.func(arg, ...). Arguments are
// literals or nested calls; an unqualified function belongs to cmath.
func Eval(expr string) (interface{}, error) {
	expr = strings.TrimSpace(expr)
	open := strings.IndexByte(expr, '(')
	if open <= 0 || !strings.HasSuffix(expr, ")") {
		return nil, fmt.Errorf("invalid expression %q: want module.func(args)", expr)
	}

	module, fn := defaultModule, strings.TrimSpace(expr[:open])
	if mod, name, ok := strings.Cut(fn, "."); ok {
		module, fn = mod, name
	}

	parts, err := splitArgs(expr[open+1 : len(expr)-1])
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", expr, err)
	}

	args := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		v, err := evalArg(p)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return modules.Call(module, fn, args...)
}

func evalArg(s string) (interface{}, error) {
	if v, err := ParseLiteral(s); err == nil {
		return v, nil
	}
	if strings.IndexByte(s, '(') > 0 {
		return Eval(s)
	}
	return ParseLiteral(s)
}

// splitArgs splits an argument list on commas outside parentheses.
func splitArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses")
	}
	parts = append(parts, strings.TrimSpace(s[start:]))

	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty argument")
		}
	}
	return parts, nil
}
