package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/rubiojr/rugo-cmath/cmath"
)

const (
	colorReal    = "32"
	colorComplex = "36"
	colorSpecial = "33"
)

// colorEnabled reports whether results written to w get ANSI colors:
// never with --no-color or NO_COLOR, and only when w is a terminal.
func colorEnabled(noColor bool, w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func colorize(code, s string, useColor bool) string {
	if !useColor {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// FormatResult renders a module function result. Reals print in the
// shortest form that round-trips; NaN and infinities get their own color.
func FormatResult(v interface{}, useColor bool) string {
	switch val := v.(type) {
	case cmath.Complex:
		code := colorComplex
		if val.IsNaN() || val.IsInf() {
			code = colorSpecial
		}
		return colorize(code, val.String(), useColor)
	case float64:
		return formatReal(val, 64, useColor)
	case float32:
		return formatReal(float64(val), 32, useColor)
	case int:
		return colorize(colorReal, strconv.Itoa(val), useColor)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

func formatReal(f float64, bitSize int, useColor bool) string {
	code := colorReal
	if math.IsNaN(f) || math.IsInf(f, 0) {
		code = colorSpecial
	}
	return colorize(code, strconv.FormatFloat(f, 'g', -1, bitSize), useColor)
}
