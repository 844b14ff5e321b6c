package cmathmod

import (
	"github.com/rubiojr/rugo-cmath/modules"
	_ "github.com/rubiojr/rugo-cmath/modules/math"
)

func init() {
	z := []modules.ArgType{modules.Numeric}

	modules.Register(&modules.Module{
		Name:     "cmath",
		Type:     "CMath",
		Doc:      "Math functions that accept complex numbers; real arguments stay real unless the result is complex.",
		Includes: []string{"math"},
		Funcs: []modules.FuncDef{
			{Name: "exp", Args: z, Doc: "Return e raised to the power of z."},
			{Name: "log", Args: z, Variadic: true, Doc: "Return the natural logarithm of z, or its logarithm in the base given as a second argument. Branch cut along the negative real axis."},
			{Name: "log2", Args: z, Doc: "Return the base-2 logarithm of z. Branch cut along the negative real axis."},
			{Name: "log10", Args: z, Doc: "Return the base-10 logarithm of z. Branch cut along the negative real axis."},
			{Name: "sqrt", Args: z, Doc: "Return the principal square root of z."},
			{Name: "sin", Args: z, Doc: "Return the sine of z."},
			{Name: "cos", Args: z, Doc: "Return the cosine of z."},
			{Name: "tan", Args: z, Doc: "Return the tangent of z."},
			{Name: "asin", Args: z, Doc: "Return the arc sine of z."},
			{Name: "acos", Args: z, Doc: "Return the arc cosine of z."},
			{Name: "atan", Args: z, Doc: "Return the arc tangent of z."},
			{Name: "sinh", Args: z, Doc: "Return the hyperbolic sine of z."},
			{Name: "cosh", Args: z, Doc: "Return the hyperbolic cosine of z."},
			{Name: "tanh", Args: z, Doc: "Return the hyperbolic tangent of z."},
			{Name: "asinh", Args: z, Doc: "Return the inverse hyperbolic sine of z."},
			{Name: "acosh", Args: z, Doc: "Return the inverse hyperbolic cosine of z."},
			{Name: "atanh", Args: z, Doc: "Return the inverse hyperbolic tangent of z."},
		},
		Receiver: &CMath{},
	})
}
