package mathmod

import (
	"github.com/rubiojr/rugo-cmath/modules"
)

func init() {
	f := []modules.ArgType{modules.Float}
	ff := []modules.ArgType{modules.Float, modules.Float}

	modules.Register(&modules.Module{
		Name: "math",
		Type: "Math",
		Doc:  "Mathematical functions and constants.",
		Funcs: []modules.FuncDef{
			{Name: "abs", Args: f, Doc: "Return the absolute value of x."},
			{Name: "ceil", Args: f, Doc: "Round x up to the nearest integer."},
			{Name: "floor", Args: f, Doc: "Round x down to the nearest integer."},
			{Name: "round", Args: f, Doc: "Round x to the nearest integer."},
			{Name: "max", Args: ff, Doc: "Return the larger of x1 and x2."},
			{Name: "min", Args: ff, Doc: "Return the smaller of x1 and x2."},
			{Name: "pow", Args: ff, Doc: "Return x1 raised to the power of x2."},
			{Name: "hypot", Args: ff, Doc: "Return sqrt(x1*x1 + x2*x2) without undue overflow."},
			{Name: "exp", Args: f, Doc: "Return e raised to the power of x."},
			{Name: "sqrt", Args: f, Doc: "Return the square root of x."},
			{Name: "log", Args: f, Variadic: true, Doc: "Return the natural logarithm of x, or its logarithm in the base given as a second argument."},
			{Name: "log2", Args: f, Doc: "Return the base-2 logarithm of x."},
			{Name: "log10", Args: f, Doc: "Return the base-10 logarithm of x."},
			{Name: "sin", Args: f, Doc: "Return the sine of x (radians)."},
			{Name: "cos", Args: f, Doc: "Return the cosine of x (radians)."},
			{Name: "tan", Args: f, Doc: "Return the tangent of x (radians)."},
			{Name: "asin", Args: f, Doc: "Return the arc sine of x."},
			{Name: "acos", Args: f, Doc: "Return the arc cosine of x."},
			{Name: "atan", Args: f, Doc: "Return the arc tangent of x."},
			{Name: "atan2", Args: ff, Doc: "Return the arc tangent of x1/x2, using the signs of both to pick the quadrant."},
			{Name: "sinh", Args: f, Doc: "Return the hyperbolic sine of x."},
			{Name: "cosh", Args: f, Doc: "Return the hyperbolic cosine of x."},
			{Name: "tanh", Args: f, Doc: "Return the hyperbolic tangent of x."},
			{Name: "asinh", Args: f, Doc: "Return the inverse hyperbolic sine of x."},
			{Name: "acosh", Args: f, Doc: "Return the inverse hyperbolic cosine of x."},
			{Name: "atanh", Args: f, Doc: "Return the inverse hyperbolic tangent of x."},
			{Name: "pi", Doc: "Return the value of Pi."},
			{Name: "e", Doc: "Return the value of Euler's number (e)."},
			{Name: "inf", Doc: "Return positive infinity."},
			{Name: "nan", Doc: "Return NaN (not a number)."},
			{Name: "is_nan", Args: f, Doc: "Return true if x is NaN."},
			{Name: "is_inf", Args: f, Doc: "Return true if x is infinite."},
			{Name: "clamp", Args: []modules.ArgType{modules.Float, modules.Float, modules.Float}, Doc: "Clamp x1 between x2 and x3."},
			{Name: "random", Doc: "Return a random float in [0.0, 1.0)."},
			{Name: "random_int", Args: []modules.ArgType{modules.Int, modules.Int}, Doc: "Return a random integer in [n1, n2)."},
		},
		Receiver: &Math{},
	})
}
