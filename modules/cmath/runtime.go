package cmathmod

import (
	"math"

	"github.com/rubiojr/rugo-cmath/cmath"
)

// --- cmath module ---

// CMath dispatches each call to a complex kernel or to its real
// counterpart. Methods panic with *TypeError on non-numeric arguments.
type CMath struct{}

// apply runs kernel when z is complex and realFn otherwise.
func apply(z interface{}, kernel func(cmath.Complex) cmath.Complex, realFn func(float64) float64) interface{} {
	re, im, isComplex, err := Classify(z)
	if err != nil {
		panic(err)
	}
	if isComplex {
		return kernel(NewComplex(re, im))
	}
	return cmath.Float(realFn(float64(re)))
}

// applyPromoting is apply for functions whose real form is undefined on
// negative reals: those are handed to the kernel as re+0i.
func applyPromoting(z interface{}, kernel func(cmath.Complex) cmath.Complex, realFn func(float64) float64) interface{} {
	re, im, isComplex, err := Classify(z)
	if err != nil {
		panic(err)
	}
	if isComplex || re < 0 {
		return kernel(NewComplex(re, im))
	}
	return cmath.Float(realFn(float64(re)))
}

func (*CMath) Exp(z interface{}) interface{} {
	return apply(z, cmath.Exp, math.Exp)
}

// Log takes an optional base. The result is complex when z or base is
// complex or negative; log(z)/log(base) then uses complex division.
func (*CMath) Log(z interface{}, base ...interface{}) interface{} {
	if len(base) > 1 {
		panic("takes 1 or 2 argument(s)")
	}
	re, im, isComplex, err := Classify(z)
	if err != nil {
		panic(err)
	}

	if len(base) == 0 {
		if isComplex || re < 0 {
			return cmath.Log(NewComplex(re, im))
		}
		return cmath.Float(math.Log(float64(re)))
	}

	bre, bim, baseComplex, err := Classify(base[0])
	if err != nil {
		panic(err)
	}
	if isComplex || re < 0 || baseComplex || bre < 0 {
		return cmath.LogBase(NewComplex(re, im), NewComplex(bre, bim))
	}
	return cmath.Float(math.Log(float64(re)) / math.Log(float64(bre)))
}

func (*CMath) Log2(z interface{}) interface{} {
	return applyPromoting(z, cmath.Log2, math.Log2)
}

func (*CMath) Log10(z interface{}) interface{} {
	return applyPromoting(z, cmath.Log10, math.Log10)
}

func (*CMath) Sqrt(z interface{}) interface{} {
	return applyPromoting(z, cmath.Sqrt, math.Sqrt)
}

func (*CMath) Sin(z interface{}) interface{} {
	return apply(z, cmath.Sin, math.Sin)
}

func (*CMath) Cos(z interface{}) interface{} {
	return apply(z, cmath.Cos, math.Cos)
}

func (*CMath) Tan(z interface{}) interface{} {
	return apply(z, cmath.Tan, math.Tan)
}

func (*CMath) Asin(z interface{}) interface{} {
	return apply(z, cmath.Asin, math.Asin)
}

func (*CMath) Acos(z interface{}) interface{} {
	return apply(z, cmath.Acos, math.Acos)
}

func (*CMath) Atan(z interface{}) interface{} {
	return apply(z, cmath.Atan, math.Atan)
}

func (*CMath) Sinh(z interface{}) interface{} {
	return apply(z, cmath.Sinh, math.Sinh)
}

func (*CMath) Cosh(z interface{}) interface{} {
	return apply(z, cmath.Cosh, math.Cosh)
}

func (*CMath) Tanh(z interface{}) interface{} {
	return apply(z, cmath.Tanh, math.Tanh)
}

func (*CMath) Asinh(z interface{}) interface{} {
	return apply(z, cmath.Asinh, math.Asinh)
}

func (*CMath) Acosh(z interface{}) interface{} {
	return apply(z, cmath.Acosh, math.Acosh)
}

func (*CMath) Atanh(z interface{}) interface{} {
	return apply(z, cmath.Atanh, math.Atanh)
}
