package mathmod

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rubiojr/rugo-cmath/modules"
)

// --- math module ---

// Math holds the real-valued functions. Out-of-domain arguments yield NaN
// (sqrt(-1), log(-2)); the cmath module promotes those to complex instead.
type Math struct{}

func (*Math) Abs(n float64) interface{} {
	return math.Abs(n)
}

func (*Math) Ceil(n float64) interface{} {
	return int(math.Ceil(n))
}

func (*Math) Floor(n float64) interface{} {
	return int(math.Floor(n))
}

func (*Math) Round(n float64) interface{} {
	return int(math.Round(n))
}

func (*Math) Max(a, b float64) interface{} {
	return math.Max(a, b)
}

func (*Math) Min(a, b float64) interface{} {
	return math.Min(a, b)
}

func (*Math) Pow(base, exp float64) interface{} {
	return math.Pow(base, exp)
}

func (*Math) Hypot(a, b float64) interface{} {
	return math.Hypot(a, b)
}

func (*Math) Exp(n float64) interface{} {
	return math.Exp(n)
}

func (*Math) Sqrt(n float64) interface{} {
	return math.Sqrt(n)
}

// Log takes an optional base as its second argument.
func (*Math) Log(n float64, base ...interface{}) interface{} {
	switch len(base) {
	case 0:
		return math.Log(n)
	case 1:
		return math.Log(n) / math.Log(modules.ToFloat(base[0]))
	default:
		panic("takes 1 or 2 argument(s)")
	}
}

func (*Math) Log2(n float64) interface{} {
	return math.Log2(n)
}

func (*Math) Log10(n float64) interface{} {
	return math.Log10(n)
}

func (*Math) Sin(n float64) interface{} {
	return math.Sin(n)
}

func (*Math) Cos(n float64) interface{} {
	return math.Cos(n)
}

func (*Math) Tan(n float64) interface{} {
	return math.Tan(n)
}

func (*Math) Asin(n float64) interface{} {
	return math.Asin(n)
}

func (*Math) Acos(n float64) interface{} {
	return math.Acos(n)
}

func (*Math) Atan(n float64) interface{} {
	return math.Atan(n)
}

func (*Math) Atan2(y, x float64) interface{} {
	return math.Atan2(y, x)
}

func (*Math) Sinh(n float64) interface{} {
	return math.Sinh(n)
}

func (*Math) Cosh(n float64) interface{} {
	return math.Cosh(n)
}

func (*Math) Tanh(n float64) interface{} {
	return math.Tanh(n)
}

func (*Math) Asinh(n float64) interface{} {
	return math.Asinh(n)
}

func (*Math) Acosh(n float64) interface{} {
	return math.Acosh(n)
}

func (*Math) Atanh(n float64) interface{} {
	return math.Atanh(n)
}

func (*Math) Pi() interface{} {
	return math.Pi
}

func (*Math) E() interface{} {
	return math.E
}

func (*Math) Inf() interface{} {
	return math.Inf(1)
}

func (*Math) Nan() interface{} {
	return math.NaN()
}

func (*Math) IsNan(n float64) interface{} {
	return math.IsNaN(n)
}

func (*Math) IsInf(n float64) interface{} {
	return math.IsInf(n, 0)
}

func (*Math) Clamp(n, min, max float64) interface{} {
	return math.Max(min, math.Min(max, n))
}

func (*Math) Random() interface{} {
	return rand.Float64()
}

func (*Math) RandomInt(min, max int) interface{} {
	if max <= min {
		panic(fmt.Sprintf("max (%d) must be greater than min (%d)", max, min))
	}
	return rand.Intn(max-min) + min
}
