//go:build !cmath_float32

package cmath

import "math"

// Float is the floating-point precision every kernel computes in.
// Build with -tags cmath_float32 for single precision.
type Float = float64

// BitSize is the width of Float in bits.
const BitSize = 64

const (
	// Above this magnitude hypot may overflow; sqrt scales its input by 1/4.
	sqrtCutoff Float = 1e308

	// |Im| (tan) or |Re| (tanh) above which the small component is zero.
	tanCutoff1 Float = 373.0
	// |Im| (tan) or |Re| (tanh) above which |sinh| == cosh.
	tanCutoff2 Float = 0x1.3001004048044p+4
)

func fabs(x Float) Float         { return math.Abs(x) }
func fsqrt(x Float) Float        { return math.Sqrt(x) }
func fexp(x Float) Float         { return math.Exp(x) }
func flog(x Float) Float         { return math.Log(x) }
func fhypot(x, y Float) Float    { return math.Hypot(x, y) }
func fatan2(y, x Float) Float    { return math.Atan2(y, x) }
func fsin(x Float) Float         { return math.Sin(x) }
func fcos(x Float) Float         { return math.Cos(x) }
func fsinh(x Float) Float        { return math.Sinh(x) }
func fcosh(x Float) Float        { return math.Cosh(x) }
func fcopysign(x, y Float) Float { return math.Copysign(x, y) }
