//go:build cmath_float32

package cmath

import "cogentcore.org/core/math32"

// Float is the floating-point precision every kernel computes in.
// This file is selected by the cmath_float32 build tag.
type Float = float32

// BitSize is the width of Float in bits.
const BitSize = 32

const (
	sqrtCutoff Float = 1e38

	tanCutoff1 Float = 53.0
	tanCutoff2 Float = 0x1.0a2b24p+3
)

func fabs(x Float) Float         { return math32.Abs(x) }
func fsqrt(x Float) Float        { return math32.Sqrt(x) }
func fexp(x Float) Float         { return math32.Exp(x) }
func flog(x Float) Float         { return math32.Log(x) }
func fhypot(x, y Float) Float    { return math32.Hypot(x, y) }
func fatan2(y, x Float) Float    { return math32.Atan2(y, x) }
func fsin(x Float) Float         { return math32.Sin(x) }
func fcos(x Float) Float         { return math32.Cos(x) }
func fsinh(x Float) Float        { return math32.Sinh(x) }
func fcosh(x Float) Float        { return math32.Cosh(x) }
func fcopysign(x, y Float) Float { return math32.Copysign(x, y) }
