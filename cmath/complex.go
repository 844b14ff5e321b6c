// Package cmath implements the elementary complex functions with C99
// Annex G special values and principal branch cuts.
//
// Kernels operate on Complex, a plain pair of Float components, and are pure:
// they never fail and propagate NaN and infinities as data.
package cmath

import (
	"math"
	"strconv"
)

// Complex is a complex number made of two Float components.
type Complex struct {
	Re Float
	Im Float
}

// Make returns re + im·i.
func Make(re, im Float) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns the real part of c.
func (c Complex) Real() Float { return c.Re }

// Imag returns the imaginary part of c.
func (c Complex) Imag() Float { return c.Im }

// Add returns c + d.
func (c Complex) Add(d Complex) Complex {
	return Complex{c.Re + d.Re, c.Im + d.Im}
}

// Sub returns c - d.
func (c Complex) Sub(d Complex) Complex {
	return Complex{c.Re - d.Re, c.Im - d.Im}
}

// Mul returns c · d.
func (c Complex) Mul(d Complex) Complex {
	return Complex{c.Re*d.Re - c.Im*d.Im, c.Re*d.Im + c.Im*d.Re}
}

// Neg returns -c, negating both components.
func (c Complex) Neg() Complex {
	return Complex{-c.Re, -c.Im}
}

// Scale multiplies both components by k.
func (c Complex) Scale(k Float) Complex {
	return Complex{c.Re * k, c.Im * k}
}

// Div divides both components by k.
func (c Complex) Div(k Float) Complex {
	return Complex{c.Re / k, c.Im / k}
}

// AddReal returns c + k. The imaginary part is left untouched, so a
// negative zero survives.
func (c Complex) AddReal(k Float) Complex {
	return Complex{c.Re + k, c.Im}
}

// SubReal returns c - k with the imaginary part untouched.
func (c Complex) SubReal(k Float) Complex {
	return Complex{c.Re - k, c.Im}
}

// RSubReal returns k - c. The imaginary part is negated rather than
// subtracted from zero: 1 - (x+0i) is (1-x) - 0i.
func (c Complex) RSubReal(k Float) Complex {
	return Complex{k - c.Re, -c.Im}
}

// Divide returns c / d using Smith's algorithm. The numerator is scaled by
// the reciprocal of the larger-magnitude component of d before anything is
// multiplied, so |d|² is never formed.
func (c Complex) Divide(d Complex) Complex {
	if d.Re == 0 && d.Im == 0 && !c.isZero() && !c.IsNaN() {
		// C99 G.5.1: non-zero over zero is an infinity.
		s := fcopysign(inf(), d.Re)
		return Complex{s * c.Re, s * c.Im}
	}
	if fabs(d.Re) >= fabs(d.Im) {
		ratio := d.Im / d.Re
		den := 1 + ratio*ratio
		a := c.Re / d.Re
		b := c.Im / d.Re
		return Complex{(a + b*ratio) / den, (b - a*ratio) / den}
	}
	ratio := d.Re / d.Im
	den := 1 + ratio*ratio
	a := c.Re / d.Im
	b := c.Im / d.Im
	return Complex{(a*ratio + b) / den, (b*ratio - a) / den}
}

// IsNaN reports whether either component is NaN and neither is infinite.
func (c Complex) IsNaN() bool {
	switch {
	case isInf(c.Re) || isInf(c.Im):
		return false
	case isNaN(c.Re) || isNaN(c.Im):
		return true
	}
	return false
}

// IsInf reports whether either component is infinite.
func (c Complex) IsInf() bool {
	return isInf(c.Re) || isInf(c.Im)
}

func (c Complex) isZero() bool {
	return c.Re == 0 && c.Im == 0
}

// String formats c as "(re+imi)", keeping the sign of zeros: "(0-0i)".
func (c Complex) String() string {
	im := formatFloat(c.Im)
	if im[0] != '-' && im[0] != '+' {
		im = "+" + im
	}
	return "(" + formatFloat(c.Re) + im + "i)"
}

func formatFloat(x Float) string {
	return strconv.FormatFloat(float64(x), 'g', -1, BitSize)
}

func isNaN(x Float) bool { return x != x }

// isInf holds for ±Inf only: Inf-Inf is NaN, any finite x-x is 0.
func isInf(x Float) bool { return !isNaN(x) && isNaN(x-x) }

func signbit(x Float) bool { return math.Signbit(float64(x)) }

func inf() Float { return Float(math.Inf(1)) }

func nan() Float { return Float(math.NaN()) }
