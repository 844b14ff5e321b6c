package cmath

// Beyond this magnitude c*c±1 == c*c; below it c*c never overflows.
const asymptoticCutoff Float = 1e8

// Asinh returns the principal inverse hyperbolic sine of c.
func Asinh(c Complex) Complex {
	if fabs(c.Re) > asymptoticCutoff || fabs(c.Im) > asymptoticCutoff {
		if signbit(c.Re) {
			return Log(c.Neg()).AddReal(ln2).Neg()
		}
		return Log(c).AddReal(ln2)
	}
	return Log(c.Add(Sqrt(c.Mul(c).AddReal(1))))
}

// Acosh returns the principal inverse hyperbolic cosine of c. The real
// part of the result is never negative.
func Acosh(c Complex) Complex {
	if fabs(c.Re) > asymptoticCutoff || fabs(c.Im) > asymptoticCutoff {
		return Log(c).AddReal(ln2)
	}
	// sqrt(c+1)*sqrt(c-1), not sqrt(c*c-1): the product keeps the cut
	// on (-Inf, 1].
	w := Log(c.Add(Sqrt(c.AddReal(1)).Mul(Sqrt(c.SubReal(1)))))
	if w.Re < 0 {
		// |c+sqrt(c*c-1)| >= 1, only rounding gets below it
		w.Re = 0
	}
	return w
}

// Atanh returns the principal inverse hyperbolic tangent of c.
func Atanh(c Complex) Complex {
	return Log(c.AddReal(1).Divide(c.RSubReal(1))).Scale(0.5)
}

// Asin returns the principal inverse sine of c, computed as -i·asinh(i·c).
func Asin(c Complex) Complex {
	return rotateBack(Asinh(rotate(c)))
}

// Acos returns the principal inverse cosine of c, computed as -i·acosh(c).
// When the rotated result has a negative real part (sign bit set, so -0
// counts) the whole result is negated.
func Acos(c Complex) Complex {
	d := rotateBack(Acosh(c))
	if signbit(d.Re) {
		d = d.Neg()
	}
	return d
}

// Atan returns the principal inverse tangent of c, computed as
// -i·atanh(i·c).
func Atan(c Complex) Complex {
	return rotateBack(Atanh(rotate(c)))
}

// rotate returns i·c.
func rotate(c Complex) Complex {
	return Complex{-c.Im, c.Re}
}

// rotateBack returns -i·c.
func rotateBack(c Complex) Complex {
	return Complex{c.Im, -c.Re}
}
