package cmath

const (
	ln2  Float = 0.69314718055994530942
	ln10 Float = 2.30258509299404568402
)

// Exp returns e**c.
func Exp(c Complex) Complex {
	x, y := c.Re, c.Im

	if isNaN(x) {
		if y == 0 {
			return Complex{nan(), y}
		}
		return Complex{nan(), nan()}
	}
	switch {
	case x == inf():
		if isNaN(y) || isInf(y) {
			return Complex{inf(), nan()}
		} else if y == 0 {
			return c
		}
	case x == -inf():
		if isNaN(y) || isInf(y) {
			return Complex{0, fcopysign(0, y)}
		}
	}

	r := fexp(x)
	return Complex{r * fcos(y), r * fsin(y)}
}

// Log returns the principal natural logarithm of c. The branch cut runs
// along the negative real axis; the sign of a zero imaginary part picks
// the side.
func Log(c Complex) Complex {
	r := fhypot(c.Re, c.Im)
	t := fatan2(c.Im, c.Re)
	return Complex{flog(r), t}
}

// Log2 returns the principal base-2 logarithm of c.
func Log2(c Complex) Complex {
	return Log(c).Div(ln2)
}

// Log10 returns the principal base-10 logarithm of c.
func Log10(c Complex) Complex {
	return Log(c).Div(ln10)
}

// LogBase returns log(c) / log(base).
func LogBase(c, base Complex) Complex {
	return Log(c).Divide(Log(base))
}

// Sqrt returns the principal square root of c. The result always has a
// non-negative real part; on the negative real axis the sign of the
// imaginary zero selects the sign of the result.
func Sqrt(c Complex) Complex {
	x, y := c.Re, c.Im

	if y == 0 {
		switch {
		case isNaN(x):
			return Complex{x, x}
		case signbit(x):
			return Complex{0, fcopysign(fsqrt(-x), y)}
		default:
			return Complex{fsqrt(x), y}
		}
	}

	switch {
	case isInf(x) && isInf(y):
		return Complex{inf(), y}
	case isInf(x) && isNaN(y):
		if signbit(x) {
			return Complex{y, inf()}
		}
		return c
	case isInf(x):
		if signbit(x) {
			return Complex{0, fcopysign(inf(), y)}
		}
		return Complex{inf(), fcopysign(0, y)}
	case isInf(y):
		return Complex{inf(), y}
	}

	scale := fabs(x) > sqrtCutoff || fabs(y) > sqrtCutoff
	if scale {
		// hypot would overflow
		x /= 4
		y /= 4
	}
	r := fsqrt(fhypot(x, y))
	t := fatan2(y, x) / 2
	if scale {
		r *= 2
	}
	return Complex{r * fcos(t), r * fsin(t)}
}
