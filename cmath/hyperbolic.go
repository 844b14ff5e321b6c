package cmath

// Sinh returns the hyperbolic sine of c.
func Sinh(c Complex) Complex {
	cx, sx := fcosh(c.Re), fsinh(c.Re)
	cy, sy := fcos(c.Im), fsin(c.Im)
	return Complex{sx * cy, cx * sy}
}

// Cosh returns the hyperbolic cosine of c.
func Cosh(c Complex) Complex {
	x, y := c.Re, c.Im
	yBad := isNaN(y) || isInf(y)

	switch {
	case isNaN(x):
		if yBad {
			return Complex{nan(), nan()}
		}
		if y == 0 {
			return Complex{nan(), y}
		}
		return Complex{nan(), nan()}
	case isInf(x):
		if yBad {
			return Complex{inf(), nan()}
		}
		if y == 0 {
			if signbit(x) {
				return Complex{inf(), -y}
			}
			return Complex{inf(), y}
		}
		return Complex{inf() * fcos(y), x * fsin(y)}
	case yBad:
		if x == 0 {
			return Complex{nan(), 0}
		}
		return Complex{nan(), nan()}
	}

	cx, sx := fcosh(x), fsinh(x)
	cy, sy := fcos(y), fsin(y)
	return Complex{cx * cy, sx * sy}
}

// Tanh returns the hyperbolic tangent of c. For large |Re(c)| the result
// saturates to (±1, ±0).
func Tanh(c Complex) Complex {
	x, y := c.Re, c.Im
	cy, sy := fcos(y), fsin(y)

	switch ax := fabs(x); {
	case ax > tanCutoff1:
		// imaginary part underflows
		return Complex{fcopysign(1, x), fcopysign(0, sy*cy)}
	case ax > tanCutoff2:
		// |sinh(x)| == cosh(x); cx*cx might overflow
		cx := fcosh(x)
		return Complex{fcopysign(1, x), sy * cy / cx / cx}
	}

	cx, sx := fcosh(x), fsinh(x)
	d := cx*cx*cy*cy + sx*sx*sy*sy
	return Complex{sx * cx / d, sy * cy / d}
}
