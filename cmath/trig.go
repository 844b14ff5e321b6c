package cmath

// Sin returns the sine of c.
func Sin(c Complex) Complex {
	cx, sx := fcos(c.Re), fsin(c.Re)
	cy, sy := fcosh(c.Im), fsinh(c.Im)
	return Complex{sx * cy, cx * sy}
}

// Cos returns the cosine of c.
func Cos(c Complex) Complex {
	cx, sx := fcos(c.Re), fsin(c.Re)
	cy, sy := fcosh(c.Im), fsinh(c.Im)
	return Complex{cx * cy, -sx * sy}
}

// Tan returns the tangent of c. It is evaluated directly rather than as
// Sin/Cos; for large |Im(c)| the result saturates to (±0, ±1).
func Tan(c Complex) Complex {
	x, y := c.Re, c.Im
	cx, sx := fcos(x), fsin(x)

	switch ay := fabs(y); {
	case ay > tanCutoff1:
		// real part underflows
		return Complex{fcopysign(0, sx*cx), fcopysign(1, y)}
	case ay > tanCutoff2:
		// |sinh(y)| == cosh(y); cy*cy might overflow
		cy := fcosh(y)
		return Complex{sx * cx / cy / cy, fcopysign(1, y)}
	}

	cy, sy := fcosh(y), fsinh(y)
	d := cx*cx*cy*cy + sx*sx*sy*sy
	return Complex{sx * cx / d, sy * cy / d}
}
