package cmathmod

import (
	"fmt"

	"github.com/rubiojr/rugo-cmath/cmath"
)

// TypeError reports a non-numeric argument.
type TypeError struct {
	Value interface{}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("Numeric required (got %T)", e.Value)
}

// Classify splits a numeric value into its real and imaginary parts.
// isComplex is true only when v already was a complex value; integers and
// floats come back with a zero imaginary part.
func Classify(v interface{}) (re, im cmath.Float, isComplex bool, err error) {
	switch val := v.(type) {
	case int:
		return cmath.Float(val), 0, false, nil
	case int64:
		return cmath.Float(val), 0, false, nil
	case float64:
		return cmath.Float(val), 0, false, nil
	case float32:
		return cmath.Float(val), 0, false, nil
	case cmath.Complex:
		return val.Re, val.Im, true, nil
	case complex128:
		return cmath.Float(real(val)), cmath.Float(imag(val)), true, nil
	case complex64:
		return cmath.Float(real(val)), cmath.Float(imag(val)), true, nil
	default:
		return 0, 0, false, &TypeError{Value: v}
	}
}

// NewComplex wraps a pair of parts into the complex value handed back to
// callers.
func NewComplex(re, im cmath.Float) cmath.Complex {
	return cmath.Make(re, im)
}
