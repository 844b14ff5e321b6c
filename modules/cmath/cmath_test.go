package cmathmod

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/rugo-cmath/cmath"
	"github.com/rubiojr/rugo-cmath/modules"
)

func TestModuleRegistration(t *testing.T) {
	m, ok := modules.Get("cmath")
	require.True(t, ok, "cmath module should be registered")
	assert.Equal(t, "CMath", m.Type)
	assert.Equal(t, []string{"math"}, m.Includes)
	assert.Len(t, m.Funcs, 17)

	funcNames := make(map[string]bool)
	for _, f := range m.Funcs {
		funcNames[f.Name] = true
		assert.NotEmpty(t, f.Doc, "missing doc: %s", f.Name)
	}
	for _, name := range []string{"exp", "log", "log2", "log10", "sqrt", "sin", "cos", "tan", "asin", "acos", "atan", "sinh", "cosh", "tanh", "asinh", "acosh", "atanh"} {
		assert.True(t, funcNames[name], "missing function: %s", name)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in        interface{}
		re, im    cmath.Float
		isComplex bool
	}{
		{3, 3, 0, false},
		{int64(-2), -2, 0, false},
		{2.5, 2.5, 0, false},
		{float32(0.5), 0.5, 0, false},
		{cmath.Make(1, -2), 1, -2, true},
		{complex(3, 4), 3, 4, true},
		{complex64(complex(-1, 1)), -1, 1, true},
	}
	for _, tt := range tests {
		re, im, isComplex, err := Classify(tt.in)
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.re, re, "%v", tt.in)
		assert.Equal(t, tt.im, im, "%v", tt.in)
		assert.Equal(t, tt.isComplex, isComplex, "%v", tt.in)
	}
}

func TestClassifyRejectsNonNumeric(t *testing.T) {
	for _, v := range []interface{}{"1", nil, true, []int{1}} {
		_, _, _, err := Classify(v)
		var te *TypeError
		require.ErrorAs(t, err, &te, "%v", v)
		assert.Contains(t, err.Error(), "Numeric required")
	}
}

func TestRealArgumentsStayReal(t *testing.T) {
	c := &CMath{}

	assert.Equal(t, cmath.Float(2), c.Sqrt(4))
	assert.Equal(t, cmath.Float(math.Sqrt(2)), c.Sqrt(2.0))
	assert.Equal(t, cmath.Float(math.Sin(1)), c.Sin(1))
	assert.Equal(t, cmath.Float(math.Exp(2)), c.Exp(2))
	assert.Equal(t, cmath.Float(math.Log10(1000)), c.Log10(1000))

	// asin is not promoted: out of domain stays NaN
	got, ok := c.Asin(2).(cmath.Float)
	require.True(t, ok)
	assert.True(t, math.IsNaN(float64(got)))
}

func TestNegativeRealsPromote(t *testing.T) {
	c := &CMath{}

	assert.Equal(t, cmath.Make(0, 2), c.Sqrt(-4))
	assert.Equal(t, cmath.Make(0, 1), c.Sqrt(-1.0))
	assert.Equal(t, cmath.Log(cmath.Make(-2, 0)), c.Log(-2))
	assert.Equal(t, cmath.Log2(cmath.Make(-8, 0)), c.Log2(-8))
	assert.Equal(t, cmath.Log10(cmath.Make(-1, 0)), c.Log10(-1))
}

func TestComplexArgumentsUseKernels(t *testing.T) {
	c := &CMath{}
	z := cmath.Make(0.5, -1.5)

	assert.Equal(t, cmath.Exp(z), c.Exp(z))
	assert.Equal(t, cmath.Tan(z), c.Tan(z))
	assert.Equal(t, cmath.Acos(z), c.Acos(z))
	assert.Equal(t, cmath.Atanh(z), c.Atanh(z))

	// a complex with zero imaginary part still goes to the kernel
	assert.Equal(t, cmath.Make(0, -2), c.Sqrt(cmath.Make(-4, cmath.Float(math.Copysign(0, -1)))))
	assert.Equal(t, cmath.Sqrt(cmath.Make(4, 0)), c.Sqrt(complex(4, 0)))
}

func TestLogWithBase(t *testing.T) {
	c := &CMath{}

	got, ok := c.Log(8, 2).(cmath.Float)
	require.True(t, ok, "log(8, 2) should stay real")
	assert.InDelta(t, 3.0, float64(got), 1e-12)

	want := cmath.Log(cmath.Make(-8, 0)).Divide(cmath.Log(cmath.Make(2, 0)))
	assert.Equal(t, want, c.Log(-8, 2))

	// a negative base makes the divisor complex
	want = cmath.Log(cmath.Make(8, 0)).Divide(cmath.Log(cmath.Make(-2, 0)))
	assert.Equal(t, want, c.Log(8, -2))

	z := cmath.Make(1, 1)
	want = cmath.Log(z).Divide(cmath.Log(cmath.Make(10, 0)))
	assert.Equal(t, want, c.Log(z, 10))
}

func TestMethodsPanicOnTypeError(t *testing.T) {
	c := &CMath{}
	assert.Panics(t, func() { c.Sqrt("x") })
	assert.Panics(t, func() { c.Sin(nil) })
	assert.Panics(t, func() { c.Log(1, "e") })
	assert.Panics(t, func() { c.Log(1, 2, 3) })
}

func TestCallThroughRegistry(t *testing.T) {
	got, err := modules.Call("cmath", "sqrt", -4)
	require.NoError(t, err)
	assert.Equal(t, cmath.Make(0, 2), got)

	got, err = modules.Call("cmath", "log", 8, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, float64(got.(cmath.Float)), 1e-12)

	// math functions are reachable through cmath
	got, err = modules.Call("cmath", "pi")
	require.NoError(t, err)
	assert.Equal(t, math.Pi, got)

	_, err = modules.Call("cmath", "sqrt", "four")
	require.Error(t, err)
	var te *TypeError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, "cmath.sqrt: Numeric required (got string)", err.Error())

	_, err = modules.Call("cmath", "sqrt")
	assert.EqualError(t, err, "cmath.sqrt: requires at least 1 argument(s)")

	_, err = modules.Call("cmath", "sin", 1, 2)
	assert.EqualError(t, err, "cmath.sin: takes 1 argument(s), got 2")

	_, err = modules.Call("cmath", "log", 1, 2, 3)
	assert.EqualError(t, err, "cmath.log: takes 1 or 2 argument(s)")
}

func TestConcurrentCalls(t *testing.T) {
	want := cmath.Acos(cmath.Make(2, -3))

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := modules.Call("cmath", "acos", cmath.Make(2, -3))
			if err != nil {
				errs <- err
				return
			}
			if got != want {
				errs <- errors.New("acos result differs between goroutines")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
