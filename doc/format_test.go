package doc

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/rugo-cmath/modules"
	_ "github.com/rubiojr/rugo-cmath/modules/cmath"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestFormatModule(t *testing.T) {
	g := newGoldie(t)
	for _, name := range []string{"cmath", "math"} {
		m, ok := modules.Get(name)
		require.True(t, ok, name)
		g.Assert(t, name+"_module", []byte(FormatModule(m)))
	}
}

func TestFormatAllModules(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "all_modules", []byte(FormatAllModules()))
}

func TestLookupSymbol(t *testing.T) {
	g := newGoldie(t)
	tests := []struct {
		query, golden string
	}{
		{"cmath.log", "cmath_log"},
		{"cmath.pi", "cmath_pi"},
		{"math.clamp", "math_clamp"},
	}
	for _, tt := range tests {
		out, err := Lookup(tt.query)
		require.NoError(t, err, tt.query)
		g.Assert(t, tt.golden, []byte(out))
	}
}

func TestLookupModule(t *testing.T) {
	m, _ := modules.Get("cmath")
	out, err := Lookup("cmath")
	require.NoError(t, err)
	assert.Equal(t, FormatModule(m), out)
}

func TestLookupErrors(t *testing.T) {
	_, err := Lookup("quaternion")
	assert.EqualError(t, err, `unknown module "quaternion"`)

	_, err = Lookup("cmath.gamma")
	assert.EqualError(t, err, `cmath: undefined function "gamma"`)
}

func TestSignature(t *testing.T) {
	tests := []struct {
		f    modules.FuncDef
		want string
	}{
		{modules.FuncDef{Name: "pi"}, "m.pi()"},
		{modules.FuncDef{Name: "sqrt", Args: []modules.ArgType{modules.Numeric}}, "m.sqrt(z)"},
		{modules.FuncDef{Name: "log", Args: []modules.ArgType{modules.Numeric}, Variadic: true}, "m.log(z, ...)"},
		{modules.FuncDef{Name: "pow", Args: []modules.ArgType{modules.Float, modules.Float}}, "m.pow(x1, x2)"},
		{modules.FuncDef{Name: "mix", Args: []modules.ArgType{modules.String, modules.Int, modules.Int, modules.Bool}}, "m.mix(s, n1, n2, b)"},
		{modules.FuncDef{Name: "echo", Args: []modules.ArgType{modules.Any}}, "m.echo(v)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Signature("m", tt.f))
	}
}

func TestFormatSymbolIndentsContinuationLines(t *testing.T) {
	assert.Equal(t, "m.f()\n    one\n    two\n", FormatSymbol("one\ntwo", "m.f()"))
	assert.Equal(t, "m.f()\n", FormatSymbol("", "m.f()"))
}
