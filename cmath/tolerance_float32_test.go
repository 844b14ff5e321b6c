//go:build cmath_float32

package cmath

const (
	identityTol = 1e-3
	kernelTol   = 1e-5
)
