//go:build !cmath_float32

package cmath

const (
	// relative tolerance for identities evaluated through several kernels
	identityTol = 1e-9
	// relative tolerance for single-kernel results
	kernelTol = 1e-14
)
