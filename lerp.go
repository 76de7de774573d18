// Package mathutils holds small float helpers shared by the client UI.
package mathutils

import "golang.org/x/exp/constraints"

// Lerp returns v0 + t*(v1-v0). t is not clamped, so values outside [0, 1]
// extrapolate.
func Lerp[T constraints.Float](v0, v1, t T) T {
	// Explicit conversion: no fused multiply-add.
	return v0 + T(t*(v1-v0))
}

func LerpFloat(v0, v1, t float64) float64 {
	return Lerp(v0, v1, t)
}
