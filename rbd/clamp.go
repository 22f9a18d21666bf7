package rbd

// cap clamps x into the closed interval [0,1], per spec §4.1. Every scalar
// and vector result passes through this before being written to out.
func cap(x float64) float64 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	return x
}
