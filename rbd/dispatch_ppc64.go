//go:build ppc64 || ppc64le

package rbd

import "golang.org/x/sys/cpu"

func sse2Supported() bool    { return false }
func avxSupported() bool     { return false }
func fma3Supported() bool    { return false }
func avx512fSupported() bool { return false }
func neonSupported() bool    { return false }
func rvvSupported() bool     { return false }

// vsxSupported reports POWER8+ VSX (Vector-Scalar eXtension) availability.
func vsxSupported() bool {
	return cpu.PPC64.HasVSX
}

// detectTier consults the CPU-feature oracle for power8: VSX -> scalar.
func detectTier() Tier {
	if vsxSupported() {
		return TierWidth2
	}
	return TierScalar
}
