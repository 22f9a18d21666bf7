//go:build arm64

package rbd

import "golang.org/x/sys/cpu"

// sse2Supported is always false on arm64.
func sse2Supported() bool { return false }

// avxSupported is always false on arm64.
func avxSupported() bool { return false }

// fma3Supported is always false on arm64.
func fma3Supported() bool { return false }

// avx512fSupported is always false on arm64.
func avx512fSupported() bool { return false }

// neonSupported reports ARM NEON (ASIMD) availability; part of the ARMv8-A
// base architecture, so this is always true in practice.
func neonSupported() bool {
	return cpu.ARM64.HasASIMD
}

// sveSupported reports ARM SVE (Scalable Vector Extension) availability.
func sveSupported() bool {
	return cpu.ARM64.HasSVE
}

// vsxSupported is always false on arm64.
func vsxSupported() bool { return false }

// rvvSupported is always false on arm64.
func rvvSupported() bool { return false }

// detectTier consults the CPU-feature oracles in decreasing-capability
// order, per spec §4.3: SVE -> NEON -> scalar.
func detectTier() Tier {
	switch {
	case sveSupported():
		return TierScalable
	case neonSupported():
		return TierWidth2
	default:
		return TierScalar
	}
}
