//go:build amd64

package rbd

import "golang.org/x/sys/cpu"

// sse2Supported reports SSE2 availability. SSE2 is baseline on amd64.
func sse2Supported() bool {
	return true
}

// avxSupported reports AVX availability.
func avxSupported() bool {
	return cpu.X86.HasAVX
}

// fma3Supported reports FMA3 availability (requires AVX2 + FMA).
func fma3Supported() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}

// avx512fSupported reports AVX-512 Foundation availability.
func avx512fSupported() bool {
	return cpu.X86.HasAVX512F
}

// neonSupported is always false on amd64.
func neonSupported() bool { return false }

// vsxSupported is always false on amd64.
func vsxSupported() bool { return false }

// rvvSupported is always false on amd64.
func rvvSupported() bool { return false }

// detectTier consults the CPU-feature oracles in decreasing-capability
// order, per spec §4.3: AVX-512 -> FMA3 -> AVX -> SSE2 -> scalar.
func detectTier() Tier {
	switch {
	case avx512fSupported():
		return TierWidth8
	case fma3Supported():
		return TierWidth8
	case avxSupported():
		return TierWidth4
	case sse2Supported():
		return TierWidth2
	default:
		return TierScalar
	}
}
