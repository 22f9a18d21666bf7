//go:build riscv64

package rbd

func sse2Supported() bool    { return false }
func avxSupported() bool     { return false }
func fma3Supported() bool    { return false }
func avx512fSupported() bool { return false }
func neonSupported() bool    { return false }
func vsxSupported() bool     { return false }

// rvvSupported reports RISC-V Vector (RVV) extension availability.
//
// golang.org/x/sys/cpu does not expose a stable RVV feature flag at the
// version this module pins; rather than fabricate detection logic, this
// conservatively reports false and the dispatcher falls back to scalar.
// Revisit once x/sys/cpu grows cpu.RISCV64.HasV (tracked upstream).
func rvvSupported() bool { return false }

// detectTier falls back to scalar on riscv64 until RVV detection lands.
func detectTier() Tier {
	return TierScalar
}
