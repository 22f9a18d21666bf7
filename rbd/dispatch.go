// Package rbd evaluates the time-dependent reliability of Reliability
// Block Diagrams built from Series, Parallel, Bridge and KooN (k-out-of-n)
// blocks. Each entry point takes a component reliability matrix sampled at
// T time instants and writes the block's reliability at those same T
// instants, using the widest SIMD-style kernel tier the runtime CPU
// supports and a worker-per-core partition of the time axis.
package rbd

import (
	"fmt"
	"os"
	"strconv"
)

// Tier represents the vector-width tier selected for one invocation.
type Tier int

const (
	// TierScalar processes one time instant per step.
	TierScalar Tier = iota

	// TierWidth2 processes two time instants per step (SSE2/NEON-class width).
	TierWidth2

	// TierWidth4 processes four time instants per step (AVX/NEON-pair-class width).
	TierWidth4

	// TierWidth8 processes eight time instants per step (AVX-512/FMA3-class width).
	TierWidth8

	// TierScalable processes a runtime-determined number of time instants
	// per step (SVE/RVV-class width); a TierScalable kernel call may be
	// handed a partial group, unlike every other tier.
	TierScalable
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierWidth2:
		return "width2"
	case TierWidth4:
		return "width4"
	case TierWidth8:
		return "width8"
	case TierScalable:
		return "scalable"
	default:
		return "unknown"
	}
}

// width returns the lane count for fixed-width tiers, 1 for scalar, and 8
// for scalable (the scalable worker may hand a call fewer lanes when fewer
// remain).
func (t Tier) width() int {
	switch t {
	case TierWidth2:
		return 2
	case TierWidth4:
		return 4
	case TierWidth8, TierScalable:
		return 8
	default:
		return 1
	}
}

// currentTier is the tier selected for this process, computed once by the
// platform-specific detectTier() in dispatch_<arch>.go.
var currentTier Tier

func init() {
	if noSIMDEnv() {
		currentTier = TierScalar
		return
	}
	if forced, ok := forcedTierEnv(); ok {
		currentTier = forced
		return
	}
	currentTier = detectTier()
}

// CurrentTier returns the SIMD-style kernel tier chosen for this process.
func CurrentTier() Tier {
	return currentTier
}

// noSIMDEnv reports whether RBD_NO_SIMD is set, forcing scalar kernels.
// Mirrors the teacher library's HWY_NO_SIMD escape hatch.
func noSIMDEnv() bool {
	val := os.Getenv("RBD_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// forcedTierEnv reads RBD_FORCE_TIER ("scalar", "width2", "width4",
// "width8", "scalable"), read once at package init to pin a tier
// deterministically regardless of detected CPU features. rbd/config pins a
// tier through SetTierOverride instead.
func forcedTierEnv() (Tier, bool) {
	val := os.Getenv("RBD_FORCE_TIER")
	return parseTierName(val)
}

func parseTierName(val string) (Tier, bool) {
	switch val {
	case "scalar":
		return TierScalar, true
	case "width2":
		return TierWidth2, true
	case "width4":
		return TierWidth4, true
	case "width8":
		return TierWidth8, true
	case "scalable":
		return TierScalable, true
	default:
		return TierScalar, false
	}
}

// ParseTier parses a tier name ("scalar", "width2", "width4", "width8",
// "scalable") as accepted by rbd/config's ForceTier setting.
func ParseTier(name string) (Tier, error) {
	t, ok := parseTierName(name)
	if !ok {
		return TierScalar, fmt.Errorf("rbd: unknown tier %q", name)
	}
	return t, nil
}

// SetTierOverride forcibly pins the process-wide tier, bypassing CPU
// detection. Intended for tests and the rbd/config ForceTier setting; not
// meant to be toggled mid-computation.
func SetTierOverride(t Tier) {
	currentTier = t
}

// ResetTierOverride restores tier selection to the detected CPU tier.
func ResetTierOverride() {
	currentTier = detectTier()
}
