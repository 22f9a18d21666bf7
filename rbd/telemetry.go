package rbd

import "github.com/marcopapini/librbd-sub002/rbd/internal/telemetry"

// logInvocation reports one completed entry-point call to the ambient
// logging and metrics stack (rbd/internal/telemetry). It never runs on
// the per-time-instant path and never affects status.
func logInvocation(block string, numComponents, numTimes, numCores, status int) {
	tier := CurrentTier().String()
	telemetry.LogInvocation(block, numComponents, numTimes, tier, numCores, status)
	telemetry.Observe(block, tier, numCores)
}
