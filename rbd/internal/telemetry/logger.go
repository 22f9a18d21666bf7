// Package telemetry provides structured logging and metrics for one RBD
// kernel invocation. It sits off the hot per-time-instant path entirely:
// at most one log line and one metric observation per entry-point call
// (calls rejected by argument validation, and KooN's constant-fill cases,
// record none), never per worker iteration. Grounded on jhkimqd-chaos-utils/pkg/reporting/logger.go
// (zerolog) and pkg/monitoring/prometheus/client.go +
// pkg/monitoring/collector/collector.go (client_golang).
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger scoped to the rbd package.
type Logger struct {
	logger zerolog.Logger
}

var defaultLogger = NewLogger(os.Stderr, zerolog.WarnLevel)

// NewLogger creates a Logger writing to w at the given minimum level.
func NewLogger(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{logger: zerolog.New(w).With().Timestamp().Str("component", "rbd").Logger().Level(level)}
}

// SetDefault replaces the package-level logger used by LogInvocation.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// LogInvocation emits one event describing a completed (or failed)
// block-type entry-point call: debug level for a zero status, warn level
// otherwise.
func LogInvocation(block string, numComponents, numTimes int, tier string, numCores, status int) {
	ev := defaultLogger.logger.Debug()
	if status != 0 {
		ev = defaultLogger.logger.Warn()
	}
	ev.Str("block", block).
		Int("num_components", numComponents).
		Int("num_times", numTimes).
		Str("tier", tier).
		Int("num_cores", numCores).
		Int("status", status).
		Msg("rbd invocation")
}
