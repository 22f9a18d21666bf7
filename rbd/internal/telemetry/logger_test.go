package telemetry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogInvocation_WarnsOnFailure(t *testing.T) {
	var buf bytes.Buffer
	orig := defaultLogger
	defer func() { defaultLogger = orig }()
	SetDefault(NewLogger(&buf, zerolog.DebugLevel))

	LogInvocation("series_generic", 3, 2, "scalar", 1, -1)

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("log output = %q, want warn level for non-zero status", out)
	}
	if !strings.Contains(out, `"block":"series_generic"`) {
		t.Errorf("log output = %q, want block field", out)
	}
}

func TestLogInvocation_DebugsOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	orig := defaultLogger
	defer func() { defaultLogger = orig }()
	SetDefault(NewLogger(&buf, zerolog.DebugLevel))

	LogInvocation("series_generic", 3, 2, "scalar", 1, 0)

	out := buf.String()
	if !strings.Contains(out, `"level":"debug"`) {
		t.Errorf("log output = %q, want debug level for zero status", out)
	}
}

func TestLogInvocation_SuppressedBelowConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	orig := defaultLogger
	defer func() { defaultLogger = orig }()
	SetDefault(NewLogger(&buf, zerolog.WarnLevel))

	LogInvocation("series_generic", 3, 2, "scalar", 1, 0)

	if buf.Len() != 0 {
		t.Errorf("log output = %q, want empty (debug below warn threshold)", buf.String())
	}
}
