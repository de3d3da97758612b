package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureOutput redirects fatih/color's writer so the colored helpers can
// be asserted against.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := color.Output
	color.Output = &buf
	t.Cleanup(func() { color.Output = old })
	return &buf
}

func TestPrintWarning(t *testing.T) {
	buf := captureOutput(t)

	PrintWarning("config.json (structured-merge, fell back to prefer-current)")

	got := buf.String()
	if !strings.Contains(got, "⚠") {
		t.Errorf("output = %q, want warning symbol", got)
	}
	if !strings.Contains(got, "fell back to prefer-current") {
		t.Errorf("output = %q, want the message text", got)
	}
}

func TestPrintSuccess(t *testing.T) {
	buf := captureOutput(t)

	PrintSuccess("README.md (preserve-incoming)")

	if got := buf.String(); !strings.Contains(got, "✓") {
		t.Errorf("output = %q, want checkmark", got)
	}
}

func TestPrintCount(t *testing.T) {
	if got := PrintCount(1, "conflict", "conflicts"); got != "1 conflict" {
		t.Errorf("PrintCount(1) = %q", got)
	}
	if got := PrintCount(3, "conflict", "conflicts"); got != "3 conflicts" {
		t.Errorf("PrintCount(3) = %q", got)
	}
}
