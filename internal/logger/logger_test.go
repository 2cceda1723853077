package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer reset()

	tests := []struct {
		name     string
		log      func(string, ...any)
		expected string
	}{
		{"debug", Debug, "[DEBUG] file report.pdf\n"},
		{"info", Info, "[INFO] file report.pdf\n"},
		{"warn", Warn, "[WARN] file report.pdf\n"},
		{"error", Error, "[ERROR] file report.pdf\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tc.log("file %s", "report.pdf")

			if buf.String() != tc.expected {
				t.Errorf("unexpected output: %q", buf.String())
			}
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("debug")
	Info("info")
	Warn("warn")
	Section("section")

	if buf.Len() != 0 {
		t.Errorf("expected no output when not verbose, got %q", buf.String())
	}
}

func TestError_AlwaysPrinted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Error("Error processing file %s: %v", "scan.pdf", "corrupt")

	if buf.String() != "[ERROR] Error processing file scan.pdf: corrupt\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSection_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Process report.txt")

	if !strings.Contains(buf.String(), "=== Process report.txt ===") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
