package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Entry
	}{
		{
			name:  "info line",
			input: "I1014 12:00:01.123456   4242 app.go:57] gstate starting",
			expected: Entry{
				Severity: SeverityInfo,
				Time:     "1014 12:00:01.123456",
				Source:   "app.go:57",
				Message:  "gstate starting",
			},
		},
		{
			name:  "error line",
			input: "E1014 12:00:02.000001 99 logger.go:14] state: projection for fault failed: fault injected",
			expected: Entry{
				Severity: SeverityError,
				Time:     "1014 12:00:02.000001",
				Source:   "logger.go:14",
				Message:  "state: projection for fault failed: fault injected",
			},
		},
		{
			name:     "continuation line",
			input:    "    at something",
			expected: Entry{Message: "    at something"},
		},
		{
			name:     "empty line",
			input:    "",
			expected: Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.expected {
				t.Errorf("Parse() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}

func TestReadEntries_SkipsHeader(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gstate.INFO")
	content := strings.Join([]string{
		"Log file created at: 2026/10/14 12:00:00",
		"Running on machine: host",
		"Binary: Built with gc go1.25.1 for linux/amd64",
		"Log line format: [IWEF]mmdd hh:mm:ss.uuuuuu threadid file:line] msg",
		"I1014 12:00:00.000001 1 app.go:40] started",
		"W1014 12:00:00.000002 1 ui.go:80] save failed",
	}, "\n") + "\n"
	if err := os.WriteFile(logPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := ReadEntries(logPath, 0)
	if err != nil {
		t.Fatalf("ReadEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadEntries() returned %d entries, want 2: %#v", len(entries), entries)
	}
	if entries[0].Severity != SeverityInfo || entries[1].Severity != SeverityWarning {
		t.Fatalf("severities = %c %c, want I W", entries[0].Severity, entries[1].Severity)
	}
	if entries[1].Message != "save failed" {
		t.Fatalf("Message = %q, want %q", entries[1].Message, "save failed")
	}
}
