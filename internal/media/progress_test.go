package media

import (
	"strings"
	"testing"
)

func TestParseOutTime(t *testing.T) {
	tests := []struct {
		line     string
		total    float64
		expected float64
		ok       bool
	}{
		{"out_time_us=1500000", 3, 0.5, true},
		{"out_time_us=9000000", 3, 1.0, true},
		{"out_time_us=-5", 3, 0, true},
		{"out_time_us=abc", 3, 0, false},
		{"out_time_us=1000000", 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := parseOutTime(tt.line, tt.total)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("parseOutTime(%q, %v) = %v, %v; expected %v, %v", tt.line, tt.total, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestScanProgress(t *testing.T) {
	stderr := strings.Join([]string{
		"frame=10",
		"fps=25.0",
		"out_time_us=1000000",
		"out_time=00:00:01.000000",
		"speed=2.0x",
		"progress=continue",
		"out_time_us=2000000",
		"progress=end",
		"",
	}, "\n")

	var updates []float64
	errLines := scanProgress(strings.NewReader(stderr), 4, func(p float64) {
		updates = append(updates, p)
	})

	expected := []float64{0.25, 0.5, 1.0}
	if len(updates) != len(expected) {
		t.Fatalf("got %d updates %v, expected %v", len(updates), updates, expected)
	}
	for i := range expected {
		if updates[i] != expected[i] {
			t.Errorf("update %d = %v, expected %v", i, updates[i], expected[i])
		}
	}
	if len(errLines) != 0 {
		t.Errorf("expected no error lines, got %v", errLines)
	}
}

func TestScanProgress_KeepsErrorTail(t *testing.T) {
	var b strings.Builder
	for i := 0; i < maxErrorLines+5; i++ {
		b.WriteString("error line\n")
	}
	b.WriteString("in.mp4: No such file or directory\n")

	errLines := scanProgress(strings.NewReader(b.String()), 0, nil)
	if len(errLines) != maxErrorLines {
		t.Fatalf("kept %d lines, expected %d", len(errLines), maxErrorLines)
	}
	if errLines[len(errLines)-1] != "in.mp4: No such file or directory" {
		t.Errorf("last line = %q", errLines[len(errLines)-1])
	}
}
