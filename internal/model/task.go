package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// EditTask represents a single editing operation running in the background
type EditTask struct {
	ID         string
	Operation  Operation
	Inputs     []string
	OutputPath string
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	Duration   float64 // expected output duration in seconds, 0 if unknown
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns "<operation> → <output file>" or just the operation
func (t *EditTask) GetDisplayTitle() string {
	if t.OutputPath == "" {
		return t.Operation.String()
	}
	return t.Operation.String() + " → " + filepath.Base(t.OutputPath)
}

// GetElapsedString returns the running time formatted as mm:ss or hh:mm:ss
func (t *EditTask) GetElapsedString(now time.Time) string {
	if t.StartedAt.IsZero() {
		return "—"
	}
	end := now
	if !t.FinishedAt.IsZero() {
		end = t.FinishedAt
	}
	secs := int(end.Sub(t.StartedAt).Seconds())
	if secs < 0 {
		secs = 0
	}

	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	var b strings.Builder
	if hours > 0 {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%02d:%02d", minutes, seconds))
	return b.String()
}

// Snapshot returns a copy safe to hand to another goroutine
func (t *EditTask) Snapshot() *EditTask {
	c := *t
	c.Inputs = append([]string(nil), t.Inputs...)
	return &c
}

// Result maps a finished task to its Result; unfinished tasks report ok=false
func (t *EditTask) Result() (Result, bool) {
	switch t.Status {
	case TaskStatusCompleted:
		return Succeeded(t.OutputPath), true
	case TaskStatusStopped:
		return Cancelled(), true
	case TaskStatusError:
		return Failed(FailureOperation, t.LastError), true
	default:
		return Result{}, false
	}
}
