package model

import (
	"testing"
	"time"
)

func TestEditTask_GetElapsedString(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed  time.Duration
		expected string
	}{
		{0, "00:00"},
		{30 * time.Second, "00:30"},
		{90 * time.Second, "01:30"},
		{time.Hour, "01:00:00"},
		{time.Hour + 61*time.Second, "01:01:01"},
	}

	for _, test := range tests {
		task := &EditTask{StartedAt: start}
		result := task.GetElapsedString(start.Add(test.elapsed))
		if result != test.expected {
			t.Errorf("GetElapsedString() after %v = %s, expected %s", test.elapsed, result, test.expected)
		}
	}

	if got := (&EditTask{}).GetElapsedString(start); got != "—" {
		t.Errorf("GetElapsedString() on unstarted task = %s, expected —", got)
	}
}

func TestEditTask_GetElapsedStringUsesFinishTime(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	task := &EditTask{StartedAt: start, FinishedAt: start.Add(5 * time.Second)}

	if got := task.GetElapsedString(start.Add(time.Hour)); got != "00:05" {
		t.Errorf("GetElapsedString() = %s, expected 00:05", got)
	}
}

func TestEditTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		op       Operation
		output   string
		expected string
	}{
		{OpMergeVideos, "/tmp/out/merged_video.mp4", "merge-videos → merged_video.mp4"},
		{OpTrimAudio, "", "trim-audio"},
	}

	for _, test := range tests {
		task := &EditTask{Operation: test.op, OutputPath: test.output}
		if got := task.GetDisplayTitle(); got != test.expected {
			t.Errorf("GetDisplayTitle() = %q, expected %q", got, test.expected)
		}
	}
}

func TestEditTask_Snapshot(t *testing.T) {
	task := &EditTask{ID: "edit-1", Inputs: []string{"a.mp4", "b.mp4"}, Status: TaskStatusRunning}
	snap := task.Snapshot()

	snap.Inputs[0] = "changed.mp4"
	snap.Status = TaskStatusStopped

	if task.Inputs[0] != "a.mp4" {
		t.Errorf("Snapshot shares Inputs with original: %v", task.Inputs)
	}
	if task.Status != TaskStatusRunning {
		t.Errorf("Snapshot changed original status to %s", task.Status)
	}
}

func TestEditTask_Result(t *testing.T) {
	tests := []struct {
		task     EditTask
		expected Result
		finished bool
	}{
		{EditTask{Status: TaskStatusCompleted, OutputPath: "/out/a.mp4"}, Succeeded("/out/a.mp4"), true},
		{EditTask{Status: TaskStatusStopped}, Cancelled(), true},
		{EditTask{Status: TaskStatusError, LastError: "exit status 1"}, Failed(FailureOperation, "exit status 1"), true},
		{EditTask{Status: TaskStatusRunning}, Result{}, false},
		{EditTask{Status: TaskStatusPending}, Result{}, false},
	}

	for _, test := range tests {
		result, finished := test.task.Result()
		if finished != test.finished {
			t.Errorf("Result() for %s finished = %v, expected %v", test.task.Status, finished, test.finished)
		}
		if result != test.expected {
			t.Errorf("Result() for %s = %+v, expected %+v", test.task.Status, result, test.expected)
		}
	}
}
