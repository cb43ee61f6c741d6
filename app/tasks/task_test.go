package tasks

import (
	"testing"
	"time"
)

func TestTask_RetryAccounting(t *testing.T) {
	task := NewTask(TaskTypeCapture, "newsfeed")

	if task.GetRetryCount() != 0 {
		t.Errorf("expected retry count 0, got %d", task.GetRetryCount())
	}
	if !task.CanRetry() {
		t.Error("expected new task to be retryable")
	}

	for i := 0; i < DefaultMaxRetries; i++ {
		task.IncrementRetryCount()
	}

	if task.CanRetry() {
		t.Errorf("expected task exhausted after %d retries", DefaultMaxRetries)
	}
}

func TestTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask(TaskTypePublish, "")
		if seen[task.GetID()] {
			t.Fatalf("duplicate task ID: %s", task.GetID())
		}
		seen[task.GetID()] = true
	}
}

func TestTask_Duration(t *testing.T) {
	task := NewTask(TaskTypeCapture, "newsfeed")

	if task.GetDuration() != 0 {
		t.Errorf("expected zero duration before start, got %v", task.GetDuration())
	}

	task.Start()
	time.Sleep(time.Millisecond)

	if task.GetDuration() <= 0 {
		t.Errorf("expected positive duration after start, got %v", task.GetDuration())
	}
}
