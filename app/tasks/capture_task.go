package tasks

import (
	"context"
	"log/slog"
)

// CaptureTask runs one full ingestion cycle through the pipeline. An
// empty source name captures every enabled source.
type CaptureTask struct {
	Task
	pipeline *Pipeline
}

func NewCaptureTask(sourceName string, pipeline *Pipeline) *CaptureTask {
	return &CaptureTask{
		Task:     NewTask(TaskTypeCapture, sourceName),
		pipeline: pipeline,
	}
}

func (t *CaptureTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	summary, err := t.pipeline.Capture(ctx, t.SourceName)
	if err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "Capture",
		"source", t.SourceName,
		"duration", t.GetDuration(),
		"fetched", summary.Fetched,
		"built", summary.Built,
		"skipped", summary.Skipped,
		"archived", summary.Archived,
		"heroes", summary.Heroes,
		"columns", summary.Columns)

	return nil
}
