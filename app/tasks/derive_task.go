package tasks

import (
	"context"
	"log/slog"
)

// DeriveTask rebuilds the site document from the archive rather than
// the curated collection. Used to bootstrap a site document when no
// collection exists yet.
type DeriveTask struct {
	Task
	pipeline *Pipeline
}

func NewDeriveTask(pipeline *Pipeline) *DeriveTask {
	return &DeriveTask{
		Task:     NewTask(TaskTypeDerive, ""),
		pipeline: pipeline,
	}
}

func (t *DeriveTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.pipeline.Derive(); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "Derive",
		"duration", t.GetDuration())

	return nil
}
