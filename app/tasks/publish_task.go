package tasks

import (
	"context"
	"log/slog"
)

// PublishTask rebuilds the site document from the persisted collection
// without refetching sources. Useful after hand-editing manual titles
// or hero flags in the collection file.
type PublishTask struct {
	Task
	pipeline *Pipeline
}

func NewPublishTask(pipeline *Pipeline) *PublishTask {
	return &PublishTask{
		Task:     NewTask(TaskTypePublish, ""),
		pipeline: pipeline,
	}
}

func (t *PublishTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.pipeline.Publish(); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "Publish",
		"duration", t.GetDuration())

	return nil
}
