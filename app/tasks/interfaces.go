package tasks

// TaskSchedulerInterface is what the rest of the application sees of the
// background scheduler: start/stop lifecycle plus ad-hoc enqueueing
// (used by the capture API endpoint).
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
