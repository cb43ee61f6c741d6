package api

import (
	"github.com/medaffairs/newsroom/app/article"
	"github.com/medaffairs/newsroom/app/source"
	"github.com/medaffairs/newsroom/app/store"
	"github.com/medaffairs/newsroom/app/tasks"
)

type AppenderInterface interface {
	Run(sub article.Submission) (article.ArchiveEntry, error)
}

var _ AppenderInterface = (*article.Appender)(nil)

type Handler struct {
	configCache    *source.ConfigCache
	appender       AppenderInterface
	collectionRepo store.CollectionRepository
	archiveRepo    store.ArchiveRepository
	scheduler      tasks.TaskSchedulerInterface
	pipeline       *tasks.Pipeline
}
