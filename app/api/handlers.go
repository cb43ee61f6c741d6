package api

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medaffairs/newsroom/app/article"
	"github.com/medaffairs/newsroom/app/cfg"
	"github.com/medaffairs/newsroom/app/source"
	"github.com/medaffairs/newsroom/app/store"
	"github.com/medaffairs/newsroom/app/tasks"
)

func NewHandler(configCache *source.ConfigCache, appender AppenderInterface,
	collectionRepo store.CollectionRepository, archiveRepo store.ArchiveRepository,
	scheduler tasks.TaskSchedulerInterface, pipeline *tasks.Pipeline) *Handler {
	return &Handler{
		configCache:    configCache,
		appender:       appender,
		collectionRepo: collectionRepo,
		archiveRepo:    archiveRepo,
		scheduler:      scheduler,
		pipeline:       pipeline,
	}
}

// PostArticle accepts a single article submission and prepends it to
// the flat archive array. Duplicate URLs are rejected.
func (h *Handler) PostArticle(c *gin.Context) {
	var sub article.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	entry, err := h.appender.Run(sub)
	if err != nil {
		var validationErr *article.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.Is(err, article.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Article already exists", "url": sub.URL})
		default:
			slog.Error("Failed to append article", "url", sub.URL, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store article"})
		}
		return
	}

	slog.Info("Article accepted", "title", entry.Title, "url", entry.URL)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"article": entry,
	})
}

// GetSite serves the published site document as-is.
func (h *Handler) GetSite(c *gin.Context) {
	data, err := os.ReadFile(cfg.Get().SiteFile)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site document not generated yet"})
			return
		}
		slog.Error("Failed to read site document", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	health["loaded_configurations"] = h.configCache.GetConfigCount()

	if collection, err := h.collectionRepo.Load(); err == nil {
		health["articles"] = len(collection.Articles)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"sources": map[string]interface{}{
			"loaded":  h.configCache.GetConfigCount(),
			"enabled": len(h.configCache.GetEnabledConfigs()),
		},
	}

	if collection, err := h.collectionRepo.Load(); err == nil {
		articles := map[string]interface{}{
			"total":   len(collection.Articles),
			"heroes":  len(collection.Heroes),
			"columns": len(collection.Columns),
		}
		if collection.LastUpdated != nil {
			articles["last_updated"] = collection.LastUpdated.Format(time.RFC3339)
		}
		stats["articles"] = articles
	}

	if entries, err := h.archiveRepo.Load(); err == nil {
		stats["archive"] = map[string]interface{}{
			"total": len(entries),
		}
	}

	c.JSON(http.StatusOK, stats)
}

// APICapture enqueues an ad-hoc capture run, for one source when the
// name parameter is present or for every enabled source otherwise.
func (h *Handler) APICapture(c *gin.Context) {
	sourceName := c.Query("source")
	if sourceName != "" {
		if _, err := h.configCache.GetConfig(sourceName); err != nil {
			slog.Error("Source configuration not found", "source", sourceName, "error", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "Source configuration not found"})
			return
		}
	}

	captureTask := tasks.NewCaptureTask(sourceName, h.pipeline)
	if err := h.scheduler.EnqueueTask(captureTask); err != nil {
		slog.Error("Error enqueueing capture task", "source", sourceName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue capture task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"task": gin.H{
			"id":   captureTask.ID,
			"type": captureTask.Type,
		},
	})
}

// APIDerive enqueues a site document rebuild straight from the archive,
// without curation flags.
func (h *Handler) APIDerive(c *gin.Context) {
	deriveTask := tasks.NewDeriveTask(h.pipeline)
	if err := h.scheduler.EnqueueTask(deriveTask); err != nil {
		slog.Error("Error enqueueing derive task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue derive task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"task": gin.H{
			"id":   deriveTask.ID,
			"type": deriveTask.Type,
		},
	})
}

// APIPublish enqueues a site document rebuild from the persisted
// collection without refetching sources.
func (h *Handler) APIPublish(c *gin.Context) {
	publishTask := tasks.NewPublishTask(h.pipeline)
	if err := h.scheduler.EnqueueTask(publishTask); err != nil {
		slog.Error("Error enqueueing publish task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue publish task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"task": gin.H{
			"id":   publishTask.ID,
			"type": publishTask.Type,
		},
	})
}
