package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remindly/remindly/engine/extract"
	"github.com/remindly/remindly/engine/integration/calendar"
	"github.com/remindly/remindly/engine/llm"
	"github.com/remindly/remindly/engine/ocr"
	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/engine/task/uc"
	"github.com/remindly/remindly/pkg/logger"
)

// CompletionRequest is the passthrough payload for the raw model endpoint.
type CompletionRequest struct {
	Messages    []llm.Message `json:"messages" binding:"required,min=1"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
}

// ScreenshotRequest carries a base64 image, with or without a data URI
// prefix.
type ScreenshotRequest struct {
	ImageData string `json:"imageData"`
}

// Handler handles extraction HTTP requests. The OCR and calendar clients
// are nil when their integrations are not configured.
type Handler struct {
	llm       llm.Client
	extractor *extract.Service
	ocr       ocr.Client
	tasks     *uc.Factory
	calendar  *calendar.Client
	model     string
}

// NewHandler creates a new extraction handler
func NewHandler(client llm.Client, extractor *extract.Service, ocrClient ocr.Client, tasks *uc.Factory, cal *calendar.Client, model string) *Handler {
	if model == "" {
		model = llm.DefaultModel
	}
	return &Handler{llm: client, extractor: extractor, ocr: ocrClient, tasks: tasks, calendar: cal, model: model}
}

// Completion godoc
// @Summary Raw model completion
// @Description Forwards caller-supplied messages to the model and persists one task parsed from the completion
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body CompletionRequest true "Chat messages"
// @Success 200 {object} llm.Completion
// @Failure 500 {object} map[string]string
// @Router /groq [post]
func (h *Handler) Completion(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to communicate with Groq API"})
		return
	}
	model := req.Model
	if model == "" {
		model = h.model
	}
	completion, err := h.llm.Generate(ctx, &llm.Request{
		Messages:    req.Messages,
		Model:       model,
		Temperature: req.Temperature,
	})
	if err != nil {
		log.Error("Model call failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to communicate with Groq API"})
		return
	}
	fields, err := extract.ParseObject(completion.Content())
	if err != nil {
		log.Error("Completion did not parse as extraction JSON", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to communicate with Groq API"})
		return
	}
	fields.Normalize()
	if _, err := h.persist(c, fields); err != nil {
		log.Error("Failed to persist extracted task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to communicate with Groq API"})
		return
	}
	c.JSON(http.StatusOK, completion)
}

// ProcessScreenshot godoc
// @Summary Extract a task from a screenshot
// @Description Decodes the image, runs OCR, extracts structured fields and persists a pending task
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body ScreenshotRequest true "Base64 image payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /process-screenshot [post]
func (h *Handler) ProcessScreenshot(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	var req ScreenshotRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image data provided."})
		return
	}
	if h.ocr == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OCR is not configured"})
		return
	}
	image, err := ocr.DecodeImage(req.ImageData)
	if err != nil {
		log.Error("Failed to decode screenshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process screenshot: " + err.Error()})
		return
	}
	text, err := h.ocr.Recognize(ctx, image)
	if err != nil {
		if errors.Is(err, ocr.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No text found in screenshot."})
			return
		}
		log.Error("OCR failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process screenshot: " + err.Error()})
		return
	}
	fields, err := h.extractor.ExtractFromText(ctx, text)
	if err != nil {
		log.Error("Extraction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process screenshot: " + err.Error()})
		return
	}
	if _, err := h.persist(c, fields); err != nil {
		log.Error("Failed to persist extracted task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process screenshot: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    fields,
	})
}

// persist inserts one task built from normalized extraction fields. The
// insert happens only after a successful parse, so a malformed response
// is never partially persisted. When the calendar integration is
// authorized, the task is additionally synced best-effort: a sync failure
// is logged and never fails the request.
func (h *Handler) persist(c *gin.Context, fields *extract.Fields) (*task.Task, error) {
	ctx := c.Request.Context()
	created, err := h.tasks.CreateTask(&uc.CreateTaskInput{
		Summary:  fields.Summary,
		Deadline: fields.Deadline,
		Fine:     fields.Fine,
		Priority: fields.Priority,
		Category: fields.Category,
	}).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if h.calendar != nil && h.calendar.Authorized() && created.Deadline != task.DeadlineNotFound {
		if err := h.calendar.SyncTask(ctx, created); err != nil {
			logger.FromContext(ctx).Warn("Calendar sync failed", "task_id", created.ID, "error", err)
		}
	}
	return created, nil
}
