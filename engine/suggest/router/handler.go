package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remindly/remindly/engine/suggest"
	"github.com/remindly/remindly/engine/task/uc"
	"github.com/remindly/remindly/pkg/logger"
)

// Handler handles suggestion HTTP requests
type Handler struct {
	factory *uc.Factory
	synth   *suggest.Synthesizer
}

// NewHandler creates a new suggestion handler
func NewHandler(factory *uc.Factory, synth *suggest.Synthesizer) *Handler {
	return &Handler{factory: factory, synth: synth}
}

// Suggestions godoc
// @Summary Get productivity suggestions
// @Description Asks the model for 3-5 actionable suggestions based on pending tasks
// @Tags suggestions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /suggestions [get]
func (h *Handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	pending, err := h.factory.ListPendingTasks().Execute(ctx)
	if err != nil {
		log.Error("Failed to load pending tasks for suggestions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	suggestions, err := h.synth.Suggest(ctx, pending)
	if err != nil {
		log.Error("Failed to get suggestions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    suggestions,
	})
}

// RegisterRoutes registers the suggestion routes
func RegisterRoutes(r gin.IRouter, factory *uc.Factory, synth *suggest.Synthesizer) {
	handler := NewHandler(factory, synth)
	r.GET("/suggestions", handler.Suggestions)
}
