package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/task/uc"
	"github.com/remindly/remindly/pkg/logger"
)

// Handler handles task-related HTTP requests
type Handler struct {
	factory *uc.Factory
}

// NewHandler creates a new task handler
func NewHandler(factory *uc.Factory) *Handler {
	return &Handler{factory: factory}
}

// ListTasks godoc
// @Summary List all tasks
// @Description List every task regardless of status, ranked by priority then recency
// @Tags tasks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /tasks [get]
func (h *Handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, err := h.factory.ListTasks().Execute(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    tasks,
	})
}

// CompleteTask godoc
// @Summary Complete a task
// @Description Marks the task as completed. The route is a DELETE for
// historical client compatibility but never removes the record.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tasks/{id} [delete]
func (h *Handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.factory.CompleteTask(id).Execute(ctx); err != nil {
		log.Error("Failed to mark task as completed", "error", err, "task_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Task marked as completed",
		"id":      id.String(),
	})
}

// ListCategories godoc
// @Summary List task categories
// @Description Distinct, sorted categories present in the store
// @Tags tasks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /tasks/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()
	categories, err := h.factory.ListCategories().Execute(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    categories,
	})
}

// ListByCategory godoc
// @Summary List tasks by category
// @Description Tasks whose category matches exactly, ranked
// @Tags tasks
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /tasks/category/{category} [get]
func (h *Handler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.Param("category")
	tasks, err := h.factory.ListByCategory(category).Execute(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch tasks by category", "error", err, "category", category)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    tasks,
	})
}
