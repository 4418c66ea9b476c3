package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remindly/remindly/engine/integration/push"
	"github.com/remindly/remindly/engine/notify"
	"github.com/remindly/remindly/engine/task/uc"
	"github.com/remindly/remindly/pkg/logger"
)

// Handler handles notification HTTP requests. The push sender is nil when
// Web Push is not configured.
type Handler struct {
	factory *uc.Factory
	push    *push.Sender
}

// NewHandler creates a new notification handler
func NewHandler(factory *uc.Factory, sender *push.Sender) *Handler {
	return &Handler{factory: factory, push: sender}
}

// Check godoc
// @Summary Check deadline notifications
// @Description Derives notifications for pending tasks due within 24 hours, ranked by urgency then time remaining
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /notifications/check [get]
func (h *Handler) Check(c *gin.Context) {
	ctx := c.Request.Context()
	pending, err := h.factory.ListPendingTasks().Execute(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to check notifications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	notifications := notify.Derive(ctx, pending, time.Now())
	if h.push != nil {
		h.push.BroadcastUrgent(ctx, notifications)
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    notifications,
	})
}

// Subscribe godoc
// @Summary Register a Web Push subscription
// @Tags notifications
// @Accept json
// @Produce json
// @Param subscription body push.Subscription true "Browser push subscription"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /notifications/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	if h.push == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Push notifications are not configured"})
		return
	}
	var sub push.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil || sub.Endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid push subscription"})
		return
	}
	h.push.Subscribe(&sub)
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
