package router

import (
	"github.com/gin-gonic/gin"
	"github.com/remindly/remindly/engine/integration/push"
	"github.com/remindly/remindly/engine/task/uc"
)

// RegisterRoutes registers the notification routes. sender may be nil
// when Web Push is disabled.
func RegisterRoutes(r gin.IRouter, factory *uc.Factory, sender *push.Sender) {
	handler := NewHandler(factory, sender)
	notifications := r.Group("/notifications")
	{
		notifications.GET("/check", handler.Check)
		notifications.POST("/subscribe", handler.Subscribe)
	}
}
