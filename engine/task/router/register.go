package router

import (
	"github.com/gin-gonic/gin"
	"github.com/remindly/remindly/engine/task/uc"
)

// RegisterRoutes registers all task routes
func RegisterRoutes(r gin.IRouter, factory *uc.Factory) {
	handler := NewHandler(factory)
	tasks := r.Group("/tasks")
	{
		tasks.GET("", handler.ListTasks)
		tasks.GET("/categories", handler.ListCategories)
		tasks.GET("/category/:category", handler.ListByCategory)
		tasks.DELETE("/:id", handler.CompleteTask)
	}
}
