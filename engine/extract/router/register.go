package router

import (
	"github.com/gin-gonic/gin"
	"github.com/remindly/remindly/engine/extract"
	"github.com/remindly/remindly/engine/integration/calendar"
	"github.com/remindly/remindly/engine/llm"
	"github.com/remindly/remindly/engine/ocr"
	"github.com/remindly/remindly/engine/task/uc"
)

// RegisterRoutes registers the extraction routes. ocrClient and cal may
// be nil when the corresponding integration is disabled.
func RegisterRoutes(r gin.IRouter, client llm.Client, extractor *extract.Service, ocrClient ocr.Client, tasks *uc.Factory, cal *calendar.Client, model string) {
	handler := NewHandler(client, extractor, ocrClient, tasks, cal, model)
	r.POST("/groq", handler.Completion)
	r.POST("/process-screenshot", handler.ProcessScreenshot)
}
