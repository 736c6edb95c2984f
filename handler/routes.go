package handler

import (
	"github.com/acapellastudio313-lab/e-minutasii/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the endpoint sets mounted under /api. Attachments is nil when
// uploads are not held in memory.
type Handlers struct {
	Cases       *CaseHandler
	Filters     *FilterHandler
	Editor      *EditorHandler
	Scan        *ScanHandler
	Attachments *AttachmentHandler
}

// Register mounts every API route on api
func (h Handlers) Register(api *gin.RouterGroup) {
	api.GET("/cases", h.Cases.List)
	api.GET("/cases/:id", middleware.CaseID(), h.Cases.Get)

	api.GET("/filters", h.Filters.Get)
	api.PUT("/filters", h.Filters.Set)
	api.DELETE("/filters", h.Filters.Reset)

	editor := api.Group("/editor")
	{
		editor.GET("", h.Editor.Snapshot)
		editor.POST("/open/:id", middleware.CaseID(), h.Editor.Open)
		editor.PUT("/status", h.Editor.SetStatus)
		editor.PUT("/location", h.Editor.SetLocation)
		editor.POST("/attachment", h.Editor.Attach)
		editor.POST("/save", h.Editor.Save)
		editor.POST("/cancel", h.Editor.Cancel)
		editor.POST("/summary", h.Editor.Summary)
	}

	api.POST("/scan", h.Scan.Start)
	api.GET("/scan", h.Scan.State)
	api.DELETE("/scan", h.Scan.Cancel)

	if h.Attachments != nil {
		api.GET("/attachments/:id", h.Attachments.Serve)
	}
}
