package handler

import (
	"fmt"
	"net/http"

	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/gin-gonic/gin"
)

// AttachmentHandler serves decision documents held in memory
type AttachmentHandler struct {
	held *service.MemoryAttachments
}

func NewAttachmentHandler(held *service.MemoryAttachments) *AttachmentHandler {
	return &AttachmentHandler{held: held}
}

func (h *AttachmentHandler) Serve(c *gin.Context) {
	file, ok := h.held.Open(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found or expired"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
