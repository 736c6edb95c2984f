package handler

import (
	"errors"
	"net/http"

	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/gin-gonic/gin"
)

// respondError writes err as {"error": ...} with the status matching its kind
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoActiveRecord), errors.Is(err, service.ErrScanInProgress),
		errors.Is(err, service.ErrStaleAttachment):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrUnknownLocationField):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAttachmentTooLarge):
		status = http.StatusRequestEntityTooLarge
	}

	if status >= http.StatusInternalServerError {
		c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
