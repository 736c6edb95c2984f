package handler

import (
	"context"
	"net/http"

	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	scanner *service.Scanner
}

func NewScanHandler(scanner *service.Scanner) *ScanHandler {
	return &ScanHandler{scanner: scanner}
}

// Start begins a scan. With wait=1 the response carries the decoded filters.
func (h *ScanHandler) Start(c *gin.Context) {
	// The scan outlives the request unless cancelled through Cancel
	result, err := h.scanner.Start(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("wait") != "1" {
		c.JSON(http.StatusAccepted, h.scanner.State())
		return
	}

	select {
	case filters, ok := <-result:
		if !ok {
			c.JSON(http.StatusOK, gin.H{"scan": h.scanner.State()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"filters": filters, "scan": h.scanner.State()})
	case <-c.Request.Context().Done():
		c.Status(http.StatusRequestTimeout)
	}
}

func (h *ScanHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.scanner.State())
}

// Cancel aborts a running scan without touching the filters
func (h *ScanHandler) Cancel(c *gin.Context) {
	cancelled := h.scanner.Cancel()
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled, "scan": h.scanner.State()})
}
