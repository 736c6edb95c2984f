package handler

import (
	"net/http"

	"github.com/acapellastudio313-lab/e-minutasii/model"
	"github.com/acapellastudio313-lab/e-minutasii/pkg/logger"
	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/gin-gonic/gin"
)

// FilterHandler exposes the session's search filters. A completed scan writes
// the same state.
type FilterHandler struct {
	filters *service.FilterState
}

func NewFilterHandler(filters *service.FilterState) *FilterHandler {
	return &FilterHandler{filters: filters}
}

func (h *FilterHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.filters.Get())
}

// Set replaces all three filters
func (h *FilterHandler) Set(c *gin.Context) {
	var filters model.SearchFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if filters.Kind != "" && !filters.Kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown case type: " + string(filters.Kind)})
		return
	}

	h.filters.Set(filters)
	logger.Debug(c.Request.Context(), "filters updated", "case_number", filters.CaseNumber, "type", filters.Kind, "year", filters.Year)
	c.JSON(http.StatusOK, filters)
}

// Reset clears every filter
func (h *FilterHandler) Reset(c *gin.Context) {
	h.filters.Reset()
	c.JSON(http.StatusOK, h.filters.Get())
}
