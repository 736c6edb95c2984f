package handler

import (
	"net/http"

	"github.com/acapellastudio313-lab/e-minutasii/model"
	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	store   *service.CaseStore
	filters *service.FilterState
}

func NewCaseHandler(store *service.CaseStore, filters *service.FilterState) *CaseHandler {
	return &CaseHandler{
		store:   store,
		filters: filters,
	}
}

// List returns the records matching the filters in the query string, or the
// session filters when session=1
func (h *CaseHandler) List(c *gin.Context) {
	var filters model.SearchFilters
	if c.Query("session") == "1" {
		filters = h.filters.Get()
	} else if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters"})
		return
	}

	if filters.Kind != "" && !filters.Kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown case type: " + string(filters.Kind)})
		return
	}

	cases := service.ApplyFilters(h.store.GetAll(), filters)
	c.JSON(http.StatusOK, gin.H{
		"cases":   cases,
		"total":   len(cases),
		"filters": filters,
	})
}

// Get returns a single case record
func (h *CaseHandler) Get(c *gin.Context) {
	record, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
