package service

import (
	"strings"
	"sync"

	"github.com/acapellastudio313-lab/e-minutasii/model"
)

// ApplyFilters returns the records matching every active filter, in input order.
// The year filter compares the record's year as text, exactly.
func ApplyFilters(records []model.CaseRecord, filters model.SearchFilters) []model.CaseRecord {
	result := make([]model.CaseRecord, 0, len(records))
	needle := strings.ToLower(filters.CaseNumber)
	for _, r := range records {
		if !strings.Contains(strings.ToLower(r.CaseNumber), needle) {
			continue
		}
		if filters.Kind != "" && r.Kind != filters.Kind {
			continue
		}
		if filters.Year != "" && r.YearText() != filters.Year {
			continue
		}
		result = append(result, r)
	}
	return result
}

// FilterState holds the current search filters of the session
type FilterState struct {
	mu      sync.RWMutex
	filters model.SearchFilters
}

func (f *FilterState) Get() model.SearchFilters {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.filters
}

func (f *FilterState) Set(filters model.SearchFilters) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = filters
}

// Reset clears every filter
func (f *FilterState) Reset() {
	f.Set(model.SearchFilters{})
}
