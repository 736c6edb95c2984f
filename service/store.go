package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/acapellastudio313-lab/e-minutasii/model"
	"github.com/acapellastudio313-lab/e-minutasii/pkg/logger"
)

// CaseStore is an in-memory store for case records.
// Records live for the lifetime of the process; Update is the only write path.
type CaseStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]*model.CaseRecord
}

// NewCaseStore creates a store seeded with records, keeping their order.
// A repeated ID keeps the first record.
func NewCaseStore(seed []model.CaseRecord) *CaseStore {
	s := &CaseStore{
		records: make(map[string]*model.CaseRecord, len(seed)),
	}
	for _, r := range seed {
		if _, dup := s.records[r.ID]; dup {
			slog.Warn("duplicate case record id in seed, skipping", "case_id", r.ID)
			continue
		}
		rec := r.Clone()
		s.records[r.ID] = &rec
		s.order = append(s.order, r.ID)
	}
	slog.Info("case store initialized", "records", len(s.order))
	return s
}

// GetAll returns copies of every record in insertion order
func (s *CaseStore) GetAll() []model.CaseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.CaseRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id].Clone())
	}
	return result
}

func (s *CaseStore) Get(id string) (model.CaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return model.CaseRecord{}, &NotFoundError{ID: id}
	}
	return r.Clone(), nil
}

// Update replaces status, location and document reference of one record.
// Nothing changes when the ID is unknown.
func (s *CaseStore) Update(ctx context.Context, id string, patch model.StoragePatch) (model.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return model.CaseRecord{}, &NotFoundError{ID: id}
	}

	r.Status = patch.Status
	r.Location = nil
	if patch.Location != nil {
		loc := *patch.Location
		r.Location = &loc
	}
	r.DocumentRef = patch.DocumentRef

	caseUpdatesTotal.WithLabelValues(string(r.Status)).Inc()
	logger.Info(logger.WithCaseID(ctx, id), "case record saved",
		"status", r.Status,
		"location", r.Location,
		"document_ref", r.DocumentRef,
	)

	return r.Clone(), nil
}

// Count returns the number of records in the store
func (s *CaseStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
