package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/acapellastudio313-lab/e-minutasii/model"
	"github.com/acapellastudio313-lab/e-minutasii/pkg/logger"
)

// RecordUpdater is the single write path for case records
type RecordUpdater interface {
	Update(ctx context.Context, id string, patch model.StoragePatch) (model.CaseRecord, error)
}

// Summarizer produces archive label text for a record
type Summarizer interface {
	Generate(ctx context.Context, record model.CaseRecord) SummaryResult
}

// WorkingCopy is the editable state of one opened record. It is created by
// Open and dropped by Save or Close.
type WorkingCopy struct {
	Record      model.CaseRecord
	Status      model.MinutationStatus
	Location    model.PhysicalLocation
	PendingFile *Attachment
}

// state is the minutation state the working copy would be saved as. The
// pending file, if any, replaces the stored document reference.
func (w *WorkingCopy) state() model.MinutationState {
	ref := w.Record.DocumentRef
	if w.PendingFile != nil {
		ref = w.PendingFile.URL
	}
	if w.Status == model.StatusCompleted {
		return model.Completed{Location: w.Location, DocumentRef: ref}
	}
	return model.Pending{DocumentRef: ref}
}

// EditorState is a read-only view of the editor
type EditorState struct {
	Open           bool                    `json:"open"`
	Session        uint64                  `json:"session"`
	Record         *model.CaseRecord       `json:"record,omitempty"`
	Status         model.MinutationStatus  `json:"status,omitempty"`
	Location       *model.PhysicalLocation `json:"location,omitempty"`
	PendingFile    *Attachment             `json:"pending_file,omitempty"`
	Summary        string                  `json:"summary"`
	SummaryLoading bool                    `json:"summary_loading"`
}

// Editor holds at most one working copy at a time
type Editor struct {
	mu         sync.Mutex
	store      RecordUpdater
	summarizer Summarizer

	session        uint64
	working        *WorkingCopy
	summary        string
	summaryTicket  uint64
	summaryLoading bool
}

func NewEditor(store RecordUpdater, summarizer Summarizer) *Editor {
	return &Editor{
		store:      store,
		summarizer: summarizer,
	}
}

// Open replaces any working copy with one seeded from record and returns the new session
func (e *Editor) Open(record model.CaseRecord) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	wc := &WorkingCopy{
		Record: record.Clone(),
		Status: record.Status,
	}
	if record.Location != nil {
		wc.Location = *record.Location
	}

	e.session++
	e.working = wc
	e.summary = ""
	e.summaryLoading = false
	return e.session
}

// SetStatus changes the working status. The working location is kept as typed.
func (e *Editor) SetStatus(status model.MinutationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.working == nil {
		return ErrNoActiveRecord
	}
	e.working.Status = status
	return nil
}

// SetLocationField sets one of room, shelf, drawer or box. Empty values are allowed.
func (e *Editor) SetLocationField(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.working == nil {
		return ErrNoActiveRecord
	}

	loc := &e.working.Location
	switch field {
	case model.FieldRoom:
		loc.Room = value
	case model.FieldShelf:
		loc.Shelf = value
	case model.FieldDrawer:
		loc.Drawer = value
	case model.FieldBox:
		loc.Box = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLocationField, field)
	}
	return nil
}

// AttachFile replaces the pending attachment of the record opened as session.
// An upload that outlived its session is refused with ErrStaleAttachment.
func (e *Editor) AttachFile(session uint64, att Attachment) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.working == nil {
		return ErrNoActiveRecord
	}
	if e.session != session {
		return ErrStaleAttachment
	}
	e.working.PendingFile = &att
	return nil
}

// Save writes the working copy through the store and closes the editor.
// On a store error the editor stays open.
func (e *Editor) Save(ctx context.Context) (model.CaseRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.working == nil {
		return model.CaseRecord{}, ErrNoActiveRecord
	}

	w := e.working
	updated, err := e.store.Update(ctx, w.Record.ID, model.PatchFor(w.state()))
	if err != nil {
		return model.CaseRecord{}, fmt.Errorf("failed to save case %s: %w", w.Record.ID, err)
	}

	e.closeLocked()
	return updated, nil
}

// Close discards the working copy without touching the store
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
}

func (e *Editor) closeLocked() {
	e.working = nil
	e.summary = ""
	e.summaryLoading = false
}

// SummaryOutcome is delivered by RequestSummaryAsync
type SummaryOutcome struct {
	Result SummaryResult
	Err    error
}

type summaryRequest struct {
	session uint64
	ticket  uint64
	record  model.CaseRecord
}

// RequestSummary generates a summary for the open record. The text is kept only
// if the same session is still open and no newer request was made meanwhile.
func (e *Editor) RequestSummary(ctx context.Context) (SummaryResult, error) {
	req, err := e.beginSummary()
	if err != nil {
		return SummaryResult{}, err
	}
	result := e.summarizer.Generate(ctx, req.record)
	return result, e.finishSummary(ctx, req, result)
}

// RequestSummaryAsync marks the summary as loading and generates it in the
// background. The channel yields one outcome.
func (e *Editor) RequestSummaryAsync(ctx context.Context) (<-chan SummaryOutcome, error) {
	req, err := e.beginSummary()
	if err != nil {
		return nil, err
	}

	out := make(chan SummaryOutcome, 1)
	go func() {
		defer close(out)
		result := e.summarizer.Generate(ctx, req.record)
		out <- SummaryOutcome{Result: result, Err: e.finishSummary(ctx, req, result)}
	}()
	return out, nil
}

func (e *Editor) beginSummary() (summaryRequest, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.working == nil {
		return summaryRequest{}, ErrNoActiveRecord
	}
	e.summaryTicket++
	e.summaryLoading = true
	return summaryRequest{
		session: e.session,
		ticket:  e.summaryTicket,
		record:  e.working.Record.Clone(),
	}, nil
}

func (e *Editor) finishSummary(ctx context.Context, req summaryRequest, result SummaryResult) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.working == nil || e.session != req.session || e.summaryTicket != req.ticket {
		logger.Debug(logger.WithCaseID(ctx, req.record.ID), "discarding stale summary", "session", req.session)
		return ErrStaleSummary
	}
	e.summary = result.Text()
	e.summaryLoading = false
	return nil
}

// Snapshot returns the current editor state
func (e *Editor) Snapshot() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := EditorState{
		Open:           e.working != nil,
		Session:        e.session,
		Summary:        e.summary,
		SummaryLoading: e.summaryLoading,
	}
	if e.working == nil {
		return st
	}

	rec := e.working.Record.Clone()
	loc := e.working.Location
	st.Record = &rec
	st.Status = e.working.Status
	st.Location = &loc
	if e.working.PendingFile != nil {
		att := *e.working.PendingFile
		st.PendingFile = &att
	}
	return st
}
