package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/acapellastudio313-lab/e-minutasii/model"
)

// Decoder turns a code source into search filters. It returns ErrNoCode when
// nothing could be read.
type Decoder interface {
	Decode(ctx context.Context) (model.SearchFilters, error)
}

// CannedScanFilters is what the simulated scan always finds
func CannedScanFilters() model.SearchFilters {
	return model.SearchFilters{
		CaseNumber: "120/Pdt.G/2023/PN.Jkt.Pst",
		Kind:       model.KindLawsuit,
		Year:       "2023",
	}
}

// SimulatedDecoder stands in for a QR reader: it waits Delay, then returns Result
type SimulatedDecoder struct {
	Delay  time.Duration
	Result model.SearchFilters
}

func NewSimulatedDecoder(delay time.Duration) SimulatedDecoder {
	return SimulatedDecoder{Delay: delay, Result: CannedScanFilters()}
}

func (d SimulatedDecoder) Decode(ctx context.Context) (model.SearchFilters, error) {
	timer := time.NewTimer(d.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return model.SearchFilters{}, ctx.Err()
	case <-timer.C:
		return d.Result, nil
	}
}

// ScanState is a read-only view of the scanner
type ScanState struct {
	Scanning  bool                 `json:"scanning"`
	Last      *model.SearchFilters `json:"last,omitempty"`
	LastError string               `json:"last_error,omitempty"`
}

// Scanner runs at most one decode at a time and hands successful results to onResult
type Scanner struct {
	mu       sync.Mutex
	decoder  Decoder
	onResult func(model.SearchFilters)

	run     uint64
	cancel  context.CancelFunc
	last    *model.SearchFilters
	lastErr string
}

func NewScanner(decoder Decoder, onResult func(model.SearchFilters)) *Scanner {
	return &Scanner{
		decoder:  decoder,
		onResult: onResult,
	}
}

// Start begins a scan. The returned channel yields the filters once, or is
// closed empty when the scan is cancelled or fails.
func (s *Scanner) Start(ctx context.Context) (<-chan model.SearchFilters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return nil, ErrScanInProgress
	}

	ctx, cancel := context.WithCancel(ctx)
	s.run++
	s.cancel = cancel
	s.lastErr = ""

	out := make(chan model.SearchFilters, 1)
	go s.decode(ctx, s.run, out)
	return out, nil
}

func (s *Scanner) decode(ctx context.Context, run uint64, out chan<- model.SearchFilters) {
	defer close(out)

	filters, err := s.decoder.Decode(ctx)

	s.mu.Lock()
	if s.run != run {
		// Cancel already cleared the state
		s.mu.Unlock()
		scansTotal.WithLabelValues("cancelled").Inc()
		return
	}
	s.cancel()
	s.cancel = nil
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.mu.Unlock()
		scansTotal.WithLabelValues("cancelled").Inc()
		return
	}
	if err != nil {
		s.lastErr = err.Error()
		s.mu.Unlock()
		if !errors.Is(err, ErrNoCode) {
			slog.Warn("scan failed", "error", err)
		}
		scansTotal.WithLabelValues("failed").Inc()
		return
	}
	f := filters
	s.last = &f
	s.mu.Unlock()

	scansTotal.WithLabelValues("completed").Inc()
	slog.Info("scan completed", "case_number", filters.CaseNumber, "type", filters.Kind, "year", filters.Year)
	if s.onResult != nil {
		s.onResult(filters)
	}
	out <- filters
}

// Cancel aborts a running scan. It reports whether one was running.
func (s *Scanner) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel == nil {
		return false
	}
	s.cancel()
	s.cancel = nil
	s.run++
	return true
}

// State returns whether a scan is running and the last result
func (s *Scanner) State() ScanState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := ScanState{
		Scanning:  s.cancel != nil,
		LastError: s.lastErr,
	}
	if s.last != nil {
		f := *s.last
		st.Last = &f
	}
	return st
}
