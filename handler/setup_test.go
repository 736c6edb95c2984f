package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acapellastudio313-lab/e-minutasii/config"
	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router      *gin.Engine
	store       *service.CaseStore
	filters     *service.FilterState
	editor      *service.Editor
	attachments *service.MemoryAttachments
	scanner     *service.Scanner
}

// newTestEnv wires every handler over seeded data. summaryURL may be empty, in
// which case the summary service has no credential.
func newTestEnv(t *testing.T, summaryURL string, scanDelay time.Duration) *testEnv {
	t.Helper()

	cfg := config.Default()
	cfg.Summary.APIKey = ""
	if summaryURL != "" {
		cfg.Summary.APIKey = "test-key"
		cfg.Summary.APIURL = summaryURL
	}

	store := service.NewCaseStore(service.SampleCases())
	filters := &service.FilterState{}
	editor := service.NewEditor(store, service.NewSummaryService(&cfg.Summary))
	attachments := service.NewMemoryAttachments(8, time.Minute, 1024, "/api/attachments/")
	scanner := service.NewScanner(service.NewSimulatedDecoder(scanDelay), filters.Set)

	router := gin.New()
	Handlers{
		Cases:       NewCaseHandler(store, filters),
		Filters:     NewFilterHandler(filters),
		Editor:      NewEditorHandler(store, editor, attachments, 1024),
		Scan:        NewScanHandler(scanner),
		Attachments: NewAttachmentHandler(attachments),
	}.Register(router.Group("/api"))

	return &testEnv{
		router:      router,
		store:       store,
		filters:     filters,
		editor:      editor,
		attachments: attachments,
		scanner:     scanner,
	}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("Expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
