package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/acapellastudio313-lab/e-minutasii/model"
	"github.com/acapellastudio313-lab/e-minutasii/service"
)

func TestScanHandlerWait(t *testing.T) {
	env := newTestEnv(t, "", time.Millisecond)

	w := env.do("POST", "/api/scan?wait=1", nil)
	expectStatus(t, w, http.StatusOK)

	resp := decode[struct {
		Filters model.SearchFilters `json:"filters"`
		Scan    service.ScanState   `json:"scan"`
	}](t, w)
	if resp.Filters != service.CannedScanFilters() {
		t.Errorf("Expected canned filters, got %+v", resp.Filters)
	}
	if resp.Scan.Scanning {
		t.Error("Expected scan to be finished")
	}
	if got := env.filters.Get(); got != service.CannedScanFilters() {
		t.Errorf("Expected scan to replace session filters, got %+v", got)
	}

	list := decode[listResponse](t, env.do("GET", "/api/cases?session=1", nil))
	if list.Total != 1 || list.Cases[0].ID != "1" {
		t.Errorf("Expected only record 1 after scan, got %+v", list.Cases)
	}
}

func TestScanHandlerCancel(t *testing.T) {
	env := newTestEnv(t, "", time.Hour)
	env.filters.Set(model.SearchFilters{Year: "2024"})

	w := env.do("POST", "/api/scan", nil)
	expectStatus(t, w, http.StatusAccepted)
	if !decode[service.ScanState](t, w).Scanning {
		t.Error("Expected scan to be running")
	}

	expectStatus(t, env.do("POST", "/api/scan", nil), http.StatusConflict)

	w = env.do("DELETE", "/api/scan", nil)
	expectStatus(t, w, http.StatusOK)
	resp := decode[map[string]any](t, w)
	if resp["cancelled"] != true {
		t.Errorf("Expected cancelled true, got %v", resp["cancelled"])
	}

	if got := env.filters.Get(); got.Year != "2024" || got.CaseNumber != "" {
		t.Errorf("Expected filters untouched by cancel, got %+v", got)
	}
	if decode[service.ScanState](t, env.do("GET", "/api/scan", nil)).Scanning {
		t.Error("Expected no scan running after cancel")
	}
}
