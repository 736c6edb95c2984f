package service

import (
	"testing"

	"github.com/acapellastudio313-lab/e-minutasii/model"
)

func ids(records []model.CaseRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	records := SampleCases()

	tests := []struct {
		name     string
		filters  model.SearchFilters
		expected []string
	}{
		{"no filters", model.SearchFilters{}, []string{"1", "2", "3"}},
		{"case number substring", model.SearchFilters{CaseNumber: "120"}, []string{"1"}},
		{"case number case-insensitive", model.SearchFilters{CaseNumber: "pdt.g"}, []string{"1", "3"}},
		{"case number upper", model.SearchFilters{CaseNumber: "PN.JKT"}, []string{"1", "2", "3"}},
		{"kind petition", model.SearchFilters{Kind: model.KindPetition}, []string{"2"}},
		{"kind lawsuit", model.SearchFilters{Kind: model.KindLawsuit}, []string{"1", "3"}},
		{"year exact", model.SearchFilters{Year: "2023"}, []string{"1", "3"}},
		{"year other", model.SearchFilters{Year: "2024"}, []string{"2"}},
		{"year substring does not match", model.SearchFilters{Year: "023"}, []string{}},
		{"year with space does not match", model.SearchFilters{Year: "2023 "}, []string{}},
		{"year leading zero does not match", model.SearchFilters{Year: "02023"}, []string{}},
		{"combined", model.SearchFilters{CaseNumber: "88", Kind: model.KindLawsuit, Year: "2023"}, []string{"3"}},
		{"combined no match", model.SearchFilters{CaseNumber: "120", Year: "2024"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(ApplyFilters(records, tt.filters))
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestApplyFiltersEmptyResultNotNil(t *testing.T) {
	got := ApplyFilters(SampleCases(), model.SearchFilters{CaseNumber: "does-not-exist"})
	if got == nil {
		t.Fatal("Expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("Expected no matches, got %d", len(got))
	}
}

func TestApplyFiltersYearAgainstRecord(t *testing.T) {
	records := []model.CaseRecord{
		{ID: "a", Year: 2023},
		{ID: "b", Year: 2024},
		{ID: "c", Year: 23},
	}
	got := ids(ApplyFilters(records, model.SearchFilters{Year: "2023"}))
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("Expected only record a, got %v", got)
	}
	got = ids(ApplyFilters(records, model.SearchFilters{Year: "023"}))
	if len(got) != 0 {
		t.Errorf("Expected no match for '023', got %v", got)
	}
}

func TestApplyFiltersWidening(t *testing.T) {
	records := SampleCases()
	full := model.SearchFilters{CaseNumber: "pdt", Kind: model.KindLawsuit, Year: "2023"}

	relaxations := []model.SearchFilters{
		{Kind: full.Kind, Year: full.Year},
		{CaseNumber: full.CaseNumber, Year: full.Year},
		{CaseNumber: full.CaseNumber, Kind: full.Kind},
		{},
	}

	narrow := ApplyFilters(records, full)
	for _, r := range narrow {
		if r.Kind != model.KindLawsuit || r.YearText() != "2023" {
			t.Errorf("Record %s does not satisfy the filters", r.ID)
		}
	}

	for _, relaxed := range relaxations {
		wide := map[string]bool{}
		for _, r := range ApplyFilters(records, relaxed) {
			wide[r.ID] = true
		}
		for _, r := range narrow {
			if !wide[r.ID] {
				t.Errorf("Relaxing to %+v dropped record %s", relaxed, r.ID)
			}
		}
	}
}

func TestApplyFiltersKeepsInputOrder(t *testing.T) {
	records := []model.CaseRecord{
		{ID: "z", CaseNumber: "9/Pdt.G"},
		{ID: "a", CaseNumber: "1/Pdt.G"},
		{ID: "m", CaseNumber: "5/Pdt.G"},
	}
	got := ids(ApplyFilters(records, model.SearchFilters{CaseNumber: "pdt"}))
	expected := []string{"z", "a", "m"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Expected %v, got %v", expected, got)
		}
	}
}

func TestFilterState(t *testing.T) {
	var state FilterState

	if state.Get() != (model.SearchFilters{}) {
		t.Errorf("Expected empty filters, got %+v", state.Get())
	}

	f := model.SearchFilters{CaseNumber: "120", Year: "2023"}
	state.Set(f)
	if state.Get() != f {
		t.Errorf("Expected %+v, got %+v", f, state.Get())
	}

	state.Reset()
	if state.Get() != (model.SearchFilters{}) {
		t.Errorf("Expected filters to be reset, got %+v", state.Get())
	}
}
