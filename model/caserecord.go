package model

import "strconv"

// CaseKind is the case category: contentious lawsuit or non-contentious petition
type CaseKind string

const (
	KindLawsuit  CaseKind = "Gugatan"
	KindPetition CaseKind = "Permohonan"
)

// Valid reports whether k is one of the known case kinds
func (k CaseKind) Valid() bool {
	return k == KindLawsuit || k == KindPetition
}

// MinutationStatus is the archival status of a case file
type MinutationStatus string

const (
	StatusPending   MinutationStatus = "Belum Minutasi"
	StatusCompleted MinutationStatus = "Sudah Minutasi"
)

// Valid reports whether s is one of the known statuses
func (s MinutationStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// PhysicalLocation is where the paper case file is stored
type PhysicalLocation struct {
	Room   string `json:"ruang" yaml:"ruang"`
	Shelf  string `json:"rak" yaml:"rak"`
	Drawer string `json:"laci" yaml:"laci"`
	Box    string `json:"box" yaml:"box"`
}

// Location field names accepted by the editor
const (
	FieldRoom   = "room"
	FieldShelf  = "shelf"
	FieldDrawer = "drawer"
	FieldBox    = "box"
)

// CaseRecord represents one court case file
type CaseRecord struct {
	ID             string   `json:"id"`
	CaseNumber     string   `json:"case_number"`
	Year           int      `json:"year"`
	Kind           CaseKind `json:"type"`
	Classification string   `json:"classification"`

	// Only meaningful for lawsuits
	Parties      string `json:"parties,omitempty"`
	FinalityDate string `json:"date_bht,omitempty"`

	DecisionDate string `json:"date_decision"`

	Status      MinutationStatus  `json:"status"`
	Location    *PhysicalLocation `json:"location,omitempty"` // set iff Status == StatusCompleted
	DocumentRef string            `json:"pdf_url,omitempty"`
}

// YearText renders the year the way filters compare it
func (r CaseRecord) YearText() string {
	return strconv.Itoa(r.Year)
}

// Clone returns a copy that shares no pointers with r
func (r CaseRecord) Clone() CaseRecord {
	if r.Location != nil {
		loc := *r.Location
		r.Location = &loc
	}
	return r
}

// MinutationState is either Pending or Completed. Completed always carries a location.
type MinutationState interface {
	minutationState()
}

// Pending is the state of a case file that has not been archived yet
type Pending struct {
	DocumentRef string
}

// Completed is the state of an archived case file
type Completed struct {
	Location    PhysicalLocation
	DocumentRef string
}

func (Pending) minutationState()   {}
func (Completed) minutationState() {}

// State returns the record's status as a tagged variant. A Completed record
// with no stored location reports an empty location.
func (r CaseRecord) State() MinutationState {
	if r.Status != StatusCompleted {
		return Pending{DocumentRef: r.DocumentRef}
	}
	var loc PhysicalLocation
	if r.Location != nil {
		loc = *r.Location
	}
	return Completed{Location: loc, DocumentRef: r.DocumentRef}
}

// PatchFor builds the storage patch for state. Only Completed carries a location.
func PatchFor(state MinutationState) StoragePatch {
	switch s := state.(type) {
	case Completed:
		loc := s.Location
		return StoragePatch{Status: StatusCompleted, Location: &loc, DocumentRef: s.DocumentRef}
	case Pending:
		return StoragePatch{Status: StatusPending, DocumentRef: s.DocumentRef}
	default:
		return StoragePatch{Status: StatusPending}
	}
}

// StoragePatch holds the only fields of a CaseRecord that may change after seeding
type StoragePatch struct {
	Status      MinutationStatus
	Location    *PhysicalLocation
	DocumentRef string
}

// SearchFilters is the transient query state of the case list
type SearchFilters struct {
	CaseNumber string   `json:"case_number" form:"case_number"`
	Kind       CaseKind `json:"type" form:"type"`
	Year       string   `json:"year" form:"year"`
}
