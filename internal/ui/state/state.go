package state

import (
	"time"

	"riderdir/internal/domain"
)

// AppState contains all the application state.
// It is only mutated from the Bubble Tea update loop, so it carries no lock.
type AppState struct {
	// Directory data
	Records     []domain.Rider // current page, replaced wholesale on every accepted fetch
	SearchQuery string         // current search box value
	Page        int            // 1-based page number
	IsLoading   bool           // true while any delete is in flight

	// Request bookkeeping
	FetchSeq       uint64       // tag of the most recently issued list/search request
	LastQuery      domain.Query // what the most recently issued request asked for
	PendingDeletes int          // deletes in flight
	DeletingIDs    map[string]bool

	// UI state
	SelectedIndex int // selected row in Records
	StatusMessage string
	Toast         Toast
	ShowHelp      bool
	ShowInfo      bool
	InfoContent   string
}

// Toast is a transient notification shown in the status area
type Toast struct {
	Level     domain.NotificationLevel
	Message   string
	ExpiresAt time.Time
}

// Visible reports whether the toast should still be displayed at now
func (t Toast) Visible(now time.Time) bool {
	return t.Message != "" && now.Before(t.ExpiresAt)
}

// Snapshot is a read-only copy of the directory state
type Snapshot struct {
	Records     []domain.Rider
	SearchQuery string
	Page        int
	IsLoading   bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Records:     make([]domain.Rider, 0),
		Page:        1,
		DeletingIDs: make(map[string]bool),
	}
}

// Snapshot returns a copy of the directory state
func (s *AppState) Snapshot() Snapshot {
	records := make([]domain.Rider, len(s.Records))
	copy(records, s.Records)
	return Snapshot{
		Records:     records,
		SearchQuery: s.SearchQuery,
		Page:        s.Page,
		IsLoading:   s.IsLoading,
	}
}

// Directory mutations

// SetRecords replaces the current page of records
func (s *AppState) SetRecords(records []domain.Rider) {
	if records == nil {
		records = make([]domain.Rider, 0)
	}
	s.Records = records
	s.clampSelection()
}

// SetSearchQuery sets the search box value
func (s *AppState) SetSearchQuery(query string) {
	s.SearchQuery = query
}

// SetPage sets the page number; values below 1 are clamped to 1
func (s *AppState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// SetLoading sets the loading flag
func (s *AppState) SetLoading(loading bool) {
	s.IsLoading = loading
}

// RemoveRecord removes the first record with the given id, preserving the
// order of the rest. It reports whether a record was removed.
func (s *AppState) RemoveRecord(id string) bool {
	for i, r := range s.Records {
		if r.ID == id {
			records := make([]domain.Rider, 0, len(s.Records)-1)
			records = append(records, s.Records[:i]...)
			records = append(records, s.Records[i+1:]...)
			s.Records = records
			s.clampSelection()
			return true
		}
	}
	return false
}

// Request bookkeeping

// BeginFetch tags a new list/search request and returns its sequence number.
// Any earlier in-flight request becomes stale.
func (s *AppState) BeginFetch(q domain.Query) uint64 {
	s.FetchSeq++
	s.LastQuery = q
	return s.FetchSeq
}

// IsCurrentFetch reports whether seq is the most recently issued request
func (s *AppState) IsCurrentFetch(seq uint64) bool {
	return seq == s.FetchSeq
}

// BeginDelete marks a delete of id as in flight
func (s *AppState) BeginDelete(id string) {
	s.PendingDeletes++
	s.DeletingIDs[id] = true
	s.SetLoading(true)
}

// EndDelete marks a delete of id as finished
func (s *AppState) EndDelete(id string) {
	if s.PendingDeletes > 0 {
		s.PendingDeletes--
	}
	delete(s.DeletingIDs, id)
	s.SetLoading(s.PendingDeletes > 0)
}

// Selection

// SelectedRider returns the rider on the selected row
func (s *AppState) SelectedRider() (domain.Rider, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Records) {
		return domain.Rider{}, false
	}
	return s.Records[s.SelectedIndex], true
}

func (s *AppState) clampSelection() {
	if s.SelectedIndex >= len(s.Records) {
		s.SelectedIndex = len(s.Records) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// Notifications

// ShowToast displays a notification until now+ttl
func (s *AppState) ShowToast(level domain.NotificationLevel, message string, now time.Time, ttl time.Duration) {
	s.Toast = Toast{Level: level, Message: message, ExpiresAt: now.Add(ttl)}
}

// ClearExpiredToast removes the toast if it has expired at now
func (s *AppState) ClearExpiredToast(now time.Time) {
	if s.Toast.Message != "" && !s.Toast.Visible(now) {
		s.Toast = Toast{}
	}
}
