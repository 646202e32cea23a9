package testutil

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"riderdir/internal/api"
	"riderdir/internal/domain"
)

// Call records one request made against a FakeRiderClient
type Call struct {
	Method string // "list", "search" or "delete"
	Page   int
	Limit  int
	Name   string
	ID     string
}

// FakeRiderClient is an in-memory api.RiderClient
type FakeRiderClient struct {
	mu sync.Mutex

	Pages        map[int][]domain.Rider    // list results by page
	Searches     map[string][]domain.Rider // search results by name
	DeleteStatus map[string]int            // status per id, 200 when unset
	ListErr      error
	SearchErr    error
	calls        []Call
}

var _ api.RiderClient = (*FakeRiderClient)(nil)

// NewFakeRiderClient creates an empty fake
func NewFakeRiderClient() *FakeRiderClient {
	return &FakeRiderClient{
		Pages:        make(map[int][]domain.Rider),
		Searches:     make(map[string][]domain.Rider),
		DeleteStatus: make(map[string]int),
	}
}

func (f *FakeRiderClient) ListRiders(ctx context.Context, page, pageSize int, name string) ([]domain.Rider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Method: "list", Page: page, Limit: pageSize, Name: name})
	if f.ListErr != nil {
		return nil, &api.FetchError{Op: "list", Err: f.ListErr}
	}
	return clone(f.Pages[page]), nil
}

func (f *FakeRiderClient) SearchRiders(ctx context.Context, name string) ([]domain.Rider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Method: "search", Name: name})
	if f.SearchErr != nil {
		return nil, &api.FetchError{Op: "search", Err: f.SearchErr}
	}
	return clone(f.Searches[name]), nil
}

func (f *FakeRiderClient) DeleteRider(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Method: "delete", ID: id})
	if status, ok := f.DeleteStatus[id]; ok && status != http.StatusOK {
		return &api.DeleteError{
			ID:         id,
			StatusCode: status,
			Err:        fmt.Errorf("%w: %d", api.ErrUnexpectedStatus, status),
		}
	}
	return nil
}

// Calls returns the requests made so far
func (f *FakeRiderClient) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

func clone(rs []domain.Rider) []domain.Rider {
	out := make([]domain.Rider, len(rs))
	copy(out, rs)
	return out
}

// Notification is one recorded notifier call
type Notification struct {
	Success bool
	Message string
}

// RecordingNotifier records every notification it receives
type RecordingNotifier struct {
	mu    sync.Mutex
	items []Notification
}

func (n *RecordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, Notification{Success: true, Message: message})
}

func (n *RecordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, Notification{Success: false, Message: message})
}

// Notifications returns what has been recorded so far
func (n *RecordingNotifier) Notifications() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.items...)
}
