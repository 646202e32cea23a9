//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
)

// rider mirrors the API wire format
type rider struct {
	ID       string `json:"_id"`
	RiderID  string `json:"Id"`
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Position string `json:"Position"`
	Status   bool   `json:"Status"`
	NRIC     string `json:"NRIC"`
	Image    string `json:"Image"`
}

// FakeAPI serves the rider collection over HTTP
type FakeAPI struct {
	srv *httptest.Server

	mu      sync.Mutex
	riders  []rider
	deletes []string
}

func defaultRiders() []rider {
	return []rider{
		{ID: "a1", RiderID: "R-001", Name: "Alice", Email: "alice@example.com", Position: "Courier", Status: true, NRIC: "S1000001A"},
		{ID: "a2", RiderID: "R-002", Name: "Bob", Email: "bob@example.com", Position: "Driver", Status: false, NRIC: "S1000002B"},
		{ID: "a3", RiderID: "R-003", Name: "Carol", Email: "carol@example.com", Position: "Courier", Status: true, NRIC: "S1000003C"},
	}
}

// NewFakeAPI starts a fake rider API
func NewFakeAPI(riders []rider) *FakeAPI {
	f := &FakeAPI{riders: riders}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *FakeAPI) URL() string { return f.srv.URL }

func (f *FakeAPI) Close() { f.srv.Close() }

// Deletes returns the ids deleted so far
func (f *FakeAPI) Deletes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletes...)
}

func (f *FakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1":
		q := r.URL.Query()
		name := strings.ToLower(q.Get("Name"))
		matched := make([]rider, 0)
		for _, rd := range f.riders {
			if name == "" || strings.Contains(strings.ToLower(rd.Name), name) {
				matched = append(matched, rd)
			}
		}
		if q.Has("page") {
			page, _ := strconv.Atoi(q.Get("page"))
			limit, _ := strconv.Atoi(q.Get("limit"))
			start := (page - 1) * limit
			if start > len(matched) {
				start = len(matched)
			}
			end := start + limit
			if end > len(matched) {
				end = len(matched)
			}
			matched = matched[start:end]
		}
		_ = json.NewEncoder(w).Encode(matched)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/v1/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/v1/")
		f.deletes = append(f.deletes, id)
		for i, rd := range f.riders {
			if rd.ID == id {
				f.riders = append(f.riders[:i], f.riders[i+1:]...)
				break
			}
		}
		w.WriteHeader(http.StatusOK)

	default:
		http.NotFound(w, r)
	}
}

// CreateTestWorkspace creates an isolated home directory for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "riderdir-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, nil
}

// StartWithAPI creates a workspace, starts a fake API and launches the app against it
func (tf *TUITestFramework) StartWithAPI(riders []rider, args ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	tf.api = NewFakeAPI(riders)
	return tf.StartApp(args...)
}
