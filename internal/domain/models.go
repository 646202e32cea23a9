package domain

import (
	"encoding/json"
	"net/url"
)

// PageSize is the number of riders requested per page
const PageSize = 2

// Rider represents a record in the remote rider directory
type Rider struct {
	ID       string `json:"_id"`
	RiderID  string `json:"Id"` // human-facing identifier shown in the Id column
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Position string `json:"Position"`
	Status   bool   `json:"Status"`
	NRIC     string `json:"NRIC"`
	ImageURL string `json:"Image"`
}

// UnmarshalJSON decodes a rider, taking the record id from "id" when the
// payload carries no "_id".
func (r *Rider) UnmarshalJSON(data []byte) error {
	type wire Rider
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.ID == "" {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		if raw, ok := fields["id"]; ok {
			var id string
			if err := json.Unmarshal(raw, &id); err == nil {
				w.ID = id
			}
		}
	}
	*r = Rider(w)
	return nil
}

// StatusLabel returns the display label for the rider's status
func (r Rider) StatusLabel() string {
	if r.Status {
		return "Active"
	}
	return "Not Active"
}

// EditPath returns the link target of the external edit flow
func (r Rider) EditPath() string {
	return "/edit/" + url.PathEscape(r.ID)
}

// FetchKind distinguishes the two read paths of the directory
type FetchKind int

const (
	FetchList FetchKind = iota
	FetchSearch
)

func (k FetchKind) String() string {
	switch k {
	case FetchSearch:
		return "search"
	default:
		return "list"
	}
}

// Query describes what a list or search request was issued for
type Query struct {
	Kind  FetchKind
	Page  int    // 0 for search requests, which are unpaginated
	Limit int    // 0 for search requests
	Name  string // name filter, empty means no filter
}
