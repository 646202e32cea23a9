package api

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrUnexpectedStatus is wrapped when the server answers with a non-success status
var ErrUnexpectedStatus = errors.New("unexpected status")

// FetchError reports a failed list or search request
type FetchError struct {
	Op         string // "list" or "search"
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s riders: %s returned %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s riders: %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Timeout reports whether the request failed because its deadline expired
func (e *FetchError) Timeout() bool { return isTimeout(e.Err) }

// DeleteError reports a failed delete request
type DeleteError struct {
	ID         string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *DeleteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("delete rider %s: server returned %d: %v", e.ID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("delete rider %s: %v", e.ID, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// Timeout reports whether the request failed because its deadline expired
func (e *DeleteError) Timeout() bool { return isTimeout(e.Err) }

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
