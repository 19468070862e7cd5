package store

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Opener connects to the database and returns a ready Store (migrations
// applied).
type Opener func(ctx context.Context) (Store, error)

// ErrHandleClosed is returned by Get after Close.
var ErrHandleClosed = errors.New("store: handle closed")

// Handle owns the process' database connection. The connection is opened
// lazily on first use. Concurrent callers during that first open share a
// single attempt; a failed attempt is not remembered, so the next Get tries
// again.
type Handle struct {
	open  Opener
	group singleflight.Group

	mu     sync.RWMutex
	st     Store
	closed bool
}

// NewHandle returns a Handle that will call open on first use.
func NewHandle(open Opener) *Handle {
	return &Handle{open: open}
}

// Ready wraps an already opened store. Used by tests and one-shot tools.
func Ready(st Store) *Handle {
	return &Handle{st: st}
}

// Get returns the shared Store, opening it if needed.
func (h *Handle) Get(ctx context.Context) (Store, error) {
	h.mu.RLock()
	st, closed := h.st, h.closed
	h.mu.RUnlock()
	if closed {
		return nil, ErrHandleClosed
	}
	if st != nil {
		return st, nil
	}

	// The shared attempt must not die with whichever request started it.
	openCtx := context.WithoutCancel(ctx)

	v, err, _ := h.group.Do("open", func() (any, error) {
		h.mu.RLock()
		cached := h.st
		h.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		st, err := h.open(openCtx)
		if err != nil {
			return nil, err
		}

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.closed {
			_ = st.Close()
			return nil, ErrHandleClosed
		}
		h.st = st
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Store), nil
}

// Opened reports whether a connection has been established.
func (h *Handle) Opened() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.st != nil
}

// Close closes the underlying store if it was opened. Further Gets fail.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	if h.st == nil {
		return nil
	}
	err := h.st.Close()
	h.st = nil
	return err
}
