// Package store holds the single per-process dataset session. The dataset
// itself is immutable after load; the store only swaps or clears the
// reference, so readers always see a complete snapshot.
package store

import (
	"sync"

	"github.com/funnelmetrics/funnel-go/internal/models"
)

type Session struct {
	mu sync.RWMutex
	ds *models.Dataset
}

func NewSession() *Session { return &Session{} }

// Replace installs a fully loaded dataset. Callers only reach this after a
// successful load, which is what keeps a failed re-upload from corrupting
// the previous dataset.
func (s *Session) Replace(ds *models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = ds
}

// Reset discards the current dataset and all derived state with it.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = nil
}

// Dataset returns the current snapshot, or nil when nothing is loaded.
func (s *Session) Dataset() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}
