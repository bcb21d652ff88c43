// Package session holds tab-scoped client state: the bearer token handed
// back by the upload endpoint and the last-known payloads keyed by video
// identifier. The store lives for the process lifetime and is discarded on
// exit; there is no TTL and no eviction, which is fine for the one or two
// entries a single session produces.
package session

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// VideoKey is the storage key for an upload result.
func VideoKey(videoID string) string {
	return "video_" + videoID
}

// AnalysisKey is the storage key for an analysis result.
func AnalysisKey(videoID string) string {
	return "analysis_" + videoID
}

// Store is the session-scoped key/value store. Writes are whole-value
// replacements, so a reader never observes a partially written payload.
type Store struct {
	mu      sync.RWMutex
	id      string
	token   string
	entries map[string]json.RawMessage
}

// New creates an empty session store with a fresh session identifier.
func New() *Store {
	return &Store{
		id:      uuid.NewString(),
		entries: make(map[string]json.RawMessage),
	}
}

// ID returns the opaque session identifier, used for log correlation.
func (s *Store) ID() string {
	return s.id
}

// SetAuthToken stores the session's bearer token.
func (s *Store) SetAuthToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// AuthToken returns the session's bearer token, or "" if none was issued.
func (s *Store) AuthToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Put stores a payload verbatim under key, replacing any previous value.
func (s *Store) Put(key string, payload json.RawMessage) {
	cp := make(json.RawMessage, len(payload))
	copy(cp, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = cp
}

// Get returns the payload stored under key, or ok=false when absent.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.entries[key]
	return payload, ok
}
