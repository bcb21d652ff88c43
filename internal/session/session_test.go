package session

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestStore_PutGetVerbatim(t *testing.T) {
	s := New()
	payload := json.RawMessage(`{"video_id":"v1","status":"uploaded"}`)

	s.Put(VideoKey("v1"), payload)

	got, ok := s.Get(VideoKey("v1"))
	if !ok {
		t.Fatal("expected payload under video_v1")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload mutated: %s", got)
	}
}

func TestStore_PutCopiesPayload(t *testing.T) {
	s := New()
	payload := json.RawMessage(`{"a":1}`)
	s.Put("k", payload)

	payload[2] = 'x' // caller scribbles on the original

	got, _ := s.Get("k")
	if string(got) != `{"a":1}` {
		t.Errorf("stored payload affected by caller mutation: %s", got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := New()
	if _, ok := s.Get(AnalysisKey("nope")); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestStore_OverwriteReplacesValue(t *testing.T) {
	s := New()
	s.Put("k", json.RawMessage(`{"v":1}`))
	s.Put("k", json.RawMessage(`{"v":2}`))

	got, _ := s.Get("k")
	if string(got) != `{"v":2}` {
		t.Errorf("expected latest value, got %s", got)
	}
}

func TestStore_AuthToken(t *testing.T) {
	s := New()
	if s.AuthToken() != "" {
		t.Fatal("expected empty token on a fresh store")
	}

	s.SetAuthToken("tok-123")
	if got := s.AuthToken(); got != "tok-123" {
		t.Errorf("token = %q, want tok-123", got)
	}
}

func TestStore_FreshIdentifiers(t *testing.T) {
	a, b := New(), New()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct non-empty session IDs, got %q and %q", a.ID(), b.ID())
	}
}

func TestKeys(t *testing.T) {
	if got := VideoKey("abc"); got != "video_abc" {
		t.Errorf("VideoKey = %q", got)
	}
	if got := AnalysisKey("abc"); got != "analysis_abc" {
		t.Errorf("AnalysisKey = %q", got)
	}
}
