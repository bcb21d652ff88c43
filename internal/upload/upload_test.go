package upload

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/winnerway/winnerway-cli/internal/api"
	"github.com/winnerway/winnerway-cli/internal/intake"
	"github.com/winnerway/winnerway-cli/internal/session"
)

func testForm(t *testing.T) *intake.Form {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swing.mp4")
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("write video: %v", err)
	}
	return &intake.Form{
		Email:      "player@example.com",
		Stroke:     intake.StrokeForehand,
		Hand:       intake.HandRighty,
		Experience: intake.ExperienceIntermediate,
		Gender:     intake.GenderWomen,
		Video: &intake.VideoFile{
			Path:     path,
			Name:     "swing.mp4",
			Size:     5,
			MIMEType: "video/mp4",
		},
	}
}

func TestSubmit_PersistsResultAndToken(t *testing.T) {
	const body = `{"video_id":"v1","filename":"swing.mp4","status":"uploaded","auth_token":"tok-1","user_info":{"email":"player@example.com","is_new_user":true}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	sess := session.New()
	client := New(api.NewClient(srv.URL), sess, nil)
	client.interval = time.Millisecond

	result, err := client.Submit(context.Background(), testForm(t))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.VideoID != "v1" {
		t.Errorf("video ID = %q", result.VideoID)
	}
	if got := sess.AuthToken(); got != "tok-1" {
		t.Errorf("auth token = %q", got)
	}
	cached, ok := sess.Get(session.VideoKey("v1"))
	if !ok {
		t.Fatal("upload result not cached under video_v1")
	}
	if string(cached) != body {
		t.Errorf("cached payload not verbatim: %s", cached)
	}
}

func TestSubmit_FieldMapping(t *testing.T) {
	var gotFields map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotFields = make(map[string]string)
		for name, values := range r.MultipartForm.Value {
			gotFields[name] = values[0]
		}
		w.Write([]byte(`{"video_id":"v1"}`))
	}))
	defer srv.Close()

	form := testForm(t)
	form.Stroke = intake.StrokeBackhand
	form.Backhand = intake.BackhandOneHanded

	client := New(api.NewClient(srv.URL), session.New(), nil)
	client.interval = time.Millisecond
	if _, err := client.Submit(context.Background(), form); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	want := map[string]string{
		"email":             "player@example.com",
		"name":              "player",
		"gender":            "female",
		"dominant_hand":     "righty",
		"handedness":        "righty",
		"experience_level":  "intermediate",
		"stroke_to_improve": "backhand_1h",
		"shot_type":         "backhand_1h",
	}
	for name, wantVal := range want {
		if gotFields[name] != wantVal {
			t.Errorf("field %s = %q, want %q", name, gotFields[name], wantVal)
		}
	}
}

func TestSubmit_TwoHandedBackhandToken(t *testing.T) {
	var gotStroke string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(32 << 20)
		gotStroke = r.FormValue("stroke_to_improve")
		w.Write([]byte(`{"video_id":"v1"}`))
	}))
	defer srv.Close()

	form := testForm(t)
	form.Stroke = intake.StrokeBackhand
	form.Backhand = intake.BackhandTwoHanded

	client := New(api.NewClient(srv.URL), session.New(), nil)
	client.interval = time.Millisecond
	if _, err := client.Submit(context.Background(), form); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotStroke != "backhand_2h" {
		t.Errorf("stroke_to_improve = %q", gotStroke)
	}
}

func TestSubmit_ValidationFailureSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"video_id":"v1"}`))
	}))
	defer srv.Close()

	form := testForm(t)
	form.Email = "bad"

	client := New(api.NewClient(srv.URL), session.New(), nil)
	_, err := client.Submit(context.Background(), form)
	var vErr *intake.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("validation failure reached the network (%d calls)", calls.Load())
	}
}

func TestSubmit_OversizedFileSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	form := testForm(t)
	form.Video.Size = intake.MaxVideoSize + 1

	client := New(api.NewClient(srv.URL), session.New(), nil)
	_, err := client.Submit(context.Background(), form)
	var sizeErr *intake.FileTooLargeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected *FileTooLargeError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("oversized file reached the network (%d calls)", calls.Load())
	}
}

func TestSubmit_413MapsToFileTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	var last atomic.Int32
	client := New(api.NewClient(srv.URL), session.New(), func(p int) { last.Store(int32(p)) })
	client.interval = time.Millisecond

	_, err := client.Submit(context.Background(), testForm(t))
	var sizeErr *intake.FileTooLargeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected *FileTooLargeError for 413, got %v", err)
	}
	if got := err.Error(); got != "File too large. Maximum size is 25MB (~1 minute of video)" {
		t.Errorf("message = %q", got)
	}
	if last.Load() != 0 {
		t.Errorf("progress not reset on failure, last tick = %d", last.Load())
	}
}

func TestSubmit_UpgradeRequiredPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"Upgrade required"}`))
	}))
	defer srv.Close()

	client := New(api.NewClient(srv.URL), session.New(), nil)
	client.interval = time.Millisecond

	_, err := client.Submit(context.Background(), testForm(t))
	var upgradeErr *api.UpgradeRequiredError
	if !errors.As(err, &upgradeErr) {
		t.Fatalf("expected *UpgradeRequiredError, got %v", err)
	}
}

func TestSubmit_RejectsConcurrentUpload(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"video_id":"v1"}`))
	}))
	defer srv.Close()
	defer close(release)

	client := New(api.NewClient(srv.URL), session.New(), nil)
	client.interval = time.Millisecond

	firstDone := make(chan error, 1)
	go func() {
		_, err := client.Submit(context.Background(), testForm(t))
		firstDone <- err
	}()

	// Wait for the first submission to take the in-flight slot.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		client.mu.Lock()
		busy := client.inFlight
		client.mu.Unlock()
		if busy {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := client.Submit(context.Background(), testForm(t)); !errors.Is(err, ErrUploadInFlight) {
		t.Fatalf("expected ErrUploadInFlight, got %v", err)
	}

	release <- struct{}{}
	if err := <-firstDone; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
}

func TestSubmit_ProgressHoldsAtCapThenCompletes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte(`{"video_id":"v1"}`))
	}))
	defer srv.Close()

	var mu sync.Mutex
	var ticks []int
	record := func(p int) {
		mu.Lock()
		ticks = append(ticks, p)
		mu.Unlock()
	}

	client := New(api.NewClient(srv.URL), session.New(), record)
	client.interval = 2 * time.Millisecond

	if _, err := client.Submit(context.Background(), testForm(t)); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(ticks) == 0 || ticks[0] != 10 {
		t.Fatalf("expected first tick 10, got %v", ticks)
	}
	if last := ticks[len(ticks)-1]; last != 100 {
		t.Errorf("expected final tick 100, got %d", last)
	}
	for _, p := range ticks[:len(ticks)-1] {
		if p > 90 {
			t.Errorf("synthetic progress exceeded cap before completion: %d", p)
		}
	}
}
