// Package analysis fetches analysis results for an uploaded video and
// caches them in the session so revisiting a result never re-triggers
// analysis.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/winnerway/winnerway-cli/internal/api"
	"github.com/winnerway/winnerway-cli/internal/progress"
	"github.com/winnerway/winnerway-cli/internal/session"
)

// State is the fetcher lifecycle. Transitions: Idle → Loading → Success or
// Failed; Retry moves Failed back to Loading. There is no other path, so
// "loading" and "failed" can never be observed together.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrNoVideoID is the terminal invalid-request state: no identifier was
// provided, so there is nothing to fetch and no network call is made.
var ErrNoVideoID = errors.New("No video ID provided")

// ErrLoadInFlight rejects a concurrent Load for the same fetcher.
var ErrLoadInFlight = errors.New("analysis request already in progress")

// Fetcher loads the analysis result for one video identifier.
type Fetcher struct {
	api     *api.Client
	session *session.Store
	videoID string
	onTick  progress.Func

	mu       sync.Mutex
	state    State
	progress int
	err      error
	result   *api.AnalysisResponse
	videoURL string
	urlDone  bool
}

// NewFetcher creates an idle fetcher for the given video identifier.
// onTick receives display-only progress checkpoints and may be nil.
func NewFetcher(apiClient *api.Client, sess *session.Store, videoID string, onTick progress.Func) *Fetcher {
	return &Fetcher{
		api:     apiClient,
		session: sess,
		videoID: videoID,
		onTick:  onTick,
		state:   StateIdle,
	}
}

// State returns the current lifecycle state.
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the failure cause when the state is Failed.
func (f *Fetcher) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Result returns the analysis payload when the state is Success.
func (f *Fetcher) Result() *api.AnalysisResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Progress returns the display progress value.
func (f *Fetcher) Progress() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.progress
}

// Load drives the fetcher to Success or Failed. A cached result short-
// circuits to Success without a network call; otherwise the analyze
// endpoint is hit once, with coarse progress checkpoints for display.
// Calling Load again after Success is a no-op; calling it while Loading
// returns ErrLoadInFlight.
func (f *Fetcher) Load(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case StateLoading:
		f.mu.Unlock()
		return ErrLoadInFlight
	case StateSuccess:
		f.mu.Unlock()
		return nil
	}

	if f.videoID == "" {
		f.state = StateFailed
		f.err = ErrNoVideoID
		f.mu.Unlock()
		return ErrNoVideoID
	}

	// Cache hit: success with no network call.
	if raw, ok := f.session.Get(session.AnalysisKey(f.videoID)); ok {
		var cached api.AnalysisResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			f.state = StateSuccess
			f.result = &cached
			f.setProgressLocked(100)
			f.mu.Unlock()
			log.Debug().Str("videoId", f.videoID).Msg("Analysis served from session cache")
			return nil
		}
		log.Warn().Str("videoId", f.videoID).Msg("Cached analysis unreadable, refetching")
	}

	f.state = StateLoading
	f.err = nil
	f.setProgressLocked(10)
	token := f.session.AuthToken()
	f.mu.Unlock()

	result, raw, err := f.api.AnalyzeVideo(ctx, f.videoID, token, func(p int) {
		f.mu.Lock()
		f.setProgressLocked(p)
		f.mu.Unlock()
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateFailed
		f.err = err
		return err
	}

	f.session.Put(session.AnalysisKey(f.videoID), raw)
	f.state = StateSuccess
	f.result = result
	f.setProgressLocked(100)
	return nil
}

// Retry re-enters Loading from Failed. It is user-paced; nothing in this
// package retries automatically, and an UpgradeRequired failure is routed
// to the purchase flow by the caller rather than retried.
func (f *Fetcher) Retry(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateFailed {
		state := f.state
		f.mu.Unlock()
		return fmt.Errorf("retry from %s state", state)
	}
	if f.videoID == "" {
		f.mu.Unlock()
		return ErrNoVideoID
	}
	f.state = StateIdle
	f.mu.Unlock()
	return f.Load(ctx)
}

// VideoURL resolves the playable media URL for the video. Best-effort: a
// failure is logged and returns "", it never fails the analysis flow.
func (f *Fetcher) VideoURL(ctx context.Context) string {
	f.mu.Lock()
	if f.urlDone || f.videoID == "" {
		url := f.videoURL
		f.mu.Unlock()
		return url
	}
	f.mu.Unlock()

	url, err := f.api.VideoURL(ctx, f.videoID)
	if err != nil {
		log.Warn().Err(err).Str("videoId", f.videoID).Msg("Failed to fetch video URL")
		url = ""
	}

	f.mu.Lock()
	f.videoURL = url
	f.urlDone = true
	f.mu.Unlock()
	return url
}

func (f *Fetcher) setProgressLocked(p int) {
	f.progress = p
	if f.onTick != nil {
		f.onTick(p)
	}
}
