// Package upload submits a validated intake form to the backend as a
// multipart request and persists the result into the session store.
package upload

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/winnerway/winnerway-cli/internal/api"
	"github.com/winnerway/winnerway-cli/internal/intake"
	"github.com/winnerway/winnerway-cli/internal/progress"
	"github.com/winnerway/winnerway-cli/internal/session"
)

// Synthetic upload progress: starts at 10, then +10 every 500ms, holding at
// 90 until the real response lands.
const (
	progressStart    = 10
	progressCap      = 90
	progressStep     = 10
	progressInterval = 500 * time.Millisecond
)

// ErrUploadInFlight rejects a second Submit while one is outstanding. The
// submit control stays disabled during flight, so hitting this means a
// caller bypassed the UI guard.
var ErrUploadInFlight = errors.New("an upload is already in progress")

// Client performs intake form submissions.
type Client struct {
	api      *api.Client
	session  *session.Store
	onTick   progress.Func
	interval time.Duration

	mu       sync.Mutex
	inFlight bool
}

// New creates an upload client. onTick receives synthetic progress updates
// and may be nil.
func New(apiClient *api.Client, sess *session.Store, onTick progress.Func) *Client {
	return &Client{
		api:      apiClient,
		session:  sess,
		onTick:   onTick,
		interval: progressInterval,
	}
}

// Submit validates the form, uploads the video, and on success persists the
// auth token and the upload result into the session. At most one submission
// is in flight at a time; validation failures never reach the network.
func (c *Client) Submit(ctx context.Context, form *intake.Form) (*api.UploadResult, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrUploadInFlight
	}
	c.inFlight = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	if err := form.Validate(); err != nil {
		return nil, err
	}
	// File constraints are re-checked at submission even though selection
	// already applied them.
	if err := intake.CheckVideo(form.Video); err != nil {
		return nil, err
	}

	ticker := progress.StartTicker(progressStart, progressCap, progressStep, c.interval, c.onTick)

	result, raw, err := c.api.UploadVideo(ctx, buildRequest(form))
	if err != nil {
		ticker.Stop(0)
		var srvErr *api.ServerError
		if errors.As(err, &srvErr) && srvErr.StatusCode == http.StatusRequestEntityTooLarge {
			return nil, &intake.FileTooLargeError{Size: form.Video.Size}
		}
		return nil, err
	}
	ticker.Stop(100)

	if result.AuthToken != "" {
		c.session.SetAuthToken(result.AuthToken)
	}
	c.session.Put(session.VideoKey(result.VideoID), raw)

	log.Info().
		Str("videoId", result.VideoID).
		Str("status", result.Status).
		Bool("newUser", result.UserInfo.IsNewUser).
		Msg("Video uploaded")

	return result, nil
}

// buildRequest maps the intake form to the backend's upload vocabulary.
func buildRequest(form *intake.Form) api.UploadRequest {
	gender := "male"
	if form.Gender == intake.GenderWomen {
		gender = "female"
	}

	// Backhand and its variant collapse into a single stroke token.
	stroke := string(form.Stroke)
	if form.Stroke == intake.StrokeBackhand {
		if form.Backhand == intake.BackhandOneHanded {
			stroke = "backhand_1h"
		} else {
			stroke = "backhand_2h"
		}
	}

	// Display name is the local part of the email.
	name := form.Email
	if at := strings.Index(form.Email, "@"); at >= 0 {
		name = form.Email[:at]
	}

	return api.UploadRequest{
		VideoPath:       form.Video.Path,
		VideoMIMEType:   form.Video.MIMEType,
		Email:           form.Email,
		Name:            name,
		Gender:          gender,
		DominantHand:    string(form.Hand),
		ExperienceLevel: string(form.Experience),
		StrokeToImprove: stroke,
		Handedness:      string(form.Hand),
		ShotType:        stroke,
	}
}
