// Package drills steps through the personalized training drills attached
// to an analysis result.
package drills

import (
	"encoding/json"
	"errors"

	"github.com/winnerway/winnerway-cli/internal/api"
	"github.com/winnerway/winnerway-cli/internal/session"
)

// ErrNoDrills is the terminal no-drills state: the cache entry is absent or
// the analysis carries an empty drills list.
var ErrNoDrills = errors.New("No personalized drills found for this analysis.")

// Navigator is an ordered, zero-indexed cursor over a drills list. Next and
// Previous are no-ops at the ends; it never errors once constructed.
type Navigator struct {
	drills []api.Drill
	index  int
}

// NewNavigator creates a navigator positioned on the first drill.
func NewNavigator(drillList []api.Drill) (*Navigator, error) {
	if len(drillList) == 0 {
		return nil, ErrNoDrills
	}
	return &Navigator{drills: drillList}, nil
}

// ForVideo builds a navigator from the session-cached analysis for a video.
func ForVideo(sess *session.Store, videoID string) (*Navigator, error) {
	raw, ok := sess.Get(session.AnalysisKey(videoID))
	if !ok {
		return nil, ErrNoDrills
	}
	var res api.AnalysisResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, ErrNoDrills
	}
	return NewNavigator(res.Analysis.PersonalizedDrills)
}

// Current returns the drill under the cursor.
func (n *Navigator) Current() api.Drill {
	return n.drills[n.index]
}

// Index returns the zero-based cursor position.
func (n *Navigator) Index() int {
	return n.index
}

// Count returns the number of drills.
func (n *Navigator) Count() int {
	return len(n.drills)
}

// Next advances the cursor. Returns false (and stays put) on the last drill.
func (n *Navigator) Next() bool {
	if n.index >= len(n.drills)-1 {
		return false
	}
	n.index++
	return true
}

// Previous moves the cursor back. Returns false on the first drill.
func (n *Navigator) Previous() bool {
	if n.index <= 0 {
		return false
	}
	n.index--
	return true
}

// JumpTo moves the cursor to i. Out-of-range indices are rejected.
func (n *Navigator) JumpTo(i int) bool {
	if i < 0 || i >= len(n.drills) {
		return false
	}
	n.index = i
	return true
}

// Restart resets the cursor to the first drill.
func (n *Navigator) Restart() {
	n.index = 0
}

// IsFirst reports whether the cursor is on the first drill.
func (n *Navigator) IsFirst() bool {
	return n.index == 0
}

// IsLast reports whether the cursor is on the last drill.
func (n *Navigator) IsLast() bool {
	return n.index == len(n.drills)-1
}

// Progress returns completion percent: (cursor+1)/count.
func (n *Navigator) Progress() float64 {
	return float64(n.index+1) / float64(len(n.drills)) * 100
}
