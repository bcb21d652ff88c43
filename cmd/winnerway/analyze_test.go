package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/winnerway/winnerway-cli/internal/intake"
)

func TestSelectVideo_FlagGatedOnFormCompleteness(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swing.mp4")
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("write video: %v", err)
	}

	orig := videoFlag
	videoFlag = path
	defer func() { videoFlag = orig }()

	// Incomplete form: the flag path must refuse the file too.
	form := &intake.Form{Email: "player@example.com"}
	err := selectVideo(form)
	if err == nil || err.Error() != intake.PickerGateMessage {
		t.Fatalf("expected gate message, got %v", err)
	}
	if form.Video != nil {
		t.Fatal("video registered on an incomplete form")
	}

	// Complete form: the flagged file attaches without the picker.
	form = &intake.Form{
		Email:      "player@example.com",
		Stroke:     intake.StrokeForehand,
		Hand:       intake.HandRighty,
		Experience: intake.ExperienceIntermediate,
		Gender:     intake.GenderMen,
	}
	if err := selectVideo(form); err != nil {
		t.Fatalf("selectVideo: %v", err)
	}
	if form.Video == nil || form.Video.Name != "swing.mp4" {
		t.Fatalf("video not attached: %+v", form.Video)
	}
}
