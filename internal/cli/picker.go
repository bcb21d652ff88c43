package cli

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrPickerCanceled means the user dismissed the file dialog.
var ErrPickerCanceled = errors.New("file selection canceled")

// PickVideoFile opens the native file dialog filtered to the accepted video
// formats. Callers gate this on form completeness; the dialog must not open
// while the rest of the intake form is incomplete.
func PickVideoFile() (string, error) {
	selected, err := zenity.SelectFile(
		zenity.Title("Select your stroke video"),
		zenity.FileFilters{
			{Name: "Video files", Patterns: []string{"*.mp4", "*.mov", "*.avi"}},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrPickerCanceled
		}
		return "", err
	}
	return selected, nil
}
