package intake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// MaxVideoSize is the upload size limit. Roughly one minute of phone video.
const MaxVideoSize = 25 * 1024 * 1024

// SupportedVideoExtensions maps the accepted file extensions to their MIME
// types. Anything else is rejected before a byte leaves the machine.
var SupportedVideoExtensions = map[string]string{
	".mp4": "video/mp4",
	".mov": "video/quicktime",
	".avi": "video/x-msvideo",
}

// UnsupportedFileTypeError rejects a file whose type is not an accepted
// video format.
type UnsupportedFileTypeError struct {
	Path string
}

func (e *UnsupportedFileTypeError) Error() string {
	return "Please select a valid video file (.mp4, .mov, .avi)"
}

// FileTooLargeError rejects a file over the upload size limit. Also used
// for the backend's 413 response so both layers surface the same message.
type FileTooLargeError struct {
	Size int64
}

func (e *FileTooLargeError) Error() string {
	return "File too large. Maximum size is 25MB (~1 minute of video)"
}

// LoadVideoFile stats a video on disk and returns a VideoFile, applying the
// type and size constraints.
func LoadVideoFile(path string) (*VideoFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := SupportedVideoExtensions[ext]
	if !ok {
		return nil, &UnsupportedFileTypeError{Path: path}
	}

	v := &VideoFile{
		Path:     path,
		Name:     filepath.Base(path),
		Size:     info.Size(),
		MIMEType: mimeType,
	}
	if err := CheckVideo(v); err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Str("mime_type", mimeType).
		Int64("size_bytes", info.Size()).
		Msg("Video file loaded")

	return v, nil
}

// CheckVideo re-applies the file constraints to an already-selected video.
// The upload client calls this again at submission time.
func CheckVideo(v *VideoFile) error {
	if v == nil {
		return &ValidationError{Field: "video", Message: "Please select a video file"}
	}

	allowed := false
	for _, mime := range SupportedVideoExtensions {
		if v.MIMEType == mime {
			allowed = true
			break
		}
	}
	if !allowed {
		return &UnsupportedFileTypeError{Path: v.Path}
	}

	if v.Size > MaxVideoSize {
		return &FileTooLargeError{Size: v.Size}
	}
	return nil
}
