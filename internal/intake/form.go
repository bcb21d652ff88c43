// Package intake models the analysis intake form: the player profile
// fields, the selected video, and the validation rules that gate an upload.
//
// Validation is deliberately permissive where the product is permissive:
// an email only needs to contain both "@" and ".", since low friction beats
// strict RFC correctness for a lead-capture form.
package intake

import "strings"

// Stroke is the stroke type the player wants analyzed.
type Stroke string

const (
	StrokeForehand Stroke = "forehand"
	StrokeBackhand Stroke = "backhand"
)

// BackhandVariant distinguishes one-handed and two-handed backhands.
// Required iff the stroke is a backhand.
type BackhandVariant string

const (
	BackhandOneHanded BackhandVariant = "1h"
	BackhandTwoHanded BackhandVariant = "2h"
)

// Hand is the player's dominant hand.
type Hand string

const (
	HandRighty Hand = "righty"
	HandLefty  Hand = "lefty"
)

// Experience is the player's self-reported level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Gender matches the tour the player is compared against.
type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
)

// VideoFile describes the selected stroke video.
type VideoFile struct {
	Path     string
	Name     string
	Size     int64
	MIMEType string
}

// Form is the intake form state. Zero values mean "not selected".
type Form struct {
	Email      string
	Stroke     Stroke
	Backhand   BackhandVariant
	Hand       Hand
	Experience Experience
	Gender     Gender
	Video      *VideoFile
}

// ValidationError reports the first failing intake rule. It is always
// recoverable by correcting input and never reaches the network layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidEmail reports whether the address passes the product's intentionally
// loose check: it must contain both "@" and ".".
func ValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// Validate checks the form and returns the first failing rule as a
// *ValidationError, or nil when the form is ready to submit. Rule order is
// fixed; the first failure wins for the displayed message.
func (f *Form) Validate() error {
	if f.Video == nil {
		return &ValidationError{Field: "video", Message: "Please select a video file"}
	}
	if f.Email == "" || !ValidEmail(f.Email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address (must contain @ and .)"}
	}
	if f.Gender == "" {
		return &ValidationError{Field: "gender", Message: "Please select gender"}
	}
	if f.Hand == "" {
		return &ValidationError{Field: "hand", Message: "Please select your handedness"}
	}
	if f.Experience == "" {
		return &ValidationError{Field: "experience", Message: "Please select your experience level"}
	}
	if f.Stroke == "" {
		return &ValidationError{Field: "stroke", Message: "Please select the shot type"}
	}
	if f.Stroke == StrokeBackhand && f.Backhand == "" {
		return &ValidationError{Field: "backhand", Message: "Please select backhand type (1H or 2H)"}
	}
	return nil
}

// FieldsComplete reports whether every field except the video is filled in.
// The file picker is gated on this: a video cannot be selected until the
// rest of the form is complete.
func (f *Form) FieldsComplete() bool {
	if f.Email == "" || !ValidEmail(f.Email) {
		return false
	}
	if f.Gender == "" || f.Hand == "" || f.Experience == "" || f.Stroke == "" {
		return false
	}
	if f.Stroke == StrokeBackhand && f.Backhand == "" {
		return false
	}
	return true
}

// PickerGateMessage is shown when the picker is opened or a file is dropped
// while the rest of the form is incomplete.
const PickerGateMessage = "Please complete all form fields before uploading a video"
