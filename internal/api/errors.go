package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error taxonomy for backend calls. Every variant is surfaced as an inline
// user message at the CLI boundary; only UpgradeRequiredError routes the
// user toward the purchase flow instead of a retry.

// UpgradeRequiredError is the HTTP 402 business-rule rejection: the free
// analysis has been used and the paid tier is required. Not a defect, and
// never retried automatically.
type UpgradeRequiredError struct {
	Message string
}

func (e *UpgradeRequiredError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Upgrade required for analysis"
}

// ServerError is any other non-2xx response, carrying the backend's error
// message when the body provided one.
type ServerError struct {
	StatusCode int
	StatusText string
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Server error (%d): %s", e.StatusCode, e.StatusText)
}

// NetworkError means no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Network error. Please check your connection and try again."
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError means the response body was not the JSON we expected. It is a
// server-side defect from the client's point of view and displays like one.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unexpected response from server: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// errorBody is the backend's optional error envelope. Some endpoints use
// "error", some "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// decodeError turns a non-2xx response into a typed error. A JSON body with
// a human-readable message wins; otherwise the numeric status is reported.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var eb errorBody
	msg := ""
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			msg = eb.Error
		} else if eb.Message != "" {
			msg = eb.Message
		}
	}

	if resp.StatusCode == http.StatusPaymentRequired {
		return &UpgradeRequiredError{Message: msg}
	}

	return &ServerError{
		StatusCode: resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Message:    msg,
	}
}
