// Package api is the HTTP client for the WinnerWay backend. The endpoint
// paths and field names here are the compatibility surface with the
// analysis service; nothing else in the repository talks to the network.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	uploadPath  = "/api/videos/upload"
	analyzePath = "/api/videos/analyze/"
	videosPath  = "/api/videos/"
	paymentPath = "/api/payments/create-payment"

	// defaultTimeout covers the slowest expected call, a full video upload
	// followed by synchronous queueing on the backend.
	defaultTimeout = 120 * time.Second
)

// ProgressFunc receives display-only progress checkpoints during a call.
type ProgressFunc func(percent int)

// Client calls the WinnerWay backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a backend client for the given API origin.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// UploadRequest carries the multipart fields for a video upload. All values
// are already mapped to the backend vocabulary by the upload client.
type UploadRequest struct {
	VideoPath       string
	VideoMIMEType   string
	Email           string
	Name            string
	Gender          string
	DominantHand    string
	ExperienceLevel string
	StrokeToImprove string
	Handedness      string
	ShotType        string
}

// UploadVideo POSTs the multipart upload and returns the parsed result
// along with the raw response body, which the caller persists verbatim.
func (c *Client) UploadVideo(ctx context.Context, req UploadRequest) (*UploadResult, json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := createVideoPart(w, filepath.Base(req.VideoPath), req.VideoMIMEType)
	if err != nil {
		return nil, nil, fmt.Errorf("build multipart body: %w", err)
	}
	f, err := os.Open(req.VideoPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open video: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("read video: %w", err)
	}
	f.Close()

	fields := map[string]string{
		"email":             req.Email,
		"name":              req.Name,
		"gender":            req.Gender,
		"dominant_hand":     req.DominantHand,
		"experience_level":  req.ExperienceLevel,
		"stroke_to_improve": req.StrokeToImprove,
		"handedness":        req.Handedness,
		"shot_type":         req.ShotType,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, nil, fmt.Errorf("build multipart body: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, nil, fmt.Errorf("build multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, &buf)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Debug().Err(err).Dur("duration", time.Since(start)).Msg("Upload request failed")
		return nil, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	log.Debug().Int("statusCode", resp.StatusCode).Dur("duration", time.Since(start)).Msg("Upload response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, decodeError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &NetworkError{Err: err}
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	if result.VideoID == "" {
		return nil, nil, &ParseError{Err: fmt.Errorf("no video_id in response")}
	}

	return &result, body, nil
}

// AnalyzeVideo retrieves (or triggers computation of) the analysis for a
// video. token is attached as a bearer credential when non-empty. The
// checkpoint callback is display-only and fires once the response headers
// have arrived.
func (c *Client) AnalyzeVideo(ctx context.Context, videoID, token string, checkpoint ProgressFunc) (*AnalysisResponse, json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+analyzePath+videoID, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Dur("duration", time.Since(start)).Msg("Analyze request failed")
		return nil, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	log.Debug().Int("statusCode", resp.StatusCode).Dur("duration", time.Since(start)).Msg("Analyze response")

	if checkpoint != nil {
		checkpoint(50)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, decodeError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &NetworkError{Err: err}
	}

	var result AnalysisResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, nil, &ParseError{Err: err}
	}

	return &result, body, nil
}

// VideoURL resolves the playable media URL for an uploaded video.
func (c *Client) VideoURL(ctx context.Context, videoID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+videosPath+videoID, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	var result struct {
		S3URL string `json:"s3_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ParseError{Err: err}
	}
	return result.S3URL, nil
}

// PaymentRequest creates a hosted checkout session.
type PaymentRequest struct {
	Email       string `json:"email"`
	Amount      int    `json:"amount"`
	ProductName string `json:"product_name"`
}

// CreatePayment returns the hosted checkout URL for the given purchase.
// Settlement is entirely external; the client only redirects.
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	var result struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ParseError{Err: err}
	}
	if result.CheckoutURL == "" {
		return "", &ParseError{Err: fmt.Errorf("no checkout_url in response")}
	}
	return result.CheckoutURL, nil
}

// createVideoPart adds the video form part with an explicit content type;
// CreateFormFile would label it application/octet-stream.
func createVideoPart(w *multipart.Writer, filename, mimeType string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="video"; filename="%s"`, filename))
	h.Set("Content-Type", mimeType)
	return w.CreatePart(h)
}
