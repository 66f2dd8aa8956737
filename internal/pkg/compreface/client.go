package compreface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps the CompreFace recognition API. There is no official Go SDK,
// so this mirrors the vendor's REST surface directly.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type SubjectMatch struct {
	Subject    string  `json:"subject"`
	Similarity float64 `json:"similarity"`
}

type FaceResult struct {
	Subjects []SubjectMatch `json:"subjects"`
}

type RecognizeResponse struct {
	Result []FaceResult `json:"result"`
}

// APIError is a non-2xx reply from CompreFace.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("compreface API error [%d]: %s", e.StatusCode, e.Body)
}

// Recognize submits a base64-encoded image and returns the parsed candidate
// list, best match first per face.
func (c *Client) Recognize(ctx context.Context, imageBase64 string) (*RecognizeResponse, error) {
	payload, err := json.Marshal(map[string]string{"file": imageBase64})
	if err != nil {
		return nil, fmt.Errorf("failed to encode recognize payload: %w", err)
	}

	body, status, err := c.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &APIError{StatusCode: status, Body: string(body)}
	}

	var result RecognizeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode recognize response: %w", err)
	}
	return &result, nil
}

// RecognizeRaw submits a base64-encoded image and returns the vendor response
// verbatim, for the proxy endpoint.
func (c *Client) RecognizeRaw(ctx context.Context, imageBase64 string) (body []byte, status int, err error) {
	payload, err := json.Marshal(map[string]string{"file": imageBase64})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode recognize payload: %w", err)
	}
	return c.post(ctx, payload)
}

func (c *Client) post(ctx context.Context, payload []byte) ([]byte, int, error) {
	url := c.baseURL + "/api/v1/recognition/recognize?limit=5"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build recognize request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("compreface request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read compreface response: %w", err)
	}
	return body, resp.StatusCode, nil
}
