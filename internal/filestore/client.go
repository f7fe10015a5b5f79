// Package filestore communicates with the file storage HTTP API.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client communicates with the filestore HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	ttl        time.Duration
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, ttl time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		ttl:     ttl,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// signRequest is the body for POST /files/sign.
type signRequest struct {
	Path       string `json:"path"`
	TTLSeconds int    `json:"ttl_seconds"`
}

// signResponse is the response from POST /files/sign.
type signResponse struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// SignedURL asks the filestore for a time-limited URL granting read access
// to the file at path. Each URL is single-use from the assembler's point of
// view; nothing is cached.
func (c *Client) SignedURL(ctx context.Context, path string) (string, error) {
	body, err := json.Marshal(signRequest{Path: path, TTLSeconds: int(c.ttl.Seconds())})
	if err != nil {
		return "", fmt.Errorf("marshal sign request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/sign", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sign url %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("sign url %s: status %d: %s", path, resp.StatusCode, string(respBody))
	}

	var signed signResponse
	if err := json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return "", fmt.Errorf("decode sign response: %w", err)
	}
	if signed.URL == "" {
		return "", fmt.Errorf("sign url %s: empty url in response", path)
	}
	return signed.URL, nil
}

// Close releases any resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
