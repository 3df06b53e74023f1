// Package source holds the HTTP plumbing shared by the upstream adapters.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const userAgent = "MindfulMe/1.0"

// ErrEmptyResponse is returned by adapters when the upstream answered but
// carried nothing usable.
var ErrEmptyResponse = errors.New("empty response")

// NewHTTPClient returns a client whose requests are abandoned after timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// GetJSON performs a GET on baseURL with query and decodes the JSON body
// into dest. Any non-2xx status is an error. errCheck, when set, sees the raw
// body first and can reject payloads that report errors in-band.
func GetJSON(ctx context.Context, client *http.Client, baseURL string, query url.Values, headers http.Header, dest any, errCheck func([]byte) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(baseURL, query), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(data, 100))
	}

	if errCheck != nil {
		if err := errCheck(data); err != nil {
			return err
		}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func buildURL(base string, query url.Values) string {
	if len(query) == 0 {
		return base
	}
	return base + "?" + query.Encode()
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
