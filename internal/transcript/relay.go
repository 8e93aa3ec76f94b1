package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"clickconnect-backend/internal/models"
)

// HTTPRelay talks to the chat relay's POST /api/chat endpoint.
type HTTPRelay struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRelay uses http.DefaultClient when client is nil.
func NewHTTPRelay(baseURL string, client *http.Client) *HTTPRelay {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRelay{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Chat returns an error for any transport failure or non-2xx status. The
// server's error body is included in the error for local logging only.
func (c *HTTPRelay) Chat(ctx context.Context, req models.ChatRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat relay unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody models.ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			return "", fmt.Errorf("chat relay returned %d: %s", resp.StatusCode, errBody.Error)
		}
		return "", fmt.Errorf("chat relay returned %d", resp.StatusCode)
	}

	var out models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	return out.Response, nil
}
