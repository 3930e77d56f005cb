package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxResponseBody caps how much of an error body is kept for logging.
const maxResponseBody = 64 << 10

// NetHTTPAdapter is the standard HTTP adapter implementation using net/http package.
type NetHTTPAdapter struct {
	client *http.Client
}

// Ensure NetHTTPAdapter implements HTTPAdapter interface
var _ HTTPAdapter = (*NetHTTPAdapter)(nil)

// NewNetHTTPAdapter creates a new NetHTTPAdapter instance.
// A zero timeout leaves the deadline to the context.
func NewNetHTTPAdapter(timeout time.Duration) HTTPAdapter {
	return &NetHTTPAdapter{
		client: &http.Client{Timeout: timeout},
	}
}

// Send executes the request. Caller headers are applied first so the
// request's own headers always win.
func (h *NetHTTPAdapter) Send(ctx context.Context, req *Request, clientHeaders http.Header) (*HTTPResponse, error) {
	if req == nil {
		return nil, errors.New("failed to create request: nil request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, strings.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if req.ForwardClientHeaders {
		for key, values := range clientHeaders {
			for _, value := range values {
				httpReq.Header.Add(key, value)
			}
		}
	}
	for _, header := range req.Headers {
		httpReq.Header.Set(header[0], header[1])
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &HTTPResponse{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Body:   body,
	}, nil
}
