package artwork

import (
	"context"
	"net/http"
	"time"
)

// probeTimeout bounds the single liveness probe per URL.
const probeTimeout = 5 * time.Second

// Checker reports whether a currently-referenced artwork URL is usable.
// A single bounded probe is enough: the fallback chain tolerates false
// negatives, so a transient failure only triggers a harmless repair.
type Checker struct {
	httpClient *http.Client
}

// NewChecker creates a validity checker. Pass nil to use the default
// client with the fixed probe timeout.
func NewChecker(hc *http.Client) *Checker {
	if hc == nil {
		hc = &http.Client{Timeout: probeTimeout}
	}
	return &Checker{httpClient: hc}
}

// Valid performs one GET against the URL. An empty URL, any transport
// error, or a non-200 response all count as invalid. No retries.
func (c *Checker) Valid(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}
