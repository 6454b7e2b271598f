package facades

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoAPIKey is returned when a facade is used without its API key configured.
var ErrNoAPIKey = errors.New("api key is not set")

// UpstreamError carries a non-200 response from a third-party API so handlers
// can pass the status through.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
