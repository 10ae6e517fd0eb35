package transport

import (
	"fmt"
	"net/http"
	"time"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// retryDoer wraps HTTPDoer and retries transport level failures: connection
// resets, tls errors, timeouts. Responses carrying an error status code are
// returned as is and never retried here.
type retryDoer struct {
	doer       HTTPDoer
	maxRetries int
	backoff    time.Duration
}

// NewRetryDoer creates a retrying HTTPDoer. Each attempt N waits N*backoff
// before executing, so the delays grow linearly.
func NewRetryDoer(doer HTTPDoer, maxRetries int, backoff time.Duration) HTTPDoer {
	return &retryDoer{
		doer:       doer,
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// Do executes http request, retrying failed attempts.
func (d *retryDoer) Do(r *http.Request) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-r.Context().Done():
				return nil, r.Context().Err()
			case <-time.After(time.Duration(attempt) * d.backoff):
			}
		}

		resp, err := d.doer.Do(r)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", d.maxRetries, lastErr)
}
