package webhook

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimitError is a 429 from the frontend. RetryAfter is what the frontend
// asked for, capped at maxRetryAfter; it is reported, not honoured.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded (retry after %v)", e.RetryAfter)
}

// ClientError is a non-429 4xx.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string { return e.Message }

// ServerError is a 5xx.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

// statusError maps a response to nil (2xx) or one of the error types above.
func statusError(resp *http.Response, body []byte) error {
	switch code := resp.StatusCode; {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(resp)}
	case code >= 400 && code < 500:
		return &ClientError{StatusCode: code, Message: fmt.Sprintf("webhook client error %d: %s", code, body)}
	case code >= 500:
		return &ServerError{StatusCode: code, Message: fmt.Sprintf("webhook server error %d: %s", code, body)}
	default:
		return fmt.Errorf("unexpected status code %d: %s", code, body)
	}
}

const maxRetryAfter = time.Minute

// retryAfter reads the Retry-After header in seconds, defaulting to 5s.
func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
			return min(time.Duration(seconds)*time.Second, maxRetryAfter)
		}
	}
	return 5 * time.Second
}
