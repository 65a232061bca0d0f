// Package webhook delivers revalidation requests to an external frontend over
// HTTP, so pages it renders from its own cache are refreshed after a write.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"newsdesk/internal/revalidate"
	pkgconfig "newsdesk/pkg/config"
)

// Config contains configuration for the revalidation webhook.
type Config struct {
	// URL receives a POST per revalidation. Empty disables the webhook.
	URL string

	// Token is sent as X-Revalidate-Token so the frontend can reject strangers.
	Token string

	// Timeout bounds the single delivery attempt, rate limiter wait included.
	Timeout time.Duration

	// RatePerSecond and Burst size the token bucket shared by all requests.
	RatePerSecond float64
	Burst         int
}

// ConfigFromEnv reads REVALIDATE_WEBHOOK_URL, REVALIDATE_WEBHOOK_TOKEN and
// REVALIDATE_WEBHOOK_TIMEOUT.
func ConfigFromEnv() Config {
	return Config{
		URL:           pkgconfig.GetEnvString("REVALIDATE_WEBHOOK_URL", ""),
		Token:         pkgconfig.GetEnvString("REVALIDATE_WEBHOOK_TOKEN", ""),
		Timeout:       pkgconfig.GetEnvDurationIn("REVALIDATE_WEBHOOK_TIMEOUT", 5*time.Second, time.Second, time.Minute),
		RatePerSecond: 5,
		Burst:         10,
	}
}

func (c Config) Enabled() bool { return c.URL != "" }

// Payload is the JSON body POSTed to the frontend.
type Payload struct {
	RequestID string    `json:"requestId"`
	Paths     []string  `json:"paths"`
	Keys      []string  `json:"keys"`
	Timestamp time.Time `json:"timestamp"`
}

// Invalidator posts stale paths to the configured URL. It satisfies
// revalidate.Invalidator.
type Invalidator struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	now        func() time.Time
}

// New creates an Invalidator. A zero Burst falls back to 1.
func New(cfg Config, logger *slog.Logger) *Invalidator {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	return &Invalidator{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, cfg.Burst),
		logger:     logger,
		now:        time.Now,
	}
}

// MarkStale sends one request covering every key. Delivery is attempted
// once: a failed revalidation is reported, never retried.
func (i *Invalidator) MarkStale(ctx context.Context, keys ...revalidate.Key) error {
	if len(keys) == 0 {
		return nil
	}
	if i.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.config.Timeout)
		defer cancel()
	}

	payload := Payload{
		RequestID: uuid.New().String(),
		Paths:     revalidate.Paths(keys),
		Keys:      make([]string, len(keys)),
		Timestamp: i.now().UTC(),
	}
	for n, k := range keys {
		payload.Keys[n] = k.String()
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	if err := i.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}
	if err := i.send(ctx, payload.RequestID, body); err != nil {
		return fmt.Errorf("revalidation webhook %s: %w", payload.RequestID, err)
	}
	i.logger.Debug("revalidation webhook delivered", slog.String("request_id", payload.RequestID))
	return nil
}

func (i *Invalidator) send(ctx context.Context, requestID string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.config.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if i.config.Token != "" {
		req.Header.Set("X-Revalidate-Token", i.config.Token)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return statusError(resp, respBody)
}
