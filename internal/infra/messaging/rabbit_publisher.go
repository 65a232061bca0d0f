// Package messaging publishes revalidation events to RabbitMQ so that
// caches living outside this process can drop stale views.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"newsdesk/internal/resilience/retry"
	"newsdesk/internal/revalidate"
	pkgconfig "newsdesk/pkg/config"
)

// ErrClosed is returned by MarkStale after Close.
var ErrClosed = errors.New("rabbit publisher closed")

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string // optional; declared and bound when set
}

// ConfigFromEnv reads RABBITMQ_URL and friends. An empty URL disables publishing.
func ConfigFromEnv() Config {
	return Config{
		URL:        pkgconfig.GetEnvString("RABBITMQ_URL", ""),
		Exchange:   pkgconfig.GetEnvString("RABBITMQ_EXCHANGE", "newsdesk.revalidate"),
		RoutingKey: pkgconfig.GetEnvString("RABBITMQ_ROUTING_KEY", "revalidate"),
		QueueName:  pkgconfig.GetEnvString("RABBITMQ_QUEUE", ""),
	}
}

// Enabled reports whether a broker URL is configured.
func (c Config) Enabled() bool { return c.URL != "" }

// publishChannel is the part of *amqp.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher implements revalidate.Invalidator by publishing one
// persistent JSON message per MarkStale call.
type RabbitPublisher struct {
	mu         sync.Mutex
	conn       *amqp.Connection
	channel    publishChannel
	exchange   string
	routingKey string
	logger     *slog.Logger
	now        func() time.Time
	closed     bool
}

// Event is the message body.
type Event struct {
	Keys      []EventKey `json:"keys"`
	Paths     []string   `json:"paths"`
	Timestamp time.Time  `json:"timestamp"`
}

type EventKey struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
}

// NewRabbitPublisher dials the broker, retrying with backoff, and declares
// the exchange (and the queue, when configured).
func NewRabbitPublisher(ctx context.Context, cfg Config, logger *slog.Logger) (*RabbitPublisher, error) {
	var conn *amqp.Connection
	err := retry.WithBackoff(ctx, retry.StartupConfig("rabbitmq"), func() error {
		c, err := amqp.Dial(cfg.URL)
		if err != nil {
			return &retry.TransientError{Err: err}
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(ch, cfg); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		slog.String("exchange", cfg.Exchange),
		slog.String("queue", cfg.QueueName),
		slog.String("routing_key", cfg.RoutingKey))

	p := newPublisher(ch, cfg, logger)
	p.conn = conn
	return p, nil
}

func declare(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if cfg.QueueName == "" {
		return nil
	}
	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func newPublisher(ch publishChannel, cfg Config, logger *slog.Logger) *RabbitPublisher {
	return &RabbitPublisher{
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
		now:        time.Now,
	}
}

// MarkStale publishes keys as a single event. Consumers must treat events
// as idempotent; the same key may arrive more than once.
func (p *RabbitPublisher) MarkStale(ctx context.Context, keys ...revalidate.Key) error {
	if len(keys) == 0 {
		return nil
	}

	body, err := json.Marshal(newEvent(keys, p.now().UTC()))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    p.now(),
	})
	if err != nil {
		return fmt.Errorf("publish revalidation event: %w", err)
	}

	p.logger.Debug("published revalidation event", slog.Int("keys", len(keys)))
	return nil
}

func newEvent(keys []revalidate.Key, at time.Time) Event {
	ev := Event{
		Keys:      make([]EventKey, 0, len(keys)),
		Paths:     revalidate.Paths(keys),
		Timestamp: at,
	}
	for _, k := range keys {
		ev.Keys = append(ev.Keys, EventKey{Kind: string(k.Kind), ID: k.ID})
	}
	return ev
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
