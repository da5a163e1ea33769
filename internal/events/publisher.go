package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"memberdesk/internal/logger"
	"memberdesk/internal/metrics"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const (
	PaymentRecorded      = "payment.recorded"
	AttendanceCheckedIn  = "attendance.checked_in"
	AttendanceCheckedOut = "attendance.checked_out"
	DefaultExchange      = "memberdesk.events"
	dialTimeout          = 10 * time.Second
	publishTimeout       = 5 * time.Second
	exchangeKind         = "topic"
)

// Event is the envelope every message is published in.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	TenantID   string      `json:"tenant_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey, tenantID string, data interface{}) error
	Close()
}

// Connect returns an AMQP publisher, or the logging fallback when url is
// empty or the broker cannot be reached.
func Connect(amqpURL, exchange string) Publisher {
	if strings.TrimSpace(amqpURL) == "" {
		logger.Info("AMQP_URL not set, domain events will only be logged")
		return LogPublisher{}
	}

	p, err := NewAMQPPublisher(amqpURL, exchange)
	if err != nil {
		logger.Warn("rabbitmq unavailable, using logging publisher", "error", err)
		return LogPublisher{}
	}
	logger.Info("rabbitmq publisher ready", "exchange", p.exchange)
	return p
}

func newEvent(routingKey, tenantID string, data interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       routingKey,
		TenantID:   tenantID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// channel is the subset of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	exchange string
	conn     *amqp091.Connection
	reopen   func() (channel, error)

	mu sync.Mutex
	ch channel
}

func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	clean, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp091.DialConfig(clean, amqp091.Config{Dial: amqp091.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	reopen := func() (channel, error) {
		return conn.Channel()
	}
	p, err := newAMQPPublisher(exchange, reopen)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(exchange string, reopen func() (channel, error)) (*AMQPPublisher, error) {
	ch, err := reopen()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := declare(ch, exchange); err != nil {
		ch.Close()
		return nil, err
	}
	return &AMQPPublisher{exchange: exchange, reopen: reopen, ch: ch}, nil
}

func declare(ch channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey, tenantID string, data interface{}) error {
	body, err := json.Marshal(newEvent(routingKey, tenantID, data))
	if err != nil {
		metrics.RecordEvent(routingKey, "error")
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err != nil {
		// one retry on a fresh channel; a closed channel is the usual cause
		logger.Warn("event publish failed, reopening channel", "routing_key", routingKey, "error", err)
		if ch, reopenErr := p.reopen(); reopenErr == nil {
			if declare(ch, p.exchange) == nil {
				p.ch.Close()
				p.ch = ch
				err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
			} else {
				ch.Close()
			}
		}
	}

	if err != nil {
		metrics.RecordEvent(routingKey, "error")
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	metrics.RecordEvent(routingKey, "published")
	return nil
}

func (p *AMQPPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// LogPublisher records events in the log only.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, routingKey, tenantID string, data interface{}) error {
	logger.Info("event", "routing_key", routingKey, "tenant_id", tenantID, "data", data)
	metrics.RecordEvent(routingKey, "logged")
	return nil
}

func (LogPublisher) Close() {}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), `"'`)
	u, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("parse AMQP_URL: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP_URL scheme must be amqp:// or amqps://")
	}
	return clean, nil
}

// Emit publishes after the caller's work has committed. Failures are logged
// and never returned.
func Emit(ctx context.Context, p Publisher, routingKey, tenantID string, data interface{}) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.Publish(ctx, routingKey, tenantID, data); err != nil {
		logger.Warn("event dropped", "routing_key", routingKey, "tenant_id", tenantID, "error", err)
	}
}
