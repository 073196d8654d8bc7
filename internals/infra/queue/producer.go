package queue

import (
	"context"
	"crypto/tls"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"ucentric_backend/internals/helpers/applog"
	"ucentric_backend/internals/middlewares/metrics"
)

const (
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
)

// Envelope is the message value written to the topic.
type Envelope struct {
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher is what services depend on; *Producer and Noop implement it.
type Publisher interface {
	Publish(ctx context.Context, event, key string, payload any) error
}

type Producer struct {
	writer *kafka.Writer
}

type ProducerConfig struct {
	Brokers  []string
	Topic    string
	Username string
	Password string
}

// NewProducer returns nil when no broker is configured; a nil *Producer skips publishing.
func NewProducer(cfg ProducerConfig) *Producer {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 || cfg.Topic == "" {
		applog.Log.Info("[QUEUE] KAFKA_BROKERS not set, events disabled")
		return nil
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}
	if cfg.Username != "" {
		w.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: cfg.Username, Password: cfg.Password},
			TLS:  &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}
	return &Producer{writer: w}
}

// Publish writes one event keyed by key. Failures are logged and returned; callers treat them as non-fatal.
func (p *Producer) Publish(ctx context.Context, event, key string, payload any) error {
	if p == nil || p.writer == nil {
		return nil
	}

	value, err := sonic.Marshal(Envelope{Event: event, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Time:    time.Now(),
		Headers: []kafka.Header{{Key: "event", Value: []byte(event)}},
	})
	metrics.EventsPublished.WithLabelValues(event, strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		applog.WithContext(ctx).WithError(err).WithField("event", event).Warn("[QUEUE] publish failed")
	}
	return err
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, string, string, any) error { return nil }

// OrNoop avoids handing services a typed-nil *Producer inside the interface.
func OrNoop(p *Producer) Publisher {
	if p == nil {
		return Noop{}
	}
	return p
}
