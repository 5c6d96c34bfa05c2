package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/quake-alert-etl/internal/alert"
	"github.com/couchcryptid/quake-alert-etl/internal/config"
	"github.com/couchcryptid/quake-alert-etl/internal/domain"
	"github.com/couchcryptid/quake-alert-etl/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces parsed quake events to the sink topic and, when an alert
// topic is configured, human-readable bulletins alongside them.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer      *kafkago.Writer
	alertWriter *kafkago.Writer
	formatter   *alert.Formatter
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewWriter creates a Kafka producer for the configured sink topic. If
// cfg.KafkaAlertTopic is set, bulletins are published there as well.
func NewWriter(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	w := &Writer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaSinkTopic,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireAll,
		},
		logger:  logger,
		metrics: metrics,
	}
	if cfg.KafkaAlertTopic != "" {
		w.alertWriter = &kafkago.Writer{
			Addr:         kafkago.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaAlertTopic,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireAll,
		}
		w.formatter = alert.NewFormatter()
	}
	return w
}

// LoadBatch serializes and publishes multiple quake events to the sink topic
// in a single WriteMessages call, then publishes bulletins for the batch.
func (w *Writer) LoadBatch(ctx context.Context, events []domain.QuakeEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(events))
	for i := range events {
		msg, err := serializeToMessage(events[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	return w.publishAlerts(ctx, events)
}

// publishAlerts writes one bulletin per event to the alert topic. Bulletin
// formatting failures are logged and skipped so a single bad event cannot
// block the batch.
func (w *Writer) publishAlerts(ctx context.Context, events []domain.QuakeEvent) error {
	if w.alertWriter == nil {
		return nil
	}
	msgs := make([]kafkago.Message, 0, len(events))
	for i := range events {
		text, err := w.formatter.Format(events[i])
		if err != nil {
			w.logger.Warn("bulletin format failed, skipping alert", "error", err, "event_id", events[i].ID)
			continue
		}
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(events[i].ID),
			Value: []byte(text),
			Headers: []kafkago.Header{
				{Key: "content_type", Value: []byte("text/plain; charset=utf-8")},
			},
		})
	}
	if len(msgs) == 0 {
		return nil
	}
	if err := w.alertWriter.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	w.metrics.AlertsPublished.Add(float64(len(msgs)))
	return nil
}

func (w *Writer) Close() error {
	err := w.writer.Close()
	if w.alertWriter != nil {
		err = errors.Join(err, w.alertWriter.Close())
	}
	return err
}

// serializeToMessage marshals a QuakeEvent into a Kafka message keyed by
// event ID.
func serializeToMessage(event domain.QuakeEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize quake event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "place_name", Value: []byte(event.PlaceName)},
			{Key: "processed_at", Value: []byte(event.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}
