package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/quake-alert-etl/internal/config"
	"github.com/couchcryptid/quake-alert-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Reader consumes raw quake messages from a Kafka topic.
// It implements pipeline.BatchExtractor.
type Reader struct {
	reader        *kafkago.Reader
	logger        *slog.Logger
	flushInterval time.Duration
}

// NewReader creates a Kafka consumer for the configured source topic.
// Offsets are committed explicitly through RawEvent.Commit, not on fetch.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		GroupID:  cfg.KafkaGroupID,
		Topic:    cfg.KafkaSourceTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Reader{reader: r, logger: logger, flushInterval: cfg.BatchFlushInterval}
}

// ExtractBatch fetches up to batchSize messages. The first fetch blocks until
// a message arrives or ctx is cancelled; subsequent fetches wait at most the
// flush interval so a partial batch is returned instead of stalling.
func (r *Reader) ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error) {
	first, err := r.reader.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}

	batch := make([]domain.RawEvent, 0, batchSize)
	batch = append(batch, r.toRawEvent(first))

	for len(batch) < batchSize {
		fetchCtx, cancel := context.WithTimeout(ctx, r.flushInterval)
		msg, err := r.reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			if ctx.Err() != nil {
				// batch already holds fetched messages, let the caller process them
				break
			}
			return batch, err
		}
		batch = append(batch, r.toRawEvent(msg))
	}

	return batch, nil
}

func (r *Reader) Close() error {
	return r.reader.Close()
}

// toRawEvent binds a commit closure for this reader's consumer group to the
// mapped message.
func (r *Reader) toRawEvent(msg kafkago.Message) domain.RawEvent {
	raw := mapMessageToRawEvent(msg)
	raw.Commit = func(ctx context.Context) error {
		return r.reader.CommitMessages(ctx, msg)
	}
	return raw
}

// mapMessageToRawEvent converts a Kafka message into a domain RawEvent.
func mapMessageToRawEvent(msg kafkago.Message) domain.RawEvent {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return domain.RawEvent{
		Key:       msg.Key,
		Value:     msg.Value,
		Headers:   headers,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Time,
	}
}
