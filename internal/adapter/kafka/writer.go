// Package kafka publishes storm summaries to a Kafka sink topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/bdeck-ace/internal/config"
	"github.com/couchcryptid/bdeck-ace/internal/domain"
)

// Writer produces storm summary messages to a Kafka topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishStormStats serializes one finalized storm summary and publishes it
// to the sink topic.
func (w *Writer) PublishStormStats(ctx context.Context, stats domain.StormStats) error {
	msg, err := serializeToMessage(stats)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals StormStats into a Kafka message keyed by the
// storm's ATCF code.
func serializeToMessage(stats domain.StormStats) (kafkago.Message, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize storm stats: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(stats.ATCFCode),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "atcf_code", Value: []byte(stats.ATCFCode)},
			{Key: "processed_at", Value: []byte(stats.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}
