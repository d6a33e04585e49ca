//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/bdeck-ace/internal/adapter/kafka"
	"github.com/couchcryptid/bdeck-ace/internal/config"
	"github.com/couchcryptid/bdeck-ace/internal/domain"
	"github.com/couchcryptid/bdeck-ace/internal/observability"
	"github.com/couchcryptid/bdeck-ace/internal/pipeline"
)

const testSinkTopic = "test-ace-summaries"

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readSummary(ctx context.Context, t *testing.T, consumer *kafkago.Reader) (domain.StormStats, kafkago.Message) {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from sink topic")

	var stats domain.StormStats
	require.NoError(t, json.Unmarshal(msg.Value, &stats), "unmarshal summary")
	return stats, msg
}

// TestWriterPublish verifies the adapter layer: kafka.Writer round-trips a
// storm summary through a real broker with its key and headers intact.
func TestWriterPublish(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSinkTopic)

	cfg := &config.Config{
		KafkaBrokers:   []string{broker},
		KafkaSinkTopic: testSinkTopic,
	}

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	stats := domain.StormStats{
		ATCFCode:    "WP01",
		MaxWind:     65,
		ACE:         domain.PerBasinACE{WPAC: 4225},
		ProcessedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, writer.PublishStormStats(ctx, stats))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	got, msg := readSummary(ctx, t, consumer)
	assert.Equal(t, "WP01", string(msg.Key))
	assert.Equal(t, stats, got)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "WP01", headers["atcf_code"])
	_, err := time.Parse(time.RFC3339, headers["processed_at"])
	assert.NoError(t, err, "processed_at should be valid RFC3339")
}

// TestPipelinePublishEndToEnd runs the full path: b-deck file on disk →
// extractor → aggregation → Kafka sink.
func TestPipelinePublishEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSinkTopic)

	cfg := &config.Config{
		KafkaBrokers:   []string{broker},
		KafkaSinkTopic: testSinkTopic,
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bwp012023.dat")
	data := "WP, 01, 2023091200,   , BEST,   0, 150N, 1400E,  65, 1002, TS\n" +
		"WP, 01, 2023091206,   , BEST,   0, 155N, 1395E,  70, 0998, TS\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(pipeline.FileExtractor{}, writer, discardLogger(), observability.NewMetricsForTesting())
	result, err := p.Run(ctx, []string{path})
	require.NoError(t, err)
	require.Len(t, result.Storms, 1)

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-sink-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	got, msg := readSummary(ctx, t, consumer)
	assert.Equal(t, "WP01", string(msg.Key))
	assert.Equal(t, "WP01", got.ATCFCode)
	assert.Equal(t, 70, got.MaxWind)
	assert.Equal(t, int64(65*65+70*70), got.ACE.WPAC)
}
