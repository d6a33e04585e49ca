// Command ace computes Accumulated Cyclone Energy from ATCF b-deck
// best-track files and prints per-storm and per-year summaries.
//
// Usage:
//
//	ace bwp012023.dat
//	ace -d /data/bdeck/2023
//	ace -d '/data/bdeck/bsh*.dat' -geojson tracks.json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpadapter "github.com/couchcryptid/bdeck-ace/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/bdeck-ace/internal/adapter/kafka"
	"github.com/couchcryptid/bdeck-ace/internal/config"
	"github.com/couchcryptid/bdeck-ace/internal/domain"
	"github.com/couchcryptid/bdeck-ace/internal/observability"
	"github.com/couchcryptid/bdeck-ace/internal/pipeline"
	"github.com/couchcryptid/bdeck-ace/internal/report"
	"github.com/couchcryptid/bdeck-ace/internal/track"
)

func main() {
	inputDir := flag.String("d", "", "directory or glob pattern of b-deck files")
	geojsonOut := flag.String("geojson", "", "write storm tracks as GeoJSON to this path")
	publish := flag.Bool("publish", false, "publish per-storm summaries to the configured Kafka topic")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	paths, err := resolveInputs(flag.Arg(0), *inputDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Println("No files found!")
		return
	}

	if err := run(cfg, logger, metrics, paths, *geojsonOut, *publish); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, paths []string, geojsonOut string, publish bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := httpadapter.NewServer(cfg.MetricsAddr, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("http server shutdown error", "error", err)
			}
		}()
	}

	var publisher pipeline.Publisher
	if publish {
		if !cfg.PublishingConfigured() {
			return errors.New("publishing requested but KAFKA_BROKERS is not set")
		}
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		publisher = writer
	}

	p := pipeline.New(pipeline.FileExtractor{}, publisher, logger, metrics)
	result, err := p.Run(ctx, paths)
	if err != nil {
		return err
	}

	stats := make([]domain.StormStats, len(result.Storms))
	for i, s := range result.Storms {
		stats[i] = s.Stats
	}
	if err := report.Write(os.Stdout, stats, result.Yearly); err != nil {
		return err
	}

	if geojsonOut != "" {
		if err := track.Export(geojsonOut, result.Storms); err != nil {
			return err
		}
		logger.Info("track geojson written", "path", geojsonOut, "storms", len(result.Storms))
	}
	return nil
}

// resolveInputs produces the input file list: a single positional file, the
// non-directory entries of a directory, or the matches of a glob pattern.
func resolveInputs(fileArg, dirArg string) ([]string, error) {
	if fileArg != "" {
		return []string{fileArg}, nil
	}
	if dirArg == "" {
		return nil, errors.New("no input: pass a FILE argument or -d DIR|GLOB")
	}

	info, statErr := os.Stat(dirArg)
	if statErr == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("not a directory: %s", dirArg)
		}
		entries, err := os.ReadDir(dirArg)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", dirArg, err)
		}
		var paths []string
		for _, e := range entries {
			if !e.IsDir() {
				paths = append(paths, filepath.Join(dirArg, e.Name()))
			}
		}
		return paths, nil
	}

	// Not statable: treat the argument as a glob pattern.
	matches, globErr := filepath.Glob(dirArg)
	if globErr != nil {
		return nil, statErr
	}
	return matches, nil
}
