package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/bdeck-ace/internal/bdeck"
	"github.com/couchcryptid/bdeck-ace/internal/domain"
	"github.com/couchcryptid/bdeck-ace/internal/observability"
)

// Extractor turns one advisory file into a deck of fix records.
type Extractor interface {
	Extract(path string) (bdeck.Deck, error)
}

// Publisher delivers finalized storm summaries downstream.
type Publisher interface {
	PublishStormStats(ctx context.Context, stats domain.StormStats) error
}

// StormResult pairs one storm's statistics with its retained track.
type StormResult struct {
	Stats domain.StormStats
	Fixes []domain.FixRecord
}

// Result holds the outcome of one processing run: per-storm results in input
// order plus the shared year-to-energy accumulation.
type Result struct {
	Storms []StormResult
	Yearly domain.YearlyACE
}

// Pipeline runs the extract-aggregate loop over a list of b-deck files.
// Files are processed strictly in order; a malformed file aborts the run.
type Pipeline struct {
	extractor Extractor
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline. Pass a nil publisher to disable summary publishing.
func New(e Extractor, pub Publisher, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		publisher: pub,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run processes the given files in order and returns the accumulated result.
// The first extraction or publishing error aborts the run.
func (p *Pipeline) Run(ctx context.Context, paths []string) (*Result, error) {
	p.logger.Info("processing run started", "files", len(paths))
	p.metrics.RunActive.Set(1)
	defer p.metrics.RunActive.Set(0)

	result := &Result{Yearly: domain.YearlyACE{}}
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		stormResult, err := p.processFile(ctx, path, result.Yearly)
		if err != nil {
			return nil, err
		}
		result.Storms = append(result.Storms, stormResult)
	}

	p.logger.Info("processing run complete", "storms", len(result.Storms), "years", len(result.Yearly))
	return result, nil
}

// processFile runs one extract-aggregate cycle and publishes the summary if
// a publisher is configured.
func (p *Pipeline) processFile(ctx context.Context, path string, yearly domain.YearlyACE) (StormResult, error) {
	start := time.Now()

	deck, err := p.extractor.Extract(path)
	if err != nil {
		return StormResult{}, fmt.Errorf("extract %s: %w", path, err)
	}
	p.metrics.FixesParsed.Add(float64(len(deck.Fixes)))
	p.metrics.DuplicateFixes.Add(float64(deck.DuplicatesDropped))

	stats := domain.AggregateFixes(deck.ATCFCode, deck.Fixes, yearly)
	for _, b := range domain.Basins {
		if v := stats.ACE.Get(b); v > 0 {
			p.metrics.EnergyAccumulated.WithLabelValues(b.String()).Add(float64(v))
		}
	}

	p.logger.Debug("storm aggregated",
		"path", path,
		"atcf_code", stats.ATCFCode,
		"fixes", len(deck.Fixes),
		"duplicates_dropped", deck.DuplicatesDropped,
		"max_wind", stats.MaxWind,
		"ace", stats.ACE.Total(),
	)

	if p.publisher != nil {
		if err := p.publisher.PublishStormStats(ctx, stats); err != nil {
			return StormResult{}, fmt.Errorf("publish %s: %w", stats.ATCFCode, err)
		}
		p.metrics.StormsPublished.Inc()
	}

	p.metrics.FilesProcessed.Inc()
	p.metrics.FileProcessingDuration.Observe(time.Since(start).Seconds())
	return StormResult{Stats: stats, Fixes: deck.Fixes}, nil
}

// FileExtractor reads b-deck files from the local filesystem.
type FileExtractor struct{}

func (FileExtractor) Extract(path string) (bdeck.Deck, error) {
	return bdeck.ExtractFile(path)
}
