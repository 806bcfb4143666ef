package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/UnknownOlympus/mesafe/internal/geocoding"
	"github.com/UnknownOlympus/mesafe/internal/metrics"
	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/UnknownOlympus/mesafe/internal/repository"
)

// BatchSize is the maximum number of places geocoded per poll.
const BatchSize = 100

// ErrCoordinatesOutOfRange is recorded for places whose geocoded point is not a valid coordinate.
var ErrCoordinatesOutOfRange = errors.New("geocoded coordinates out of range")

// RefreshFunc reloads the live reference table after stored coordinates changed.
type RefreshFunc func(ctx context.Context) error

// EnrichmentService periodically geocodes stored places that have no coordinates yet
// and refreshes the reference table once new coordinates are written.
type EnrichmentService struct {
	log           *slog.Logger
	repo          repository.Interface
	provider      geocoding.Provider
	providerName  string
	metrics       *metrics.Metrics
	numWorkers    int
	pollInterval  time.Duration
	addressSuffix string // appended to every name, e.g. ", Türkiye"
	refresh       RefreshFunc
}

// NewEnrichmentService creates a new EnrichmentService. refresh may be nil.
func NewEnrichmentService(
	log *slog.Logger,
	repo repository.Interface,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
	addressSuffix string,
	refresh RefreshFunc,
) *EnrichmentService {
	if numWorkers < 1 {
		numWorkers = 1
	}

	return &EnrichmentService{
		log:           log,
		repo:          repo,
		provider:      provider,
		providerName:  providerName,
		metrics:       metrics,
		numWorkers:    numWorkers,
		pollInterval:  pollInterval,
		addressSuffix: addressSuffix,
		refresh:       refresh,
	}
}

// Run polls for places to geocode until ctx is cancelled.
func (es *EnrichmentService) Run(ctx context.Context) {
	ticker := time.NewTicker(es.pollInterval)
	defer ticker.Stop()

	es.log.InfoContext(ctx, "Enrichment service started", "interval", es.pollInterval, "workers", es.numWorkers)

	for {
		select {
		case <-ctx.Done():
			es.log.InfoContext(ctx, "Enrichment service stopped")
			return
		case <-ticker.C:
			es.log.DebugContext(ctx, "Polling for places without coordinates")
			es.processBatch(ctx)
		}
	}
}

// processBatch geocodes one batch of pending places with a pool of workers and
// returns how many places received coordinates.
func (es *EnrichmentService) processBatch(ctx context.Context) int {
	pending, err := es.repo.FetchPlacesForGeocoding(ctx, BatchSize)
	if err != nil {
		es.log.ErrorContext(ctx, "Failed to fetch places for geocoding", "error", err)
		return 0
	}
	if len(pending) == 0 {
		es.log.DebugContext(ctx, "No places to geocode")
		return 0
	}

	es.log.InfoContext(ctx, "Found places to geocode, starting worker pool",
		"jobs", len(pending), "num_workers", es.numWorkers)

	jobs := make(chan models.PendingPlace, len(pending))
	var (
		wgr     sync.WaitGroup
		updated atomic.Int64
	)

	for i := 1; i <= es.numWorkers; i++ {
		wgr.Add(1)
		go es.worker(ctx, i, &wgr, jobs, &updated)
	}

	for _, place := range pending {
		jobs <- place
	}
	close(jobs)

	wgr.Wait()

	count := int(updated.Load())
	es.log.InfoContext(ctx, "Geocoding batch finished", "updated", count, "total", len(pending))

	if count > 0 && es.refresh != nil {
		if err = es.refresh(ctx); err != nil {
			es.log.ErrorContext(ctx, "Failed to refresh reference table", "error", err)
		}
	}

	return count
}

func (es *EnrichmentService) worker(
	ctx context.Context,
	idx int,
	wg *sync.WaitGroup,
	jobs <-chan models.PendingPlace,
	updated *atomic.Int64,
) {
	defer wg.Done()
	for place := range jobs {
		es.metrics.ActiveWorkers.Inc()
		if es.geocode(ctx, idx, place) {
			updated.Add(1)
		}
		es.metrics.ActiveWorkers.Dec()
	}
}

func (es *EnrichmentService) geocode(ctx context.Context, idx int, place models.PendingPlace) bool {
	es.log.DebugContext(ctx, "Processing place", "worker", idx, "place", place.ID, "name", place.Name)

	startTime := time.Now()
	coords, err := es.provider.Geocode(ctx, place.Name+es.addressSuffix)
	es.metrics.RequestSeconds.WithLabelValues(es.providerName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		es.metrics.APIErrors.Inc()
	} else if !coords.Valid() {
		err = fmt.Errorf("%w: lat=%f lon=%f", ErrCoordinatesOutOfRange, coords.Latitude, coords.Longitude)
	}

	if err != nil {
		es.log.ErrorContext(ctx, "Failed to geocode", "worker", idx, "place", place.ID, "error", err)
		es.metrics.PlacesProcessed.WithLabelValues("failure").Inc()

		if errInc := es.repo.IncrementFailureCount(ctx, place.ID, err.Error()); errInc != nil {
			es.log.ErrorContext(ctx, "Could not update failure count for place",
				"worker", idx, "place", place.ID, "error", errInc)
		}
		return false
	}

	es.metrics.PlacesProcessed.WithLabelValues("success").Inc()

	if err = es.repo.UpdatePlaceCoordinates(ctx, place.ID, *coords); err != nil {
		es.log.ErrorContext(ctx, "Failed to update coordinates for place",
			"worker", idx, "place", place.ID, "error", err)
		return false
	}
	es.log.DebugContext(ctx, "Place geocoded", "worker", idx, "place", place.ID)

	return true
}
