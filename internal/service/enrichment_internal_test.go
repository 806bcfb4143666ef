package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/UnknownOlympus/mesafe/internal/metrics"
	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/UnknownOlympus/mesafe/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const suffix = ", Türkiye"

func newTestService(t *testing.T, refresh RefreshFunc) (*EnrichmentService, *mocks.Interface, *mocks.Provider, *metrics.Metrics) {
	t.Helper()

	mockRepo := mocks.NewInterface(t)
	mockProvider := mocks.NewProvider(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	m := metrics.NewMetrics(prometheus.NewRegistry())
	service := NewEnrichmentService(logger, mockRepo, mockProvider, "nominatim", m, 2, time.Second, suffix, refresh)

	return service, mockRepo, mockProvider, m
}

func TestProcessBatch(t *testing.T) {
	ctx := t.Context()

	t.Run("successful processing refreshes the table", func(t *testing.T) {
		refreshed := 0
		service, mockRepo, mockProvider, m := newTestService(t, func(context.Context) error {
			refreshed++
			return nil
		})
		pending := []models.PendingPlace{{ID: 1, Name: "Alanya"}}
		coords := &models.Coordinates{Latitude: 36.5437, Longitude: 31.9998}

		mockRepo.On("FetchPlacesForGeocoding", ctx, BatchSize).Return(pending, nil).Once()
		mockProvider.On("Geocode", ctx, "Alanya, Türkiye").Return(coords, nil).Once()
		mockRepo.On("UpdatePlaceCoordinates", ctx, 1, *coords).Return(nil).Once()

		updated := service.processBatch(ctx)

		assert.Equal(t, 1, updated)
		assert.Equal(t, 1, refreshed)
		assert.InDelta(t, 1, testutil.ToFloat64(m.PlacesProcessed.WithLabelValues("success")), 0)
		assert.InDelta(t, 0, testutil.ToFloat64(m.ActiveWorkers), 0)
	})

	t.Run("fetch places returns error", func(t *testing.T) {
		service, mockRepo, _, _ := newTestService(t, func(context.Context) error {
			t.Fatal("refresh must not run")
			return nil
		})

		mockRepo.On("FetchPlacesForGeocoding", ctx, BatchSize).Return(nil, assert.AnError).Once()

		assert.Zero(t, service.processBatch(ctx))
	})

	t.Run("fetch places returns empty list", func(t *testing.T) {
		service, mockRepo, _, _ := newTestService(t, nil)

		mockRepo.On("FetchPlacesForGeocoding", ctx, BatchSize).Return([]models.PendingPlace{}, nil).Once()

		assert.Zero(t, service.processBatch(ctx))
	})

	t.Run("geocoding provider returns error", func(t *testing.T) {
		service, mockRepo, mockProvider, m := newTestService(t, func(context.Context) error {
			t.Fatal("refresh must not run")
			return nil
		})
		pending := []models.PendingPlace{{ID: 2, Name: "Yokköy"}}
		geocodeErr := errors.New("geocoding failed")

		mockRepo.On("FetchPlacesForGeocoding", ctx, BatchSize).Return(pending, nil).Once()
		mockProvider.On("Geocode", ctx, "Yokköy, Türkiye").Return(nil, geocodeErr).Once()
		mockRepo.On("IncrementFailureCount", ctx, 2, geocodeErr.Error()).Return(nil).Once()

		assert.Zero(t, service.processBatch(ctx))
		assert.InDelta(t, 1, testutil.ToFloat64(m.APIErrors), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.PlacesProcessed.WithLabelValues("failure")), 0)
	})

	t.Run("out of range coordinates count as failure", func(t *testing.T) {
		service, mockRepo, mockProvider, m := newTestService(t, nil)
		pending := []models.PendingPlace{{ID: 3, Name: "Bozuk"}}
		coords := &models.Coordinates{Latitude: 123, Longitude: 31}

		mockRepo.On("FetchPlacesForGeocoding", ctx, BatchSize).Return(pending, nil).Once()
		mockProvider.On("Geocode", ctx, "Bozuk, Türkiye").Return(coords, nil).Once()
		mockRepo.On("IncrementFailureCount", ctx, 3, mock.MatchedBy(func(msg string) bool {
			return assert.Contains(t, msg, ErrCoordinatesOutOfRange.Error())
		})).Return(nil).Once()

		assert.Zero(t, service.processBatch(ctx))
		assert.InDelta(t, 0, testutil.ToFloat64(m.APIErrors), 0)
	})

	t.Run("error to increment failure count", func(t *testing.T) {
		service, mockRepo, mockProvider, _ := newTestService(t, nil)
		pending := []models.PendingPlace{{ID: 2, Name: "Yokköy"}}
		geocodeErr := errors.New("geocoding failed")

		mockRepo.On("FetchPlacesForGeocoding", ctx, BatchSize).Return(pending, nil).Once()
		mockProvider.On("Geocode", ctx, "Yokköy, Türkiye").Return(nil, geocodeErr).Once()
		mockRepo.On("IncrementFailureCount", ctx, 2, geocodeErr.Error()).Return(assert.AnError).Once()

		assert.Zero(t, service.processBatch(ctx))
	})

	t.Run("error to update place coordinates", func(t *testing.T) {
		service, mockRepo, mockProvider, _ := newTestService(t, nil)
		pending := []models.PendingPlace{{ID: 1, Name: "Alanya"}}
		coords := &models.Coordinates{Latitude: 36.5437, Longitude: 31.9998}

		mockRepo.On("FetchPlacesForGeocoding", ctx, BatchSize).Return(pending, nil).Once()
		mockProvider.On("Geocode", ctx, "Alanya, Türkiye").Return(coords, nil).Once()
		mockRepo.On("UpdatePlaceCoordinates", ctx, 1, *coords).Return(assert.AnError).Once()

		assert.Zero(t, service.processBatch(ctx))
	})

	t.Run("refresh error is logged", func(t *testing.T) {
		service, mockRepo, mockProvider, _ := newTestService(t, func(context.Context) error {
			return assert.AnError
		})
		pending := []models.PendingPlace{{ID: 1, Name: "Alanya"}, {ID: 4, Name: "Side"}}
		alanya := &models.Coordinates{Latitude: 36.5437, Longitude: 31.9998}
		side := &models.Coordinates{Latitude: 36.7673, Longitude: 31.3890}

		mockRepo.On("FetchPlacesForGeocoding", ctx, BatchSize).Return(pending, nil).Once()
		mockProvider.On("Geocode", ctx, "Alanya, Türkiye").Return(alanya, nil).Once()
		mockProvider.On("Geocode", ctx, "Side, Türkiye").Return(side, nil).Once()
		mockRepo.On("UpdatePlaceCoordinates", ctx, 1, *alanya).Return(nil).Once()
		mockRepo.On("UpdatePlaceCoordinates", ctx, 4, *side).Return(nil).Once()

		assert.Equal(t, 2, service.processBatch(ctx))
	})
}

func TestRun(t *testing.T) {
	service, _, _, _ := newTestService(t, nil)
	require.Equal(t, 2, service.numWorkers)

	tctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	service.Run(tctx)
}

func TestNewEnrichmentService_MinimumWorkers(t *testing.T) {
	service := NewEnrichmentService(slog.Default(), nil, nil, "google", nil, 0, time.Second, "", nil)

	assert.Equal(t, 1, service.numWorkers)
}
