package repository_test

import (
	"log/slog"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/UnknownOlympus/mesafe/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fetchPlacesQuery = `
	SELECT name, latitude, longitude
	FROM public.places
	WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	ORDER BY name ASC;
`

const fetchPendingQuery = `
	SELECT place_id, name
	FROM public.places
	WHERE
		latitude IS NULL
		AND geocoding_attempts < 5
	ORDER BY created_at ASC
	LIMIT $1;
`

func TestFetchPlaces(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	t.Run("error - query places", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlacesQuery)).WillReturnError(assert.AnError)

		entries, err := repo.FetchPlaces(ctx)

		require.Nil(t, entries)
		require.ErrorContains(t, err, "failed to query places")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan place", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlacesQuery)).
			WillReturnRows(pgxmock.NewRows([]string{"name", "latitude", "longitude"}).
				AddRow("Ankara", "not a number", 32.8597))

		entries, err := repo.FetchPlaces(ctx)

		require.Nil(t, entries)
		require.ErrorContains(t, err, "failed to scan place")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - rows error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlacesQuery)).
			WillReturnRows(pgxmock.NewRows([]string{"name", "latitude", "longitude"}).
				AddRow("Ankara", 39.9334, 32.8597).
				RowError(1, assert.AnError))

		entries, err := repo.FetchPlaces(ctx)

		require.Nil(t, entries)
		require.ErrorContains(t, err, "failed to read row")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - fetch places", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlacesQuery)).
			WillReturnRows(pgxmock.NewRows([]string{"name", "latitude", "longitude"}).
				AddRow("Ankara", 39.9334, 32.8597).
				AddRow("İzmir", 38.4192, 27.1287))

		entries, err := repo.FetchPlaces(ctx)

		require.NoError(t, err)
		assert.Equal(t, []models.PlaceCoordinate{
			{Name: "Ankara", Latitude: 39.9334, Longitude: 32.8597},
			{Name: "İzmir", Latitude: 38.4192, Longitude: 27.1287},
		}, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFetchPlacesForGeocoding(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	limit := 10

	t.Run("error - query pending places", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPendingQuery)).
			WithArgs(limit).
			WillReturnError(assert.AnError)

		pending, err := repo.FetchPlacesForGeocoding(ctx, limit)

		require.Nil(t, pending)
		require.ErrorContains(t, err, "failed to query places without coordinates")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan pending place", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPendingQuery)).
			WithArgs(limit).
			WillReturnRows(pgxmock.NewRows([]string{"place_id", "name"}).AddRow("invalid_id", "Ardahan"))

		pending, err := repo.FetchPlacesForGeocoding(ctx, limit)

		require.Nil(t, pending)
		require.ErrorContains(t, err, "failed to scan place without coordinates")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - rows error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPendingQuery)).
			WithArgs(limit).
			WillReturnRows(pgxmock.NewRows([]string{"place_id", "name"}).AddRow(7, "Ardahan").
				RowError(1, assert.AnError))

		pending, err := repo.FetchPlacesForGeocoding(ctx, limit)

		require.Nil(t, pending)
		require.ErrorContains(t, err, "failed to read row")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - fetch pending places", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPendingQuery)).
			WithArgs(limit).
			WillReturnRows(pgxmock.NewRows([]string{"place_id", "name"}).AddRow(7, "Ardahan"))

		pending, err := repo.FetchPlacesForGeocoding(ctx, limit)

		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, models.PendingPlace{ID: 7, Name: "Ardahan"}, pending[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdatePlaceCoordinates(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	placeID := 123
	coords := models.Coordinates{
		Longitude: 42.7022,
		Latitude:  41.1105,
	}
	query := `
		UPDATE public.places
		SET
			latitude = $1,
			longitude = $2,
			geocoding_error = NULL
		WHERE
			place_id = $3;
	`

	t.Run("error - update place coords", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(coords.Latitude, coords.Longitude, placeID).
			WillReturnError(assert.AnError)

		err = repo.UpdatePlaceCoordinates(ctx, placeID, coords)

		require.ErrorContains(t, err, "failed to update place coordinates")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - update place coords", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(coords.Latitude, coords.Longitude, placeID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err = repo.UpdatePlaceCoordinates(ctx, placeID, coords)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIncrementFailureCount(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	placeID := 123
	query := `
		UPDATE public.places
		SET
			geocoding_attempts = geocoding_attempts + 1,
			geocoding_error = $1
		WHERE place_id = $2;
	`

	t.Run("error - increment failure count", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("error", placeID).
			WillReturnError(assert.AnError)

		err = repo.IncrementFailureCount(ctx, placeID, "error")

		require.ErrorContains(t, err, "failed to update geocoding error and number of attempts")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - increment failure count", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("error", placeID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err = repo.IncrementFailureCount(ctx, placeID, "error")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSeedPlaces(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := `
		INSERT INTO public.places (name, latitude, longitude)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING;
	`
	entries := []models.PlaceCoordinate{
		{Name: "Ankara", Latitude: 39.9334, Longitude: 32.8597},
		{Name: "Bursa", Latitude: 40.1826, Longitude: 29.0665},
	}

	t.Run("error - insert place", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("Ankara", 39.9334, 32.8597).
			WillReturnError(assert.AnError)

		err = repo.SeedPlaces(ctx, entries)

		require.ErrorContains(t, err, `failed to seed place "Ankara"`)
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - insert all places", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		for _, place := range entries {
			mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(place.Name, place.Latitude, place.Longitude).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}

		require.NoError(t, repo.SeedPlaces(ctx, entries))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnsureSchema(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := repository.NewRepository(mock, slog.Default())

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS public.places").WillReturnError(assert.AnError)
	err = repo.EnsureSchema(ctx)
	require.ErrorIs(t, err, assert.AnError)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS public.places").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	require.NoError(t, repo.EnsureSchema(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
