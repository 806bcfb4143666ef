package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/mesafe/internal/models"
)

// EnsureSchema creates the places table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS public.places (
			place_id           SERIAL PRIMARY KEY,
			name               TEXT NOT NULL UNIQUE,
			latitude           DOUBLE PRECISION,
			longitude          DOUBLE PRECISION,
			geocoding_attempts INTEGER NOT NULL DEFAULT 0,
			geocoding_error    TEXT,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create places table: %w", err)
	}

	return nil
}

// SeedPlaces inserts the given places, leaving names that already exist untouched.
func (r *Repository) SeedPlaces(ctx context.Context, entries []models.PlaceCoordinate) error {
	query := `
		INSERT INTO public.places (name, latitude, longitude)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING;
	`

	for _, place := range entries {
		if _, err := r.db.Exec(ctx, query, place.Name, place.Latitude, place.Longitude); err != nil {
			return fmt.Errorf("failed to seed place %q: %w", place.Name, err)
		}
	}
	r.log.DebugContext(ctx, "Places seeded", "count", len(entries))

	return nil
}

// FetchPlaces returns every place that has coordinates, ordered by name.
func (r *Repository) FetchPlaces(ctx context.Context) ([]models.PlaceCoordinate, error) {
	var entries []models.PlaceCoordinate
	query := `
		SELECT name, latitude, longitude
		FROM public.places
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY name ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var place models.PlaceCoordinate
		if errScan := rows.Scan(&place.Name, &place.Latitude, &place.Longitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan place: %w", errScan)
		}
		entries = append(entries, place)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return entries, nil
}

// FetchPlacesForGeocoding retrieves places that still have no coordinates.
// Places that failed geocoding 5 times are left out. The results are ordered by
// creation date and limited to the specified count.
func (r *Repository) FetchPlacesForGeocoding(ctx context.Context, limit int) ([]models.PendingPlace, error) {
	var pending []models.PendingPlace
	query := `
		SELECT place_id, name
		FROM public.places
		WHERE
			latitude IS NULL
			AND geocoding_attempts < 5
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query places without coordinates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var place models.PendingPlace
		if errScan := rows.Scan(&place.ID, &place.Name); errScan != nil {
			return nil, fmt.Errorf("failed to scan place without coordinates: %w", errScan)
		}
		r.log.DebugContext(ctx, "A place without coordinates has been received.",
			"ID", place.ID, "Name", place.Name)
		pending = append(pending, place)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return pending, nil
}

// UpdatePlaceCoordinates stores the coordinates of a place and clears its geocoding error.
func (r *Repository) UpdatePlaceCoordinates(ctx context.Context, placeID int, coords models.Coordinates) error {
	query := `
		UPDATE public.places
		SET
			latitude = $1,
			longitude = $2,
			geocoding_error = NULL
		WHERE
			place_id = $3;
	`

	_, err := r.db.Exec(ctx, query, coords.Latitude, coords.Longitude, placeID)
	if err != nil {
		return fmt.Errorf("failed to update place coordinates: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the geocoding attempt count of a place
// and records the error message.
func (r *Repository) IncrementFailureCount(ctx context.Context, placeID int, errMsg string) error {
	query := `
		UPDATE public.places
		SET
			geocoding_attempts = geocoding_attempts + 1,
			geocoding_error = $1
		WHERE place_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, placeID)
	if err != nil {
		return fmt.Errorf("failed to update geocoding error and number of attempts: %w", err)
	}

	return nil
}
