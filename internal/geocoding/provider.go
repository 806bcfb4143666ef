package geocoding

import (
	"context"

	"github.com/UnknownOlympus/mesafe/internal/models"
)

// Provider resolves a free-form place description to coordinates.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
