package places

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/mesafe/internal/models"
)

// SourceType names where a table is loaded from.
type SourceType string

const (
	// SourceProvinces is the built-in table of the 81 provinces.
	SourceProvinces SourceType = "provinces"
	// SourceMajor is the built-in table of 15 major cities.
	SourceMajor SourceType = "major"
	// SourceFile reads a YAML, JSON or TOML file.
	SourceFile SourceType = "file"
	// SourceSheet reads an XLSX workbook.
	SourceSheet SourceType = "xlsx"
	// SourcePostgres reads the places table of the database.
	SourcePostgres SourceType = "postgres"
)

// ErrUnsupportedSource is returned by NewSource for unknown source types.
var ErrUnsupportedSource = errors.New("unsupported places source")

// Source loads a table.
type Source interface {
	Load(ctx context.Context) (*Table, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (*Table, error)

// Load calls f(ctx).
func (f SourceFunc) Load(ctx context.Context) (*Table, error) {
	return f(ctx)
}

// PlaceLister is implemented by storages that can list geocoded places.
type PlaceLister interface {
	FetchPlaces(ctx context.Context) ([]models.PlaceCoordinate, error)
}

// Sink receives freshly loaded tables.
type Sink interface {
	SetTable(table *Table)
}

// SourceConfig holds the settings needed to build any Source.
type SourceConfig struct {
	Type   SourceType  // Type of the source.
	Path   string      // Path of the file or workbook.
	Sheet  string      // Sheet name for SourceSheet, first sheet when empty.
	Lister PlaceLister // Lister for SourcePostgres.
}

// NewSource creates the Source selected by cfg.Type.
func NewSource(cfg SourceConfig) (Source, error) {
	switch cfg.Type {
	case SourceProvinces:
		return SourceFunc(func(context.Context) (*Table, error) { return Provinces(), nil }), nil
	case SourceMajor:
		return SourceFunc(func(context.Context) (*Table, error) { return MajorCities(), nil }), nil
	case SourceFile:
		if cfg.Path == "" {
			return nil, errors.New("path is required for file source")
		}
		return NewFileSource(cfg.Path), nil
	case SourceSheet:
		if cfg.Path == "" {
			return nil, errors.New("path is required for xlsx source")
		}
		return NewSheetSource(cfg.Path, cfg.Sheet), nil
	case SourcePostgres:
		if cfg.Lister == nil {
			return nil, errors.New("database is required for postgres source")
		}
		return NewRepositorySource(cfg.Lister), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, cfg.Type)
	}
}

// NewRepositorySource returns a Source backed by the given lister.
func NewRepositorySource(lister PlaceLister) Source {
	return SourceFunc(func(ctx context.Context) (*Table, error) {
		entries, err := lister.FetchPlaces(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch places: %w", err)
		}

		return NewTable(entries)
	})
}

// Refresh loads a table from src and hands it to sink.
// The sink is left untouched when loading fails.
func Refresh(ctx context.Context, src Source, sink Sink) (*Table, error) {
	table, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	sink.SetTable(table)

	return table, nil
}
