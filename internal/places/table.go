// Package places holds the reference tables of named coordinates used by the distance calculator
// and the sources they are loaded from.
package places

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/UnknownOlympus/mesafe/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Errors returned while building a table.
var (
	ErrInvalidPlace   = errors.New("invalid place")
	ErrDuplicatePlace = errors.New("duplicate place name")
)

// Table is an immutable mapping from place name to coordinates.
// A nil *Table behaves like an empty table.
type Table struct {
	byName map[string]models.PlaceCoordinate
	names  []string
}

// NewTable validates the entries and builds a table from them.
// Names are kept verbatim; lookups are exact.
func NewTable(entries []models.PlaceCoordinate) (*Table, error) {
	table := &Table{
		byName: make(map[string]models.PlaceCoordinate, len(entries)),
		names:  make([]string, 0, len(entries)),
	}

	for _, place := range entries {
		if err := Validate(place); err != nil {
			return nil, err
		}
		if _, exists := table.byName[place.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlace, place.Name)
		}
		table.byName[place.Name] = place
		table.names = append(table.names, place.Name)
	}

	collate.New(language.Turkish).SortStrings(table.names)

	return table, nil
}

// MustTable is like NewTable but panics on invalid input. It is meant for built-in data.
func MustTable(entries []models.PlaceCoordinate) *Table {
	table, err := NewTable(entries)
	if err != nil {
		panic(err)
	}

	return table
}

// Validate checks that a place has a non-blank name without control characters
// and coordinates inside the valid ranges.
func Validate(place models.PlaceCoordinate) error {
	if strings.TrimSpace(place.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPlace)
	}
	if strings.IndexFunc(place.Name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: %q contains control characters", ErrInvalidPlace, place.Name)
	}
	if !place.Coordinates().Valid() {
		return fmt.Errorf("%w: %q has coordinates out of range (%f, %f)",
			ErrInvalidPlace, place.Name, place.Latitude, place.Longitude)
	}

	return nil
}

// Lookup returns the place stored under exactly name.
func (t *Table) Lookup(name string) (models.PlaceCoordinate, bool) {
	if t == nil {
		return models.PlaceCoordinate{}, false
	}
	place, ok := t.byName[name]

	return place, ok
}

// Names returns the place names in Turkish collation order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.names))
	copy(names, t.names)

	return names
}

// Places returns the entries in the same order as Names.
func (t *Table) Places() []models.PlaceCoordinate {
	if t == nil {
		return nil
	}
	out := make([]models.PlaceCoordinate, 0, len(t.names))
	for _, name := range t.names {
		out = append(out, t.byName[name])
	}

	return out
}

// Len returns the number of places.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.names)
}
