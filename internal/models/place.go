package models

// PlaceCoordinate is a named location of a reference table. Name is the lookup key.
type PlaceCoordinate struct {
	Name      string  `json:"name"      mapstructure:"name"`
	Latitude  float64 `json:"latitude"  mapstructure:"latitude"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
}

// Coordinates returns the point of the place.
func (p PlaceCoordinate) Coordinates() Coordinates {
	return Coordinates{Latitude: p.Latitude, Longitude: p.Longitude}
}

// PendingPlace is a stored place whose coordinates have not been geocoded yet.
type PendingPlace struct {
	ID   int    // ID is the unique identifier of the place row.
	Name string // Name is the place name sent to the geocoding provider.
}
