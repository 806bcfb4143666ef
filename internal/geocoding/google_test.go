package geocoding_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/mesafe/internal/geocoding"
	"github.com/UnknownOlympus/mesafe/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGeocode(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	provider := geocoding.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()

	t.Run("api returns error", func(t *testing.T) {
		address := "Yokköy, Türkiye"
		req := &maps.GeocodingRequest{Address: address, Region: "tr", Language: "tr"}

		mockClient.On("Geocode", ctx, req).Return(nil, assert.AnError).Once()

		_, err := provider.Geocode(ctx, address)

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		mockClient.AssertExpectations(t)
	})

	t.Run("api return empty response", func(t *testing.T) {
		address := "Yokköy, Türkiye"
		req := &maps.GeocodingRequest{Address: address, Region: "tr", Language: "tr"}

		mockClient.On("Geocode", ctx, req).Return(nil, nil).Once()

		coords, err := provider.Geocode(ctx, address)

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrEmptyResponse)
		mockClient.AssertExpectations(t)
	})

	t.Run("successful geocoding", func(t *testing.T) {
		address := "Bodrum, Muğla, Türkiye"
		req := &maps.GeocodingRequest{Address: address, Region: "tr", Language: "tr"}
		mockResponse := []maps.GeocodingResult{
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 37.0344, Lng: 27.4305}}},
		}

		mockClient.On("Geocode", ctx, req).Return(mockResponse, nil).Once()

		coords, err := provider.Geocode(ctx, address)

		require.NoError(t, err)
		require.NotNil(t, coords)
		require.InEpsilon(t, 37.0344, coords.Latitude, 0.0001)
		require.InEpsilon(t, 27.4305, coords.Longitude, 0.0001)
		mockClient.AssertExpectations(t)
	})
}

func TestGeocode_BiasesRequestsTowardsTurkey(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	provider := geocoding.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()

	// "Side" is also an English word, so the region bias has to reach the API.
	address := "Side, Manavgat, Antalya, Türkiye"
	results := []maps.GeocodingResult{
		{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 36.7673, Lng: 31.3890}}},
		{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 51.5072, Lng: -0.1276}}},
	}

	mockClient.On("Geocode", ctx, mock.MatchedBy(func(req *maps.GeocodingRequest) bool {
		return req.Address == address && req.Region == "tr" && req.Language == "tr"
	})).Return(results, nil).Once()

	coords, err := provider.Geocode(ctx, address)

	require.NoError(t, err)
	assert.InEpsilon(t, 36.7673, coords.Latitude, 0.0001)
	assert.InEpsilon(t, 31.3890, coords.Longitude, 0.0001)
	assert.True(t, coords.Valid())
}
