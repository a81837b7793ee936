package search

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietspot/internal/config"
	"vietspot/internal/poi"
	"vietspot/internal/providers/nominatim"
	"vietspot/internal/providers/overpass"
)

// Mock providers for testing

type mockGeocoder struct {
	place *nominatim.Place
	err   error
	calls int
}

func (m *mockGeocoder) Search(query, country string) (*nominatim.Place, error) {
	m.calls++
	return m.place, m.err
}

type mockPOIProvider struct {
	elements []overpass.Element
	err      error
	calls    int
}

func (m *mockPOIProvider) Nearby(latitude, longitude float64, radiusMeters, limit int) ([]overpass.Element, error) {
	m.calls++
	return m.elements, m.err
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Country:      "Vietnam",
			RadiusMeters: 2000,
			POILimit:     10,
			MaxResults:   5,
		},
	}
}

func newTestService(geocoder *mockGeocoder, pois *mockPOIProvider) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSearchServiceWithProviders(geocoder, pois, testConfig(), logger)
}

func hanoiPlace() *nominatim.Place {
	return &nominatim.Place{
		Latitude:    21.0278,
		Longitude:   105.8342,
		DisplayName: "Hanoi, Vietnam",
	}
}

func elementsWithIDs(ids ...int64) []overpass.Element {
	out := make([]overpass.Element, 0, len(ids))
	for _, id := range ids {
		out = append(out, overpass.Element{
			ID:   id,
			Lat:  21.0,
			Lon:  105.8,
			Tags: map[string]string{"tourism": "attraction"},
		})
	}
	return out
}

func TestSearchService_Success(t *testing.T) {
	geocoder := &mockGeocoder{place: hanoiPlace()}
	pois := &mockPOIProvider{elements: []overpass.Element{
		{ID: 1, Lat: 21.03, Lon: 105.85, Tags: map[string]string{
			"tourism": "museum",
			"name":    "War Museum",
		}},
		{ID: 2, Lat: 21.02, Lon: 105.84, Tags: map[string]string{
			"amenity": "cafe",
		}},
	}}

	state := newTestService(geocoder, pois).Search("Hanoi")

	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.Location)
	assert.Equal(t, 21.0278, state.Location.Coordinates.Latitude)
	assert.Equal(t, 105.8342, state.Location.Coordinates.Longitude)
	assert.Equal(t, "Hanoi, Vietnam", state.Location.Name)

	require.Len(t, state.POIs, 2)
	assert.Equal(t, "War Museum", state.POIs[0].Name)
	assert.Equal(t, "museum", state.POIs[0].Type)
	assert.Equal(t, poi.DefaultName, state.POIs[1].Name)
	assert.Equal(t, "cafe", state.POIs[1].Type)
}

func TestSearchService_TruncatesPreservingOrder(t *testing.T) {
	tests := []struct {
		name      string
		elements  []overpass.Element
		wantCount int
		wantIDs   []int64
	}{
		{
			name:      "more than five keeps the first five in response order",
			elements:  elementsWithIDs(10, 20, 30, 40, 50, 60, 70),
			wantCount: 5,
			wantIDs:   []int64{10, 20, 30, 40, 50},
		},
		{
			name:      "exactly five",
			elements:  elementsWithIDs(1, 2, 3, 4, 5),
			wantCount: 5,
			wantIDs:   []int64{1, 2, 3, 4, 5},
		},
		{
			name:      "fewer than five",
			elements:  elementsWithIDs(9, 8),
			wantCount: 2,
			wantIDs:   []int64{9, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := &mockGeocoder{place: hanoiPlace()}
			pois := &mockPOIProvider{elements: tt.elements}

			state := newTestService(geocoder, pois).Search("Hanoi")

			require.Len(t, state.POIs, tt.wantCount)
			for i, id := range tt.wantIDs {
				assert.Equal(t, id, state.POIs[i].ID)
			}
		})
	}
}

func TestSearchService_GeocodeNotFound(t *testing.T) {
	geocoder := &mockGeocoder{err: nominatim.ErrNotFound}
	pois := &mockPOIProvider{}

	state := newTestService(geocoder, pois).Search("Atlantis")

	assert.False(t, state.Loading)
	assert.Equal(t, MsgLocationNotFound, state.Error)
	assert.Nil(t, state.Location)
	assert.Empty(t, state.POIs)
	assert.Zero(t, pois.calls, "POI fetch must be skipped when geocoding finds nothing")
}

func TestSearchService_GeocodeTransportFailure(t *testing.T) {
	geocoder := &mockGeocoder{err: errors.New("connection refused")}
	pois := &mockPOIProvider{}

	state := newTestService(geocoder, pois).Search("Hanoi")

	assert.Equal(t, MsgGeocodeFailed, state.Error)
	assert.Nil(t, state.Location)
	assert.Empty(t, state.POIs)
	assert.Zero(t, pois.calls)
}

func TestSearchService_NoPOIsKeepsLocation(t *testing.T) {
	geocoder := &mockGeocoder{place: hanoiPlace()}
	pois := &mockPOIProvider{elements: []overpass.Element{}}

	state := newTestService(geocoder, pois).Search("Hanoi")

	assert.Equal(t, MsgNoPOIsFound, state.Error)
	assert.Empty(t, state.POIs)
	require.NotNil(t, state.Location, "the geocoded location stays visible")
	assert.Equal(t, "Hanoi, Vietnam", state.Location.Name)
}

func TestSearchService_POIFetchFailure(t *testing.T) {
	geocoder := &mockGeocoder{place: hanoiPlace()}
	pois := &mockPOIProvider{err: errors.New("gateway timeout")}

	state := newTestService(geocoder, pois).Search("Hanoi")

	assert.Equal(t, MsgPOIFetchFailed, state.Error)
	assert.Empty(t, state.POIs)
	require.NotNil(t, state.Location)
}
