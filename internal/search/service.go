package search

import (
	"errors"
	"log/slog"

	"vietspot/internal/config"
	"vietspot/internal/poi"
	"vietspot/internal/providers/nominatim"
	"vietspot/internal/providers/overpass"
	"vietspot/internal/types"
)

// GeocodeProvider resolves a free-text place name, scoped to one country, to
// its best match.
type GeocodeProvider interface {
	Search(query, country string) (*nominatim.Place, error)
}

// POIProvider fetches raw tagged map elements around a coordinate.
type POIProvider interface {
	Nearby(latitude, longitude float64, radiusMeters, limit int) ([]overpass.Element, error)
}

// Service runs the location-search pipeline: geocode, POI fetch, normalize,
// truncate. It always returns a settled State; every failure mode degrades to
// one of the fixed user-facing messages.
type Service interface {
	Search(query string) State
}

type searchService struct {
	geocoder GeocodeProvider
	pois     POIProvider
	cfg      *config.Config
	logger   *slog.Logger
}

// NewSearchService creates a search service with real provider clients.
func NewSearchService(cfg *config.Config, logger *slog.Logger) Service {
	return NewSearchServiceWithProviders(
		nominatim.NewClient(logger),
		overpass.NewClient(logger),
		cfg,
		logger,
	)
}

// NewSearchServiceWithProviders creates a search service with custom
// providers. This is useful for testing with mock providers.
func NewSearchServiceWithProviders(
	geocoder GeocodeProvider,
	pois POIProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &searchService{
		geocoder: geocoder,
		pois:     pois,
		cfg:      cfg,
		logger:   logger.With("component", "search-service"),
	}
}

// Search drives the two sequential provider calls and settles the state. The
// POI stage only runs after a successful geocode; a geocode failure therefore
// settles with no location, while an empty POI result keeps the geocoded
// location visible.
func (s *searchService) Search(query string) State {
	state := NewState().Begin()

	place, err := s.geocoder.Search(query, s.cfg.App.Country)
	if err != nil {
		if errors.Is(err, nominatim.ErrNotFound) {
			return state.Fail(MsgLocationNotFound)
		}
		s.logger.Error("geocoding failed", "query", query, "error", err)
		return state.Fail(MsgGeocodeFailed)
	}

	state = state.WithLocation(types.Location{
		Coordinates: types.NewCoords(place.Latitude, place.Longitude),
		Name:        place.DisplayName,
	})

	elements, err := s.pois.Nearby(
		place.Latitude,
		place.Longitude,
		s.cfg.App.RadiusMeters,
		s.cfg.App.POILimit,
	)
	if err != nil {
		s.logger.Error("poi fetch failed",
			"latitude", place.Latitude,
			"longitude", place.Longitude,
			"error", err,
		)
		return state.Fail(MsgPOIFetchFailed)
	}
	if len(elements) == 0 {
		return state.Fail(MsgNoPOIsFound)
	}

	// Keep the service's response order; no ranking is applied.
	if len(elements) > s.cfg.App.MaxResults {
		elements = elements[:s.cfg.App.MaxResults]
	}
	records := make([]poi.POI, 0, len(elements))
	for _, el := range elements {
		records = append(records, poi.Normalize(el))
	}

	s.logger.Debug("search settled",
		"query", query,
		"location", place.DisplayName,
		"poi_count", len(records),
	)

	return state.Succeed(records)
}
