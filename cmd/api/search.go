package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"vietspot/internal/poi"
	"vietspot/internal/search"
	"vietspot/internal/types"
)

// POILinks carries the derived link targets a result card renders. Empty
// fields are omitted; the card only shows links that exist.
type POILinks struct {
	Phone     string `json:"phone,omitempty"`     // tel: URI
	Email     string `json:"email,omitempty"`     // mailto: URI
	Website   string `json:"website,omitempty"`   // external site
	Wikipedia string `json:"wikipedia,omitempty"` // article URL
}

// POIView is one display record plus its derived links.
type POIView struct {
	poi.POI
	Links POILinks `json:"links"`
}

// SearchResponse is the settled search state as rendered to the client.
type SearchResponse struct {
	SearchID string                     `json:"search_id"`
	Location *types.Location            `json:"location"`
	POIs     []POIView                  `json:"pois"`
	GeoJSON  *geojson.FeatureCollection `json:"geojson,omitempty"`
	Error    string                     `json:"error,omitempty"`
	Stale    bool                       `json:"stale,omitempty"`
}

// handleSearch godoc
// @Summary Search a place and its nearby points of interest
// @Description Geocode a free-text place name within Vietnam and return up to 5 nearby points of interest with display links and map GeoJSON
// @Tags search
// @Produce json
// @Param q query string true "Free-text place name" example(Hanoi)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string
// @Router /api/search [get]
func (app *App) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	searchID := uuid.NewString()
	seq := app.tracker.Begin()

	app.logger.Info("search started", "search_id", searchID, "query", query)

	state := app.searchService.Search(query)

	// A search that settles after a newer one was issued is reported stale so
	// the client discards it; the newer search's result wins.
	stale := !app.tracker.Settle(seq)
	if stale {
		app.logger.Debug("discarding stale search result", "search_id", searchID, "query", query)
	}

	c.JSON(http.StatusOK, buildSearchResponse(searchID, state, stale))
}

func buildSearchResponse(searchID string, state search.State, stale bool) SearchResponse {
	views := make([]POIView, 0, len(state.POIs))
	for _, p := range state.POIs {
		views = append(views, POIView{
			POI: p,
			Links: POILinks{
				Phone:     p.PhoneURI(),
				Email:     p.EmailURI(),
				Website:   p.Website,
				Wikipedia: p.WikipediaURL(),
			},
		})
	}

	return SearchResponse{
		SearchID: searchID,
		Location: state.Location,
		POIs:     views,
		GeoJSON:  buildFeatureCollection(state),
		Error:    state.Error,
		Stale:    stale,
	}
}

// buildFeatureCollection maps the settled state to the GeoJSON the map widget
// consumes: one "center" feature for the location and one "poi" feature per
// result.
func buildFeatureCollection(state search.State) *geojson.FeatureCollection {
	if state.Location == nil {
		return nil
	}

	fc := geojson.NewFeatureCollection()

	center := geojson.NewFeature(state.Location.Coordinates.Point())
	center.Properties["kind"] = "center"
	center.Properties["name"] = state.Location.Name
	fc.Append(center)

	for _, p := range state.POIs {
		f := geojson.NewFeature(p.Coordinates.Point())
		f.Properties["kind"] = "poi"
		f.Properties["name"] = p.Name
		f.Properties["type"] = p.Type
		fc.Append(f)
	}

	return fc
}
