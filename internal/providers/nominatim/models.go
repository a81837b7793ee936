package nominatim

// SearchAPIResult is one entry of the ranked match array returned by the
// Nominatim search endpoint. Lat and Lon arrive as strings and are parsed to
// float64 at this boundary.
type SearchAPIResult struct {
	PlaceId     int      `json:"place_id"`
	Licence     string   `json:"licence"`
	OsmType     string   `json:"osm_type"`
	OsmId       int64    `json:"osm_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	PlaceRank   int      `json:"place_rank"`
	Importance  float64  `json:"importance"`
	Addresstype string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Boundingbox []string `json:"boundingbox"`
}

// Place is the parsed best match for a search query.
type Place struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}
