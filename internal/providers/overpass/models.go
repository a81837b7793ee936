package overpass

// QueryAPIResponse is the envelope returned by the Overpass interpreter.
type QueryAPIResponse struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Elements  []Element `json:"elements"`
}

// Element is one tagged map node. Tag keys are not globally known in advance,
// so they stay a generic string map; normalization reads from it with ordered
// lookups and defaults.
type Element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}
