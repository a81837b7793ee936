package types

// Location is a geocoded place: the coordinate the map centers on and the
// canonical display name returned by the geocoder. A new search replaces the
// whole value; it is never mutated in place.
type Location struct {
	Coordinates Coords `json:"coordinates"`
	Name        string `json:"name"`
}
