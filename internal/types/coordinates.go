package types

import "github.com/paulmach/orb"

// Coords is a WGS84 coordinate pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Point converts the coordinates to an orb.Point (lon/lat order, per GeoJSON).
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
