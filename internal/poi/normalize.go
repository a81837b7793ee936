package poi

import (
	"strings"

	"vietspot/internal/providers/overpass"
	"vietspot/internal/types"
)

// Literal defaults for fields whose fallback chain can exhaust.
const (
	DefaultName = "Unnamed location"
	DefaultType = "Point of Interest"
)

// Normalize flattens a raw Overpass element into a POI. It is pure and total:
// every field has a defined default, so it never fails. Each field is derived
// from an ordered fallback chain over the element's tags; the first present
// key wins regardless of later keys.
func Normalize(el overpass.Element) POI {
	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	return POI{
		ID:           el.ID,
		Name:         firstTag(tags, DefaultName, "name", "name:en", "name:vi"),
		Type:         firstTag(tags, DefaultType, "tourism", "amenity", "historic", "leisure"),
		Coordinates:  types.NewCoords(el.Lat, el.Lon),
		Description:  firstTag(tags, "", "description", "description:en", "note"),
		Address:      buildAddress(tags),
		Phone:        firstTag(tags, "", "phone", "contact:phone"),
		Website:      firstTag(tags, "", "website", "contact:website"),
		OpeningHours: firstTag(tags, "", "opening_hours", "opening_hours:covid19"),
		Cuisine:      firstTag(tags, "", "cuisine"),
		Rating:       firstTag(tags, "", "stars"),
		Wikipedia:    firstTag(tags, "", "wikipedia", "wikipedia:en"),
		Wikidata:     firstTag(tags, "", "wikidata"),
		Email:        firstTag(tags, "", "email", "contact:email"),
		Tags:         tags,
	}
}

// firstTag returns the value of the first key present with a non-empty value,
// falling through to def on exhaustion.
func firstTag(tags map[string]string, def string, keys ...string) string {
	for _, key := range keys {
		if v, ok := tags[key]; ok && v != "" {
			return v
		}
	}
	return def
}

// buildAddress joins the structured addr:* parts present on the element with
// ", ", skipping absent ones. When no structured part exists it falls back to
// the raw address tag.
func buildAddress(tags map[string]string) string {
	keys := []string{"addr:housenumber", "addr:street", "addr:district", "addr:city", "addr:province"}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return tags["address"]
	}
	return strings.Join(parts, ", ")
}
