package poi

import (
	"fmt"
	"net/url"
	"strings"

	"vietspot/internal/types"
)

// POI is the provider-agnostic, flattened display record for one map element.
// Every string field except Name and Type defaults to "" when no source tag
// in its fallback chain is present. Coordinates are always the source
// element's lat/lon, unmodified. The full raw tag map is retained for
// downstream consumers that need fields not otherwise surfaced.
type POI struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Coordinates  types.Coords      `json:"coordinates"`
	Description  string            `json:"description"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone"`
	Website      string            `json:"website"`
	OpeningHours string            `json:"openingHours"`
	Cuisine      string            `json:"cuisine"`
	Rating       string            `json:"rating"` // raw tag value, display-only
	Wikipedia    string            `json:"wikipedia"`
	Wikidata     string            `json:"wikidata"`
	Email        string            `json:"email"`
	Tags         map[string]string `json:"tags"`
}

// PhoneURI returns a tel: link for the POI's phone number, or "".
func (p *POI) PhoneURI() string {
	if p.Phone == "" {
		return ""
	}
	return "tel:" + strings.ReplaceAll(p.Phone, " ", "")
}

// EmailURI returns a mailto: link for the POI's email address, or "".
func (p *POI) EmailURI() string {
	if p.Email == "" {
		return ""
	}
	return "mailto:" + p.Email
}

// WikipediaURL builds an article URL from the wikipedia tag, which has the
// form "<lang>:<title>" (e.g. "vi:Chùa Một Cột"). A value without a language
// prefix is treated as an English article title.
func (p *POI) WikipediaURL() string {
	if p.Wikipedia == "" {
		return ""
	}
	lang, title := "en", p.Wikipedia
	if idx := strings.Index(p.Wikipedia, ":"); idx > 0 {
		lang = p.Wikipedia[:idx]
		title = p.Wikipedia[idx+1:]
	}
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s", lang, url.PathEscape(title))
}
