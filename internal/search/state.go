package search

import (
	"sync"

	"vietspot/internal/poi"
	"vietspot/internal/types"
)

// The four user-facing messages a settled search can carry. No other error
// text ever reaches the user; everything else is log-only diagnostics.
const (
	MsgLocationNotFound = "Location not found in Vietnam. Please try another search."
	MsgGeocodeFailed    = "Failed to fetch location data. Please try again."
	MsgNoPOIsFound      = "No points of interest found nearby. Try a different location."
	MsgPOIFetchFailed   = "Failed to fetch points of interest."
)

// State is the immutable search lifecycle value. Transitions return a new
// value; nothing mutates a State in place. After a search settles exactly one
// of {Loading}, {Error set}, {neither} holds.
type State struct {
	Location *types.Location `json:"location"`
	POIs     []poi.POI       `json:"pois"`
	Loading  bool            `json:"loading"`
	Error    string          `json:"error,omitempty"`
}

// NewState returns the idle state: no location, no POIs, no error.
func NewState() State {
	return State{POIs: []poi.POI{}}
}

// Begin starts a new search from any prior state: the previous error is
// cleared and the previous location and POI list are dropped so stale results
// are never displayed against a new query.
func (s State) Begin() State {
	return State{Loading: true, POIs: []poi.POI{}}
}

// WithLocation records a successful geocode while the search is still in
// flight.
func (s State) WithLocation(loc types.Location) State {
	next := s
	next.Location = &loc
	return next
}

// Succeed settles the search with its final POI list.
func (s State) Succeed(pois []poi.POI) State {
	next := s
	next.POIs = pois
	next.Loading = false
	next.Error = ""
	return next
}

// Fail settles the search with a user-facing message. The POI list is
// cleared; the location is deliberately kept, so a geocoded location is still
// shown when only the POI stage came up empty.
func (s State) Fail(message string) State {
	next := s
	next.POIs = []poi.POI{}
	next.Loading = false
	next.Error = message
	return next
}

// Tracker orders overlapping searches: each search takes a monotonically
// increasing sequence number at issue time, and a settling search is applied
// only if it is still the most recently issued one. Last user intent wins;
// earlier in-flight results are discarded.
type Tracker struct {
	mu     sync.Mutex
	latest uint64
}

// Begin issues the next sequence number, making it the current search.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	return t.latest
}

// Settle reports whether the search with the given sequence number is still
// the current one and may apply its result.
func (t *Tracker) Settle(seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return seq == t.latest
}
