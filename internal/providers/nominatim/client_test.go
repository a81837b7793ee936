package nominatim

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(url string) *Client {
	c := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.baseURL = url
	return c
}

func TestClient_Search(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":      r.URL.Query().Get("q"),
			"format": r.URL.Query().Get("format"),
			"limit":  r.URL.Query().Get("limit"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"lat": "21.0277644", "lon": "105.8341598", "display_name": "Hanoi, Vietnam"},
			{"lat": "10.0", "lon": "10.0", "display_name": "ignored second match"}
		]`))
	}))
	defer srv.Close()

	place, err := testClient(srv.URL).Search("Hanoi", "Vietnam")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}

	if gotQuery["q"] != "Hanoi, Vietnam" {
		t.Errorf("q param = %q, want country-qualified query", gotQuery["q"])
	}
	if gotQuery["format"] != "json" || gotQuery["limit"] != "1" {
		t.Errorf("format/limit = %q/%q, want json/1", gotQuery["format"], gotQuery["limit"])
	}

	if place.Latitude != 21.0277644 {
		t.Errorf("Latitude = %v, want parsed float", place.Latitude)
	}
	if place.Longitude != 105.8341598 {
		t.Errorf("Longitude = %v, want parsed float", place.Longitude)
	}
	if place.DisplayName != "Hanoi, Vietnam" {
		t.Errorf("DisplayName = %q", place.DisplayName)
	}
}

func TestClient_Search_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Search("Atlantis", "Vietnam")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Search() error = %v, want ErrNotFound", err)
	}
}

func TestClient_Search_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Search("Hanoi", "Vietnam")
	if err == nil {
		t.Fatal("Search() expected error on non-200 status")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("transport failure must not be reported as not-found: %v", err)
	}
	if !strings.Contains(err.Error(), "status 502") {
		t.Errorf("error = %v, want status in message", err)
	}
}

func TestClient_Search_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"unparseable latitude", `[{"lat": "north", "lon": "105.8", "display_name": "x"}]`},
		{"unparseable longitude", `[{"lat": "21.0", "lon": "east", "display_name": "x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := testClient(srv.URL).Search("Hanoi", "Vietnam")
			if err == nil {
				t.Fatal("Search() expected error")
			}
			if errors.Is(err, ErrNotFound) {
				t.Errorf("parse failure must not be reported as not-found: %v", err)
			}
		})
	}
}
