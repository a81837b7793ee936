// Package web holds the embedded single-page map UI.
package web

import _ "embed"

// Index is the map page served at the root route.
//
//go:embed index.html
var Index []byte
