package main

// @title VietSpot API
// @version 1.0
// @description Place search and nearby points of interest for Vietnam, backed by OpenStreetMap's Nominatim and Overpass services.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
