package main

// @title Medi-Weather API
// @version 1.0
// @description City weather lookup backed by Open-Meteo geocoding and forecasts.
// @description Serves a server-rendered page at / and the same state as JSON under /api.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
// @schemes http
