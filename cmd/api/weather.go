package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	weatherapp "medi-weather/internal/app"
	"medi-weather/internal/ui"
	"medi-weather/internal/weathercode"
)

// SearchRequest is the body of POST /api/search
type SearchRequest struct {
	City string `json:"city" example:"Sao Paulo"` // City name, surrounding whitespace is ignored
}

// SearchResponse carries the display state after a search
type SearchResponse struct {
	State weatherapp.State `json:"state"`
	Kind  string           `json:"kind,omitempty" example:"not_found"` // Error kind when the search failed
}

// WeatherCodeResponse is one entry of the weather code catalog
type WeatherCodeResponse struct {
	Code        int    `json:"code" example:"1"`
	Description string `json:"description" example:"Partly cloudy"`
	DayIcon     string `json:"dayIcon" example:"🌤️"`
	NightIcon   string `json:"nightIcon" example:"☁️"`
}

// handleIndex renders the weather page
func (app *App) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, ui.IndexTemplate, app.controller.State())
}

// handleSearchForm submits the page form and redirects back to the page
func (app *App) handleSearchForm(c *gin.Context) {
	city := c.PostForm("city")

	// The error is already reflected in the state shown after the redirect.
	_ = app.controller.Submit(context.WithoutCancel(c.Request.Context()), city)

	c.Redirect(http.StatusSeeOther, "/")
}

// handleGetState godoc
// @Summary Get display state
// @Description Current input, loading flag, error banner and the formatted current, hourly and daily panels
// @Tags weather
// @Produce json
// @Success 200 {object} app.State
// @Router /api/state [get]
func (app *App) handleGetState(c *gin.Context) {
	c.JSON(http.StatusOK, app.controller.State())
}

// handleSearch godoc
// @Summary Search for a city
// @Description Resolve a city name, fetch its forecast and update the display state
// @Tags weather
// @Accept json
// @Produce json
// @Param request body SearchRequest true "City to search for"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} SearchResponse "Empty city name"
// @Failure 404 {object} SearchResponse "City not found"
// @Failure 500 {object} SearchResponse "Unexpected failure"
// @Failure 502 {object} SearchResponse "Open-Meteo unavailable"
// @Router /api/search [post]
func (app *App) handleSearch(c *gin.Context) {
	var req SearchRequest

	// Bind and validate body
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Loads run to completion even if the client goes away
	err := app.controller.Submit(context.WithoutCancel(c.Request.Context()), req.City)
	kind := weatherapp.Kind(err)

	c.JSON(statusForKind(kind), SearchResponse{
		State: app.controller.State(),
		Kind:  string(kind),
	})
}

// handleGetWeatherCodes godoc
// @Summary List weather codes
// @Description WMO weather codes with their descriptions and day/night icons
// @Tags weather
// @Produce json
// @Success 200 {array} WeatherCodeResponse
// @Router /api/weather-codes [get]
func (app *App) handleGetWeatherCodes(c *gin.Context) {
	entries := weathercode.Codes()
	resp := make([]WeatherCodeResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, WeatherCodeResponse{
			Code:        int(e.Code),
			Description: e.Description,
			DayIcon:     e.Icon.Pick(true),
			NightIcon:   e.Icon.Pick(false),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func statusForKind(kind weatherapp.ErrorKind) int {
	switch kind {
	case weatherapp.KindNone:
		return http.StatusOK
	case weatherapp.KindValidation:
		return http.StatusBadRequest
	case weatherapp.KindNotFound:
		return http.StatusNotFound
	case weatherapp.KindServiceUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
