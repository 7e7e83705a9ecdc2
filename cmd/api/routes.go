package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Page
	app.router.GET("/", app.handleIndex)
	app.router.POST("/search", app.handleSearchForm)

	// JSON API
	api := app.router.Group("/api")
	api.GET("/state", app.handleGetState)
	api.POST("/search", app.handleSearch)
	api.GET("/weather-codes", app.handleGetWeatherCodes)

	app.router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
