package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebastiansb/reading-log/internal/controller"
)

// RouterConfig carries the dependencies the router needs.
type RouterConfig struct {
	App     *controller.Controller
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	entriesController := NewEntriesController(cfg.App)
	statsController := NewStatsController(cfg.App)
	exportController := NewExportController(cfg.App)
	profileController := NewProfileController(cfg.App)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.Version})
	})

	router.GET("/api/entries", entriesController.ListEntries)
	router.POST("/api/entries", entriesController.CreateEntry)
	router.GET("/api/entries/filters", entriesController.FilterOptions)
	router.GET("/api/entries/:id", entriesController.GetEntry)
	router.PUT("/api/entries/:id", entriesController.UpdateEntry)
	router.DELETE("/api/entries/:id", entriesController.DeleteEntry)
	router.GET("/api/entries/:id/report", statsController.EntryReport)

	router.GET("/api/stats", statsController.GetStatistics)

	router.GET("/api/export/csv", exportController.DownloadCSV)
	router.POST("/api/export/csv", exportController.ExportToFile)
	router.POST("/api/import/csv", exportController.ImportCSV)

	router.GET("/api/profile", profileController.GetProfile)
	router.PUT("/api/profile", profileController.UpdateProfile)
	router.GET("/api/settings/:key", profileController.GetSetting)
	router.PUT("/api/settings/:key", profileController.SetSetting)

	return router
}
