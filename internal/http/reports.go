package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebastiansb/reading-log/internal/controller"
)

// StatsController exposes the statistics views over HTTP.
type StatsController struct {
	app *controller.Controller
}

func NewStatsController(app *controller.Controller) *StatsController {
	return &StatsController{app: app}
}

// GetStatistics returns the aggregate summary, optionally restricted
// by the same query-string filter as the entries list.
// GET /api/stats
func (sc *StatsController) GetStatistics(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	summary, err := sc.app.GetStatistics(filter)
	if err != nil {
		respondTypedError(c, err, "statistics")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// EntryReport returns the detailed report for one entry.
// GET /api/entries/:id/report
func (sc *StatsController) EntryReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := sc.app.EntryReport(id)
	if err != nil {
		respondTypedError(c, err, "entry report")
		return
	}
	c.JSON(http.StatusOK, report)
}
