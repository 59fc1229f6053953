package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/controller"
)

// ExportController exposes CSV export and import over HTTP.
type ExportController struct {
	app *controller.Controller
}

func NewExportController(app *controller.Controller) *ExportController {
	return &ExportController{app: app}
}

// DownloadCSV streams the filtered entries as a CSV download with a
// dated filename.
// GET /api/export/csv
func (xc *ExportController) DownloadCSV(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("readings_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := xc.app.WriteCSV(c.Writer, filter); err != nil {
		respondInternalError(c, err, "csv download")
	}
}

type exportToFileRequest struct {
	Path string `json:"path" binding:"required"`
}

// ExportToFile writes the filtered entries to a CSV file on disk at a
// caller-supplied path.
// POST /api/export/csv
func (xc *ExportController) ExportToFile(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	var req exportToFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "path is required")
		return
	}

	count, err := xc.app.ExportToCSV(req.Path, filter)
	if err != nil {
		if apperrors.IsIO(err) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		respondInternalError(c, err, "csv export")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("exported %d entries to %s", count, req.Path),
		Data:    gin.H{"count": count, "path": req.Path},
	})
}

// ImportCSV reads entries from an uploaded CSV file and persists them.
// POST /api/import/csv (multipart form, field "csv_file")
func (xc *ExportController) ImportCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("csv_file")
	if err != nil {
		respondBadRequest(c, "no CSV file provided")
		return
	}
	defer file.Close()

	result, err := xc.app.ImportCSV(file)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("failed to parse CSV: %v", err))
		return
	}

	c.JSON(http.StatusOK, result)
}
