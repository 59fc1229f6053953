package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebastiansb/reading-log/internal/controller"
)

// EntriesController exposes reading entry CRUD over HTTP.
type EntriesController struct {
	app *controller.Controller
}

func NewEntriesController(app *controller.Controller) *EntriesController {
	return &EntriesController{app: app}
}

// ListEntries returns entries matching the query-string filter.
// GET /api/entries?year=&genre=&min_rating=&max_rating=&search=&sort=
func (ec *EntriesController) ListEntries(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	result, err := ec.app.ListEntries(filter)
	if err != nil {
		respondInternalError(c, err, "list entries")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetEntry returns a single entry.
// GET /api/entries/:id
func (ec *EntriesController) GetEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := ec.app.GetEntry(id)
	if err != nil {
		respondTypedError(c, err, "get entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreateEntry validates and persists a new entry.
// POST /api/entries
func (ec *EntriesController) CreateEntry(c *gin.Context) {
	var input controller.EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	entry, err := ec.app.AddEntry(input)
	if err != nil {
		respondTypedError(c, err, "create entry")
		return
	}
	respondCreated(c, entry)
}

// UpdateEntry applies a partial update to an existing entry.
// PUT /api/entries/:id
func (ec *EntriesController) UpdateEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input controller.EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	entry, err := ec.app.UpdateEntry(id, input)
	if err != nil {
		respondTypedError(c, err, "update entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes an entry.
// DELETE /api/entries/:id
func (ec *EntriesController) DeleteEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ec.app.DeleteEntry(id); err != nil {
		respondTypedError(c, err, "delete entry")
		return
	}
	respondSuccess(c, "entry deleted")
}

// FilterOptions returns the distinct years and genres for the view's
// filter dropdowns.
// GET /api/entries/filters
func (ec *EntriesController) FilterOptions(c *gin.Context) {
	options, err := ec.app.FilterOptions()
	if err != nil {
		respondInternalError(c, err, "filter options")
		return
	}
	c.JSON(http.StatusOK, options)
}
