package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebastiansb/reading-log/internal/controller"
)

// ProfileController exposes the user profile and view preferences.
type ProfileController struct {
	app *controller.Controller
}

func NewProfileController(app *controller.Controller) *ProfileController {
	return &ProfileController{app: app}
}

// GetProfile returns the user profile.
// GET /api/profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, err := pc.app.GetProfile()
	if err != nil {
		respondTypedError(c, err, "get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile merges the provided fields into the profile.
// PUT /api/profile
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input controller.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	profile, err := pc.app.UpdateProfile(input)
	if err != nil {
		respondTypedError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetSetting returns a stored preference.
// GET /api/settings/:key
func (pc *ProfileController) GetSetting(c *gin.Context) {
	key := c.Param("key")
	value, err := pc.app.GetSetting(key)
	if err != nil {
		respondTypedError(c, err, "get setting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

type setSettingRequest struct {
	Value string `json:"value"`
}

// SetSetting stores a preference value.
// PUT /api/settings/:key
func (pc *ProfileController) SetSetting(c *gin.Context) {
	key := c.Param("key")

	var req setSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := pc.app.SetSetting(key, req.Value); err != nil {
		respondTypedError(c, err, "set setting")
		return
	}
	respondSuccess(c, "setting saved")
}
