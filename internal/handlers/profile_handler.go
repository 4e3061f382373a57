package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profilecat/internal/services"
)

// ProfileHandler handles the profiles that own categories.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest represents the request payload for creating a profile
type CreateProfileRequest struct {
	Name string `json:"name" binding:"required,trimmed_max=150"`
}

// CreateProfile handles the creation of a new profile
// @Summary     Create a profile
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Param       request body CreateProfileRequest true "Profile details"
// @Success     201 {object} ProfileResponse "Profile created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/profiles/ [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.CreateProfile(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, presentProfile(profile))
}

// GetProfile handles retrieving a profile
// @Summary     Get a profile
// @Tags        profiles
// @Produce     json
// @Param       id path string true "Profile ID"
// @Success     200 {object} ProfileResponse "Profile"
// @Failure     400 {object} ErrorResponse "Invalid profile ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/profiles/{id}/ [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(profileID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentProfile(profile))
}

// DeleteProfile handles deleting a profile and everything it owns
// @Summary     Delete a profile
// @Description Delete a profile. Its categories, domains and items are deleted with it.
// @Tags        profiles
// @Param       id path string true "Profile ID"
// @Success     204 "Profile deleted"
// @Failure     400 {object} ErrorResponse "Invalid profile ID"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/profiles/{id}/ [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	profileID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.profileService.DeleteProfile(profileID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
