package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/auth"
	"campusevents/internal/model"
)

// GetSettings returns the caller's settings. No row yet is a normal
// outcome and comes back as an empty preferences object.
func (h *Handler) GetSettings(c *gin.Context) {
	st, err := h.settings.Get(c.Request.Context(), auth.ClaimsFrom(c).Subject)
	if err != nil {
		fail(c, err)
		return
	}
	if st == nil {
		c.JSON(http.StatusOK, gin.H{"settings": nil, "preferences": model.Preferences{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": st, "preferences": st.Preferences})
}

type putSettingsRequest struct {
	Preferences model.Preferences `json:"preferences" binding:"required"`
}

// PutSettings replaces the caller's preferences wholesale.
func (h *Handler) PutSettings(c *gin.Context) {
	var req putSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.settings.Set(c.Request.Context(), auth.ClaimsFrom(c).Subject, req.Preferences)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
