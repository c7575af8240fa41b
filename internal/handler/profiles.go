package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/auth"
	"campusevents/internal/model"
)

// GetProfile resolves the role-specific profile for a user. The role comes
// from the caller (query param, defaulting to the caller's own role when
// reading their own profile); an unknown or mismatched role simply finds
// nothing.
func (h *Handler) GetProfile(c *gin.Context) {
	id := c.Param("id")
	roleStr := c.Query("role")
	claims := auth.ClaimsFrom(c)
	if roleStr == "" && claims.Subject == id {
		roleStr = claims.Role
	}

	p, err := h.profiles.Resolve(c.Request.Context(), id, model.Role(roleStr))
	if err != nil {
		fail(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type profileUpdateRequest struct {
	Role string `json:"role"`
	model.ProfileChanges
}

// UpdateProfile applies a partial update to the role-specific profile row.
// A missing row is reported as 404 rather than silently created.
func (h *Handler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")
	claims := auth.ClaimsFrom(c)
	if claims.Subject != id && claims.Role != string(model.RoleCommittee) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot edit another user's profile"})
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	roleStr := req.Role
	if roleStr == "" && claims.Subject == id {
		roleStr = claims.Role
	}

	ok, err := h.profiles.Update(c.Request.Context(), id, model.Role(roleStr), req.ProfileChanges)
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	p, err := h.profiles.Resolve(c.Request.Context(), id, model.Role(roleStr))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
