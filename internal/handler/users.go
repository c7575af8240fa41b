package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/auth"
	"campusevents/internal/model"
)

// ListUsers returns every account.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser returns one account.
func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.users.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUser applies a partial update to the caller's own account.
// Committee members may edit anyone. Role and email are not updatable.
func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	claims := auth.ClaimsFrom(c)
	if claims.Subject != id && claims.Role != string(model.RoleCommittee) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot edit another user"})
		return
	}

	var changes model.UserUpdate
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.users.UpdateProfile(c.Request.Context(), id, changes)
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	u, err := h.users.ByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
