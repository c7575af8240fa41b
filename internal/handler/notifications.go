package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/auth"
	"campusevents/internal/model"
)

// ListNotifications returns the caller's notifications, newest first.
func (h *Handler) ListNotifications(c *gin.Context) {
	notifs, err := h.notifications.ListForUser(c.Request.Context(), auth.ClaimsFrom(c).Subject)
	if err != nil {
		fail(c, err)
		return
	}
	if notifs == nil {
		notifs = []model.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifs})
}

// ReadNotification flags a notification read.
func (h *Handler) ReadNotification(c *gin.Context) {
	ok, err := h.notifications.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}
