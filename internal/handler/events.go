package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/auth"
	"campusevents/internal/model"
)

// ListEvents returns the whole catalogue.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvent returns one event.
func (h *Handler) GetEvent(c *gin.Context) {
	e, err := h.events.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

type createEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Location    string `json:"location"`
}

// CreateEvent adds an event organized by the caller. Staff only.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := &model.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		OrganizerID: auth.ClaimsFrom(c).Subject,
	}
	if err := h.events.Create(c.Request.Context(), e); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}
