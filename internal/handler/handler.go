// Package handler exposes the HTTP API over the domain services. Role
// checks for staff-only routes live here, not in the workflow packages.
package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/auth"
	"campusevents/internal/config"
	"campusevents/internal/event"
	"campusevents/internal/model"
	"campusevents/internal/notification"
	"campusevents/internal/profile"
	"campusevents/internal/queue"
	"campusevents/internal/registration"
	"campusevents/internal/settings"
	"campusevents/internal/user"
)

type Handler struct {
	cfg           config.App
	users         *user.Service
	profiles      *profile.Resolver
	events        *event.Service
	registrations *registration.Service
	settings      *settings.Service
	notifications *notification.Service
	queue         queue.Queue
}

func New(cfg config.App, users *user.Service, profiles *profile.Resolver, events *event.Service,
	registrations *registration.Service, settings *settings.Service,
	notifications *notification.Service, q queue.Queue) *Handler {
	return &Handler{
		cfg:           cfg,
		users:         users,
		profiles:      profiles,
		events:        events,
		registrations: registrations,
		settings:      settings,
		notifications: notifications,
		queue:         q,
	}
}

// Register wires all routes onto the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/v1/auth/signup", h.Signup)
	r.POST("/v1/auth/login", h.Login)

	authed := r.Group("/v1", auth.RequireAuth(h.cfg.JWTSigningKey, h.cfg.JWTIssuer))
	{
		authed.GET("/users", h.ListUsers)
		authed.GET("/users/:id", h.GetUser)
		authed.PATCH("/users/:id", h.UpdateUser)
		authed.GET("/users/:id/profile", h.GetProfile)
		authed.PATCH("/users/:id/profile", h.UpdateProfile)

		authed.GET("/events", h.ListEvents)
		authed.GET("/events/:id", h.GetEvent)

		authed.POST("/registrations", h.CreateRegistration)
		authed.GET("/registrations", h.ListRegistrations)

		authed.POST("/payments", h.CreatePayment)
		authed.GET("/payments", h.ListPayments)

		authed.GET("/notifications", h.ListNotifications)
		authed.POST("/notifications/:id/read", h.ReadNotification)

		authed.GET("/settings", h.GetSettings)
		authed.PUT("/settings", h.PutSettings)
	}

	staff := authed.Group("", auth.RequireRole(model.RoleTeacher, model.RoleCommittee))
	{
		staff.POST("/events", h.CreateEvent)
		staff.POST("/registrations/:id/approve", h.ApproveRegistration)
		staff.POST("/registrations/:id/reject", h.RejectRegistration)
		staff.POST("/attendance", h.MarkAttendance)
		staff.GET("/events/:id/attendance", h.ListAttendance)
		staff.POST("/payments/:id/settle", h.SettlePayment)
	}
}

// fail maps domain rejections to specific statuses; anything else is a
// store failure, logged and surfaced generically.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrDuplicateRegistration),
		errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("store failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
