package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/auth"
	"campusevents/internal/model"
	"campusevents/internal/notification"
	"campusevents/internal/queue"
)

type createRegistrationRequest struct {
	EventID string `json:"event_id" binding:"required"`
}

// CreateRegistration requests attendance for the calling user. A second
// request for the same event conflicts.
func (h *Handler) CreateRegistration(c *gin.Context) {
	var req createRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.events.ByID(c.Request.Context(), req.EventID)
	if err != nil {
		fail(c, err)
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	reg, err := h.registrations.Register(c.Request.Context(), auth.ClaimsFrom(c).Subject, req.EventID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// ListRegistrations returns the caller's registrations with their events.
func (h *Handler) ListRegistrations(c *gin.Context) {
	regs, err := h.registrations.ListForUser(c.Request.Context(), auth.ClaimsFrom(c).Subject)
	if err != nil {
		fail(c, err)
		return
	}
	if regs == nil {
		regs = []model.RegistrationWithEvent{}
	}
	c.JSON(http.StatusOK, gin.H{"registrations": regs})
}

// ApproveRegistration moves a pending registration to approved. Staff only.
func (h *Handler) ApproveRegistration(c *gin.Context) {
	h.decide(c, model.RegistrationApproved)
}

// RejectRegistration moves a pending registration to rejected. Staff only.
func (h *Handler) RejectRegistration(c *gin.Context) {
	h.decide(c, model.RegistrationRejected)
}

func (h *Handler) decide(c *gin.Context, status model.RegistrationStatus) {
	id := c.Param("id")

	var (
		reg *model.Registration
		err error
	)
	if status == model.RegistrationApproved {
		reg, err = h.registrations.Approve(c.Request.Context(), id)
	} else {
		reg, err = h.registrations.Reject(c.Request.Context(), id)
	}
	if err != nil {
		fail(c, err)
		return
	}

	h.publishDecision(c, reg)
	c.JSON(http.StatusOK, reg)
}

// publishDecision hands the decision to the worker, which writes the
// registrant's notification row. Failures are logged, not surfaced; the
// transition already happened.
func (h *Handler) publishDecision(c *gin.Context, reg *model.Registration) {
	eventName := reg.EventID
	if e, err := h.events.ByID(c.Request.Context(), reg.EventID); err == nil && e != nil {
		eventName = e.Name
	}
	job := notification.DecisionJob{
		UserID:    reg.UserID,
		EventName: eventName,
		Status:    string(reg.Status),
	}
	if err := h.queue.Publish(c.Request.Context(), queue.Message{Type: "registration_decision", Body: job.Encode()}); err != nil {
		log.Printf("queue publish failed: %v", err)
	}
}

type markAttendanceRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	EventID string `json:"event_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// MarkAttendance records presence for a user at an event. Staff only.
// Deliberately independent of registration state.
func (h *Handler) MarkAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.registrations.MarkAttendance(c.Request.Context(), req.UserID, req.EventID, model.AttendanceStatus(req.Status))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAttendance returns attendance rows for an event. Staff only.
func (h *Handler) ListAttendance(c *gin.Context) {
	records, err := h.registrations.AttendanceForEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if records == nil {
		records = []model.Attendance{}
	}
	c.JSON(http.StatusOK, gin.H{"attendance": records})
}

type createPaymentRequest struct {
	EventID string  `json:"event_id" binding:"required"`
	Amount  float64 `json:"amount"`
}

// CreatePayment records a pending payment by the caller for an event.
func (h *Handler) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.registrations.RecordPayment(c.Request.Context(), auth.ClaimsFrom(c).Subject, req.EventID, req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListPayments returns the caller's payments.
func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.registrations.PaymentsForUser(c.Request.Context(), auth.ClaimsFrom(c).Subject)
	if err != nil {
		fail(c, err)
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

type settlePaymentRequest struct {
	Status        string `json:"status" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

// SettlePayment marks a payment completed or failed. Staff only.
func (h *Handler) SettlePayment(c *gin.Context) {
	var req settlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.registrations.SettlePayment(c.Request.Context(), c.Param("id"), model.PaymentStatus(req.Status), req.TransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
