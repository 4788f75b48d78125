package handlers

import (
	"net/http"
	"time"

	"firstlighthrm/models"
	"firstlighthrm/services/interview"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InterviewHandler exposes the interview calendar and appointment booking.
type InterviewHandler struct {
	Service interview.InterviewService
}

// NewInterviewHandler creates an InterviewHandler.
func NewInterviewHandler(svc interview.InterviewService) *InterviewHandler {
	return &InterviewHandler{Service: svc}
}

// GetAvailableSlotsHandler handles GET /api/interviews/available-slots.
func (h *InterviewHandler) GetAvailableSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	days, err := h.Service.GetAvailableSlots(time.Now())
	if err != nil {
		logger.Error("Failed to compute available slots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute available slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// BookAppointmentHandler handles POST /api/interviews/appointments.
func (h *InterviewHandler) BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid appointment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Service.BookAppointment(req)
	if err != nil {
		logger.Error("Failed to book appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelAppointmentHandler handles DELETE /api/interviews/appointments/:id.
func (h *InterviewHandler) CancelAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.CancelAppointment(id); err != nil {
		logger.Error("Failed to cancel appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// ListAppointmentsHandler handles GET /api/interviews/appointments.
func (h *InterviewHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	appts, err := h.Service.ListAppointments(time.Now())
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
