package handlers

import (
	"net/http"

	"firstlighthrm/models"
	"firstlighthrm/services/caregiver"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CaregiverHandler exposes caregiver management and schedule proposals.
type CaregiverHandler struct {
	Service caregiver.CaregiverService
}

// NewCaregiverHandler creates a CaregiverHandler.
func NewCaregiverHandler(svc caregiver.CaregiverService) *CaregiverHandler {
	return &CaregiverHandler{Service: svc}
}

// RegisterCaregiverHandler handles POST /api/caregivers.
func (h *CaregiverHandler) RegisterCaregiverHandler(c *gin.Context) {
	logger := getLogger(c)

	var cg models.Caregiver
	if err := c.ShouldBindJSON(&cg); err != nil {
		logger.Error("Invalid caregiver registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.RegisterCaregiver(&cg)
	if err != nil {
		logger.Error("Failed to register caregiver", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCaregiverByIDHandler handles GET /api/caregivers/:id.
func (h *CaregiverHandler) GetCaregiverByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	cg, err := h.Service.GetCaregiverByID(id)
	if err != nil {
		logger.Error("Caregiver not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Caregiver not found"})
		return
	}
	c.JSON(http.StatusOK, cg)
}

// GetAllCaregiversHandler handles GET /api/caregivers.
func (h *CaregiverHandler) GetAllCaregiversHandler(c *gin.Context) {
	logger := getLogger(c)

	caregivers, err := h.Service.GetAllCaregivers()
	if err != nil {
		logger.Error("Failed to retrieve caregivers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get caregivers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"caregivers": caregivers})
}

// UpdateCaregiverHandler handles PUT /api/caregivers/:id.
func (h *CaregiverHandler) UpdateCaregiverHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var cg models.Caregiver
	if err := c.ShouldBindJSON(&cg); err != nil {
		logger.Error("Invalid caregiver update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cg.ID = id // Ensure the ID is set.

	updated, err := h.Service.UpdateCaregiver(&cg)
	if err != nil {
		logger.Error("Failed to update caregiver", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCaregiverHandler handles DELETE /api/caregivers/:id.
func (h *CaregiverHandler) DeleteCaregiverHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.DeleteCaregiver(id); err != nil {
		logger.Error("Failed to delete caregiver", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Caregiver deleted"})
}

// SetAvailabilityHandler handles PUT /api/caregivers/:id/availability.
func (h *CaregiverHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var grid models.WeeklyAvailabilityGrid
	if err := c.ShouldBindJSON(&grid); err != nil {
		logger.Error("Invalid availability grid", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cg, err := h.Service.SetAvailability(id, grid)
	if err != nil {
		logger.Error("Failed to set availability", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cg)
}

// ProposeScheduleHandler handles GET /api/caregivers/:id/schedule-proposal.
// Either a clientId query parameter (the client's estimated hours are used)
// or a raw estimate query parameter must be supplied.
func (h *CaregiverHandler) ProposeScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var (
		proposal models.ProposedSchedule
		err      error
	)
	if clientID := c.Query("clientId"); clientID != "" {
		proposal, err = h.Service.ProposeScheduleForClient(id, clientID)
	} else if estimate := c.Query("estimate"); estimate != "" {
		proposal, err = h.Service.ProposeSchedule(id, estimate)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either clientId or estimate is required"})
		return
	}

	if err != nil {
		logger.Error("Failed to propose schedule", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, proposal)
}
