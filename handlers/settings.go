package handlers

import (
	"net/http"

	settingsRepo "firstlighthrm/database/repository/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler exposes the agency settings document.
type SettingsHandler struct {
	Repo settingsRepo.SettingsRepository
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(repo settingsRepo.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{Repo: repo}
}

// GetInterviewTemplateHandler handles GET /api/settings/interview-slots.
func (h *SettingsHandler) GetInterviewTemplateHandler(c *gin.Context) {
	logger := getLogger(c)

	doc, err := h.Repo.GetInterviewTemplate()
	if err != nil {
		logger.Error("Failed to retrieve interview slot settings", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Interview slot settings not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviewSlots": doc})
}

// UpdateInterviewTemplateHandler handles PUT /api/settings/interview-slots.
func (h *SettingsHandler) UpdateInterviewTemplateHandler(c *gin.Context) {
	logger := getLogger(c)

	var doc map[string]string
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Error("Invalid interview slot settings", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	settings, err := h.Repo.UpdateInterviewTemplate(doc)
	if err != nil {
		logger.Error("Failed to update interview slot settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
