package handlers

import (
	"net/http"

	"firstlighthrm/models"
	"firstlighthrm/services/candidate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CandidateHandler exposes candidate management and the hiring pipeline.
type CandidateHandler struct {
	Service candidate.CandidateService
}

// NewCandidateHandler creates a CandidateHandler.
func NewCandidateHandler(svc candidate.CandidateService) *CandidateHandler {
	return &CandidateHandler{Service: svc}
}

// CreateCandidateHandler handles POST /api/candidates.
func (h *CandidateHandler) CreateCandidateHandler(c *gin.Context) {
	logger := getLogger(c)

	var cand models.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		logger.Error("Invalid candidate creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateCandidate(&cand)
	if err != nil {
		logger.Error("Failed to create candidate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCandidateByIDHandler handles GET /api/candidates/:id.
func (h *CandidateHandler) GetCandidateByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	cand, err := h.Service.GetCandidateByID(id)
	if err != nil {
		logger.Error("Candidate not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	c.JSON(http.StatusOK, cand)
}

// GetAllCandidatesHandler handles GET /api/candidates.
func (h *CandidateHandler) GetAllCandidatesHandler(c *gin.Context) {
	logger := getLogger(c)

	candidates, err := h.Service.GetAllCandidates()
	if err != nil {
		logger.Error("Failed to retrieve candidates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get candidates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// UpdateCandidateHandler handles PUT /api/candidates/:id.
func (h *CandidateHandler) UpdateCandidateHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var cand models.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		logger.Error("Invalid candidate update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cand.ID = id // Ensure the ID is set.

	updated, err := h.Service.UpdateCandidate(&cand)
	if err != nil {
		logger.Error("Failed to update candidate", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCandidateHandler handles DELETE /api/candidates/:id.
func (h *CandidateHandler) DeleteCandidateHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.DeleteCandidate(id); err != nil {
		logger.Error("Failed to delete candidate", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted"})
}

// UpsertInterviewHandler handles PUT /api/candidates/:id/interview.
func (h *CandidateHandler) UpsertInterviewHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var iv models.Interview
	if err := c.ShouldBindJSON(&iv); err != nil {
		logger.Error("Invalid interview record", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	iv.CandidateID = id

	saved, err := h.Service.UpsertInterview(&iv)
	if err != nil {
		logger.Error("Failed to save interview", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// HireCandidateHandler handles POST /api/candidates/:id/hire.
func (h *CandidateHandler) HireCandidateHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	employee, err := h.Service.HireCandidate(id)
	if err != nil {
		logger.Error("Failed to hire candidate", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// GetPipelineHandler handles GET /api/candidates/pipeline.
func (h *CandidateHandler) GetPipelineHandler(c *gin.Context) {
	logger := getLogger(c)

	entries, err := h.Service.GetPipeline()
	if err != nil {
		logger.Error("Failed to assemble pipeline", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble pipeline"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pipeline": entries})
}
