package handlers

import (
	"net/http"

	clientRepo "firstlighthrm/database/repository/client"
	"firstlighthrm/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes care client management.
type ClientHandler struct {
	Repo clientRepo.ClientRepository
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(repo clientRepo.ClientRepository) *ClientHandler {
	return &ClientHandler{Repo: repo}
}

// CreateClientHandler handles POST /api/clients.
func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	logger := getLogger(c)

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		logger.Error("Invalid client creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Repo.Create(&client); err != nil {
		logger.Error("Failed to create client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClientByIDHandler handles GET /api/clients/:id.
func (h *ClientHandler) GetClientByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	client, err := h.Repo.GetByID(id)
	if err != nil {
		logger.Error("Client not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetAllClientsHandler handles GET /api/clients.
func (h *ClientHandler) GetAllClientsHandler(c *gin.Context) {
	logger := getLogger(c)

	clients, err := h.Repo.GetAll()
	if err != nil {
		logger.Error("Failed to retrieve clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get clients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// UpdateClientHandler handles PUT /api/clients/:id.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		logger.Error("Invalid client update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	client.ID = id // Ensure the ID is set.

	if err := h.Repo.Update(&client); err != nil {
		logger.Error("Failed to update client", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClientHandler handles DELETE /api/clients/:id.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Repo.Delete(id); err != nil {
		logger.Error("Failed to delete client", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
