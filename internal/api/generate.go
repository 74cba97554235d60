package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexvoice/backend/internal/middleware"
	"github.com/flexvoice/backend/internal/service"
	"github.com/flexvoice/backend/internal/types"
)

// GenerateHandler exposes the direct (non-voice) generation endpoint used by
// the web client's intake form.
type GenerateHandler struct {
	generator service.IGeneratorService
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(generator service.IGeneratorService) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

// RegisterRoutes registers the generation route
func (h *GenerateHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/plans/generate", h.Generate)
}

// Generate runs the full generation pipeline for the authenticated user.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req types.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.generator.GeneratePlan(c.Request.Context(), req.Intake(userID))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrUpstreamGeneration) || errors.Is(err, service.ErrUpstreamParse) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": "Failed to generate plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"plan": p})
}
