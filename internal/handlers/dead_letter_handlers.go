package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/services"
)

// DeadLetterHandler exposes the operator workflow over failed events.
type DeadLetterHandler struct {
	deadLetters *services.DeadLetterService
}

// NewDeadLetterHandler creates a dead letter handler.
func NewDeadLetterHandler(deadLetters *services.DeadLetterService) *DeadLetterHandler {
	return &DeadLetterHandler{deadLetters: deadLetters}
}

// ListDeadLetters returns unresolved entries, most recently failed first.
func (h *DeadLetterHandler) ListDeadLetters(c *gin.Context) {
	entries, err := h.deadLetters.List(c.Request.Context(), parseLimit(c, 50))
	if err != nil {
		logger.Log.Error("Failed to list dead letter entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list dead letter entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetDeadLetter returns one entry including its stored payload.
func (h *DeadLetterHandler) GetDeadLetter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dead letter id"})
		return
	}

	entry, err := h.deadLetters.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDeadLetterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dead letter entry not found"})
			return
		}
		logger.Log.Error("Failed to get dead letter entry", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dead letter entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ResolveDeadLetterRequest carries the operator's resolution note.
type ResolveDeadLetterRequest struct {
	Note string `json:"note"`
}

// ResolveDeadLetter replays the stored event and marks the entry resolved on
// success. A failed replay leaves the entry unresolved and returns the error.
func (h *DeadLetterHandler) ResolveDeadLetter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dead letter id"})
		return
	}

	var req ResolveDeadLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := h.deadLetters.Resolve(c.Request.Context(), id, req.Note)
	if err != nil {
		if errors.Is(err, services.ErrDeadLetterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dead letter entry not found"})
			return
		}
		logger.Log.Error("Failed to resolve dead letter entry", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}
