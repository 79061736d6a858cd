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

// BatchJobHandler exposes the bulk-operation job API.
type BatchJobHandler struct {
	common  *CommonServices
	batches *services.BatchJobService
}

// NewBatchJobHandler creates a batch job handler.
func NewBatchJobHandler(common *CommonServices, batches *services.BatchJobService) *BatchJobHandler {
	return &BatchJobHandler{
		common:  common,
		batches: batches,
	}
}

// CreateBatchJob accepts a bulk operation, returning 202 with the pending job.
// Oversized or malformed requests are rejected before any item is touched.
func (h *BatchJobHandler) CreateBatchJob(c *gin.Context) {
	accountID, ok := accountIDFromHeader(c)
	if !ok {
		return
	}

	var req services.BatchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	job, err := h.batches.Create(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, services.ErrJobTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		logger.Log.Error("Failed to create batch job",
			zap.String("account_id", accountID.String()),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, job)
}

// GetBatchJob returns one job, including progress and per-item errors.
func (h *BatchJobHandler) GetBatchJob(c *gin.Context) {
	accountID, ok := accountIDFromHeader(c)
	if !ok {
		return
	}
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	job, err := h.batches.Get(c.Request.Context(), accountID, jobID)
	if err != nil {
		if errors.Is(err, services.ErrBatchJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Batch job not found"})
			return
		}
		logger.Log.Error("Failed to get batch job", zap.String("job_id", jobID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch batch job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListBatchJobs returns the account's jobs, newest first.
func (h *BatchJobHandler) ListBatchJobs(c *gin.Context) {
	accountID, ok := accountIDFromHeader(c)
	if !ok {
		return
	}

	jobs, err := h.batches.List(c.Request.Context(), accountID, parseLimit(c, 50))
	if err != nil {
		logger.Log.Error("Failed to list batch jobs",
			zap.String("account_id", accountID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list batch jobs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// RetryBatchJob creates a new job over the failed items of a finished one.
func (h *BatchJobHandler) RetryBatchJob(c *gin.Context) {
	accountID, ok := accountIDFromHeader(c)
	if !ok {
		return
	}
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	job, err := h.batches.RetryFailed(c.Request.Context(), accountID, jobID)
	if err != nil {
		if errors.Is(err, services.ErrBatchJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Batch job not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, job)
}
