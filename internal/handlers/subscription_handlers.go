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

// SubscriptionHandler exposes subscription provisioning and the manual
// customer dedup trigger.
type SubscriptionHandler struct {
	common *CommonServices
	sync   *services.SubscriptionSyncService
	dedup  services.Deduplicator
}

// NewSubscriptionHandler creates a subscription handler.
func NewSubscriptionHandler(common *CommonServices, sync *services.SubscriptionSyncService, dedup services.Deduplicator) *SubscriptionHandler {
	return &SubscriptionHandler{
		common: common,
		sync:   sync,
		dedup:  dedup,
	}
}

// ProvisionFreePlanRequest selects the free plan to provision.
type ProvisionFreePlanRequest struct {
	PriceID string `json:"price_id" binding:"required"`
}

// ProvisionFreePlan creates a local-only free subscription for the account.
// Rejected when the account already holds a live subscription.
func (h *SubscriptionHandler) ProvisionFreePlan(c *gin.Context) {
	accountID, ok := accountIDFromHeader(c)
	if !ok {
		return
	}

	var req ProvisionFreePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price_id is required"})
		return
	}

	sub, err := h.sync.ProvisionFreePlan(c.Request.Context(), accountID, req.PriceID)
	if err != nil {
		if errors.Is(err, services.ErrIntegrityConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already has an active subscription"})
			return
		}
		logger.Log.Error("Failed to provision free plan",
			zap.String("account_id", accountID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provision subscription"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// ListSubscriptions returns the account's live subscriptions.
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	accountID, ok := accountIDFromHeader(c)
	if !ok {
		return
	}

	subs, err := h.common.DB.ListLiveSubscriptionsByAccount(c.Request.Context(), accountID)
	if err != nil {
		logger.Log.Error("Failed to list subscriptions",
			zap.String("account_id", accountID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": subs})
}

// DedupCustomer runs duplicate-customer detection and merge for one account.
func (h *SubscriptionHandler) DedupCustomer(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("account_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}

	if err := h.dedup.DedupAccount(c.Request.Context(), accountID); err != nil {
		logger.Log.Error("Customer dedup failed",
			zap.String("account_id", accountID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deduplicated": true})
}
