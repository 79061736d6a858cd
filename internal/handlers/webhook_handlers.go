package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/processor"
	"github.com/quotienthq/quotient-api/internal/webhook"
)

// SignatureHeader carries the processor's payload signature.
const SignatureHeader = "Stripe-Signature"

// EventVerifier authenticates a raw delivery and decodes it into an event.
type EventVerifier interface {
	ConstructEvent(payload []byte, sigHeader string) (processor.Event, error)
}

// WebhookHandler receives processor deliveries and feeds them to the router.
type WebhookHandler struct {
	verifier EventVerifier
	router   *webhook.Router
}

// NewWebhookHandler creates a webhook handler.
func NewWebhookHandler(verifier EventVerifier, router *webhook.Router) *WebhookHandler {
	return &WebhookHandler{
		verifier: verifier,
		router:   router,
	}
}

// HandleEvent processes one webhook delivery. The response is 200 once the
// event is durably recorded, whether it was handled, ignored, a duplicate, or
// dead-lettered. Non-2xx tells the processor to redeliver, so it is reserved
// for signature failures and deliveries we could not record at all.
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		logger.Log.Error("Failed to read webhook payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := h.verifier.ConstructEvent(payload, c.GetHeader(SignatureHeader))
	if err != nil {
		logger.Log.Warn("Webhook signature verification failed",
			zap.String("client_ip", c.ClientIP()),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	result, err := h.router.Process(c.Request.Context(), event)
	if err != nil {
		logger.Log.Error("Failed to record webhook event",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "result": string(result)})
}
