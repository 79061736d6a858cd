package stripe_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/processor"
	"github.com/quotienthq/quotient-api/internal/processor/stripe"
)

const testWebhookSecret = "whsec_test_secret"

func init() {
	logger.InitLogger("test")
}

func newTestService() *stripe.Service {
	return stripe.NewService("sk_test_key", testWebhookSecret, zap.NewNop())
}

// signPayload builds a Stripe-Signature header for the payload the way Stripe
// does: v1 is an HMAC-SHA256 of "<timestamp>.<payload>" keyed by the endpoint
// secret.
func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestConstructEvent_ValidSignature(t *testing.T) {
	service := newTestService()

	payload := []byte(`{
		"id": "evt_test_1",
		"api_version": "2025-04-30.basil",
		"type": "customer.created",
		"data": {
			"object": {
				"id": "cus_test_1",
				"email": "owner@example.com",
				"name": "Test Owner",
				"metadata": {"account_id": "7b0c1f1e-0000-4000-8000-000000000001"}
			}
		}
	}`)

	event, err := service.ConstructEvent(payload, signPayload(payload, testWebhookSecret, time.Now()))
	require.NoError(t, err)

	assert.Equal(t, "evt_test_1", event.ID)
	assert.Equal(t, "customer.created", event.Type)
	assert.Equal(t, payload, event.Raw)

	customer, ok := event.Data.(processor.Customer)
	require.True(t, ok)
	assert.Equal(t, "cus_test_1", customer.ExternalID)
	assert.Equal(t, "owner@example.com", customer.Email)
	assert.Equal(t, "7b0c1f1e-0000-4000-8000-000000000001", customer.Metadata["account_id"])
}

func TestConstructEvent_RejectsBadSignature(t *testing.T) {
	service := newTestService()
	payload := []byte(`{"id":"evt_test_2","type":"customer.created","data":{"object":{}}}`)

	tests := []struct {
		name   string
		header string
	}{
		{"wrong secret", signPayload(payload, "whsec_wrong", time.Now())},
		{"stale timestamp", signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))},
		{"garbage header", "t=abc,v1=deadbeef"},
		{"empty header", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ConstructEvent(payload, tt.header)
			assert.Error(t, err)
		})
	}
}

func TestConstructEvent_TamperedPayloadRejected(t *testing.T) {
	service := newTestService()
	payload := []byte(`{"id":"evt_test_3","type":"customer.created","data":{"object":{}}}`)
	header := signPayload(payload, testWebhookSecret, time.Now())

	tampered := []byte(`{"id":"evt_test_3","type":"customer.deleted","data":{"object":{}}}`)
	_, err := service.ConstructEvent(tampered, header)
	assert.Error(t, err)
}

func TestDecodeEvent_SubscriptionPayload(t *testing.T) {
	service := newTestService()

	payload := []byte(`{
		"id": "evt_test_4",
		"type": "customer.subscription.updated",
		"data": {
			"object": {
				"id": "sub_test_1",
				"customer": "cus_test_1",
				"status": "active",
				"cancel_at_period_end": true,
				"items": {
					"data": [{
						"price": {"id": "price_test_1"},
						"current_period_start": 1700000000,
						"current_period_end": 1702592000
					}]
				}
			}
		}
	}`)

	event, err := service.DecodeEvent(payload)
	require.NoError(t, err)

	sub, ok := event.Data.(processor.Subscription)
	require.True(t, ok)
	assert.Equal(t, "sub_test_1", sub.ExternalID)
	assert.Equal(t, "cus_test_1", sub.CustomerID)
	assert.Equal(t, "price_test_1", sub.PriceID)
	assert.Equal(t, "active", sub.Status)
	assert.True(t, sub.CancelAtPeriodEnd)
	assert.Equal(t, int64(1700000000), sub.CurrentPeriodStart)
	assert.Equal(t, int64(1702592000), sub.CurrentPeriodEnd)
}

func TestDecodeEvent_UnknownTypeKeepsDataNil(t *testing.T) {
	service := newTestService()

	payload := []byte(`{"id":"evt_test_5","type":"invoice.finalized","data":{"object":{}}}`)
	event, err := service.DecodeEvent(payload)

	require.NoError(t, err)
	assert.Equal(t, "invoice.finalized", event.Type)
	assert.Nil(t, event.Data)
}

func TestDecodeEvent_MalformedJSON(t *testing.T) {
	service := newTestService()

	_, err := service.DecodeEvent([]byte(`{"id": "evt_broken"`))
	assert.Error(t, err)
}
