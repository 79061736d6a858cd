package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/processor"
)

// ConstructEvent verifies the webhook signature (timestamped HMAC with the
// library's default 5 minute tolerance) and decodes the payload into a
// canonical event. Verification failure returns before any decoding; callers
// must not record a processing attempt for a rejected payload.
func (s *Service) ConstructEvent(payload []byte, sigHeader string) (processor.Event, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		s.logger.Error("Webhook signature verification failed", zap.Error(err))
		return processor.Event{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	return s.decodeEvent(&event, payload)
}

// DecodeEvent decodes a raw payload without signature verification. Used for
// replaying stored payloads that were verified on first delivery.
func (s *Service) DecodeEvent(payload []byte) (processor.Event, error) {
	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return processor.Event{}, fmt.Errorf("failed to parse event payload: %w", err)
	}
	return s.decodeEvent(&event, payload)
}

func (s *Service) decodeEvent(event *stripe.Event, payload []byte) (processor.Event, error) {
	decoded := processor.Event{
		ID:   event.ID,
		Type: string(event.Type),
		Raw:  payload,
	}

	switch event.Type {
	case stripe.EventTypeCustomerCreated,
		stripe.EventTypeCustomerUpdated,
		stripe.EventTypeCustomerDeleted:
		var customer stripe.Customer
		if err := json.Unmarshal(event.Data.Raw, &customer); err != nil {
			return decoded, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		decoded.Data = mapCustomer(&customer)

	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return decoded, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		decoded.Data = mapSubscription(&subscription)

	case stripe.EventTypePriceCreated,
		stripe.EventTypePriceUpdated:
		var price stripe.Price
		if err := json.Unmarshal(event.Data.Raw, &price); err != nil {
			return decoded, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		decoded.Data = mapPrice(&price)

	case stripe.EventTypeProductCreated,
		stripe.EventTypeProductUpdated:
		var product stripe.Product
		if err := json.Unmarshal(event.Data.Raw, &product); err != nil {
			return decoded, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		decoded.Data = mapProduct(&product)

	case stripe.EventTypePaymentMethodAttached:
		var paymentMethod stripe.PaymentMethod
		if err := json.Unmarshal(event.Data.Raw, &paymentMethod); err != nil {
			return decoded, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		decoded.Data = mapPaymentMethod(&paymentMethod)

	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return decoded, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		decoded.Data = mapCheckoutSession(&session)

	default:
		// Unknown types keep Data nil; the router logs and ignores them.
	}

	return decoded, nil
}
