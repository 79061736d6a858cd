package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/processor"
)

// ListSubscriptions returns all subscriptions for a processor customer,
// including canceled ones so callers can judge live state themselves.
func (s *Service) ListSubscriptions(ctx context.Context, customerExternalID string) ([]processor.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerExternalID),
		Status:   stripe.String("all"),
	}

	var subscriptions []processor.Subscription
	for sub, err := range s.client.V1Subscriptions.List(ctx, params) {
		if err != nil {
			s.logger.Error("Error iterating Stripe subscriptions", zap.Error(err), zap.String("stripe_customer_id", customerExternalID))
			return nil, fmt.Errorf("stripe: error listing subscriptions for %s: %w", customerExternalID, err)
		}
		if sub == nil {
			continue
		}
		subscriptions = append(subscriptions, mapSubscription(sub))
	}

	return subscriptions, nil
}
