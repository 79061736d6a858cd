package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/processor"
)

// GetPrice retrieves a price by processor id.
func (s *Service) GetPrice(ctx context.Context, externalID string) (processor.Price, error) {
	price, err := s.client.V1Prices.Retrieve(ctx, externalID, &stripe.PriceRetrieveParams{})
	if err != nil {
		s.logger.Error("Failed to fetch Stripe price", zap.Error(err), zap.String("stripe_price_id", externalID))
		return processor.Price{}, fmt.Errorf("stripe: failed to fetch price %s: %w", externalID, err)
	}
	return mapPrice(price), nil
}

// GetProduct retrieves a product by processor id.
func (s *Service) GetProduct(ctx context.Context, externalID string) (processor.Product, error) {
	product, err := s.client.V1Products.Retrieve(ctx, externalID, &stripe.ProductRetrieveParams{})
	if err != nil {
		s.logger.Error("Failed to fetch Stripe product", zap.Error(err), zap.String("stripe_product_id", externalID))
		return processor.Product{}, fmt.Errorf("stripe: failed to fetch product %s: %w", externalID, err)
	}
	return mapProduct(product), nil
}
