package stripe

import (
	"context"
	"fmt"
	"sort"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/processor"
)

// GetCustomer retrieves a customer by their external ID from Stripe.
func (s *Service) GetCustomer(ctx context.Context, externalID string) (processor.Customer, error) {
	cust, err := s.client.V1Customers.Retrieve(ctx, externalID, &stripe.CustomerRetrieveParams{})
	if err != nil {
		s.logger.Error("Failed to fetch Stripe customer", zap.Error(err), zap.String("stripe_customer_id", externalID))
		return processor.Customer{}, fmt.Errorf("stripe: failed to fetch customer %s: %w", externalID, err)
	}

	if cust.Deleted {
		return processor.Customer{}, fmt.Errorf("stripe: customer %s is deleted", externalID)
	}

	return mapCustomer(cust), nil
}

// ListCustomersByEmail returns all non-deleted customers sharing the given
// email, ordered oldest first.
func (s *Service) ListCustomersByEmail(ctx context.Context, email string) ([]processor.Customer, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}

	var customers []processor.Customer
	for cust, err := range s.client.V1Customers.List(ctx, params) {
		if err != nil {
			s.logger.Error("Error iterating Stripe customers list", zap.Error(err), zap.String("email", email))
			return nil, fmt.Errorf("stripe: error listing customers by email: %w", err)
		}
		if cust == nil || cust.Deleted {
			continue
		}
		customers = append(customers, mapCustomer(cust))
	}

	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Created < customers[j].Created
	})

	return customers, nil
}

// DeleteCustomer deletes a customer record in Stripe.
func (s *Service) DeleteCustomer(ctx context.Context, externalID string) error {
	s.logger.Info("Deleting Stripe customer", zap.String("stripe_customer_id", externalID))

	_, err := s.client.V1Customers.Delete(ctx, externalID, &stripe.CustomerDeleteParams{})
	if err != nil {
		s.logger.Error("Failed to delete Stripe customer", zap.Error(err), zap.String("stripe_customer_id", externalID))
		return fmt.Errorf("stripe: failed to delete customer %s: %w", externalID, err)
	}

	return nil
}

// ListPaymentMethods returns the payment instruments attached to a customer.
func (s *Service) ListPaymentMethods(ctx context.Context, customerExternalID string) ([]processor.PaymentMethod, error) {
	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerExternalID),
	}

	var methods []processor.PaymentMethod
	for pm, err := range s.client.V1PaymentMethods.List(ctx, params) {
		if err != nil {
			s.logger.Error("Error iterating Stripe payment methods", zap.Error(err), zap.String("stripe_customer_id", customerExternalID))
			return nil, fmt.Errorf("stripe: error listing payment methods for %s: %w", customerExternalID, err)
		}
		if pm == nil {
			continue
		}
		methods = append(methods, mapPaymentMethod(pm))
	}

	return methods, nil
}

// AttachPaymentMethod attaches a payment instrument to a customer.
func (s *Service) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerExternalID string) error {
	_, err := s.client.V1PaymentMethods.Attach(ctx, paymentMethodID, &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerExternalID),
	})
	if err != nil {
		s.logger.Error("Failed to attach payment method",
			zap.Error(err),
			zap.String("payment_method_id", paymentMethodID),
			zap.String("stripe_customer_id", customerExternalID))
		return fmt.Errorf("stripe: failed to attach payment method %s to %s: %w", paymentMethodID, customerExternalID, err)
	}
	return nil
}

// DetachPaymentMethod detaches a payment instrument from its current customer.
func (s *Service) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	_, err := s.client.V1PaymentMethods.Detach(ctx, paymentMethodID, &stripe.PaymentMethodDetachParams{})
	if err != nil {
		s.logger.Error("Failed to detach payment method", zap.Error(err), zap.String("payment_method_id", paymentMethodID))
		return fmt.Errorf("stripe: failed to detach payment method %s: %w", paymentMethodID, err)
	}
	return nil
}
