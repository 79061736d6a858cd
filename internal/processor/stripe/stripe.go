// Package stripe implements the processor.Client interface and webhook
// verification against Stripe.
package stripe

import (
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/processor"
)

// Ensure Service implements the processor client interface
var _ processor.Client = (*Service)(nil)

// Service wraps the Stripe API client. Method implementations for specific
// resources are in separate files within this package (customer.go,
// subscription.go, catalog.go, webhook.go).
type Service struct {
	client        *stripe.Client
	webhookSecret string
	logger        *zap.Logger
}

// NewService creates a configured Stripe service.
func NewService(apiKey, webhookSecret string, logger *zap.Logger) *Service {
	return &Service{
		client:        stripe.NewClient(apiKey, nil),
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// mapCustomer converts a Stripe customer to the canonical processor type.
func mapCustomer(c *stripe.Customer) processor.Customer {
	if c == nil {
		return processor.Customer{}
	}

	var defaultPM string
	if c.InvoiceSettings != nil && c.InvoiceSettings.DefaultPaymentMethod != nil {
		defaultPM = c.InvoiceSettings.DefaultPaymentMethod.ID
	}

	return processor.Customer{
		ExternalID:             c.ID,
		Email:                  c.Email,
		Name:                   c.Name,
		Phone:                  c.Phone,
		Created:                c.Created,
		Deleted:                c.Deleted,
		DefaultPaymentMethodID: defaultPM,
		Metadata:               c.Metadata,
	}
}

// mapSubscription converts a Stripe subscription to the canonical processor
// type. Period boundaries live on the subscription items in this API version;
// the first item is the primary one.
func mapSubscription(s *stripe.Subscription) processor.Subscription {
	if s == nil {
		return processor.Subscription{}
	}

	var priceID string
	var periodStart, periodEnd int64
	if s.Items != nil && len(s.Items.Data) > 0 && s.Items.Data[0] != nil {
		item := s.Items.Data[0]
		if item.Price != nil {
			priceID = item.Price.ID
		}
		periodStart = item.CurrentPeriodStart
		periodEnd = item.CurrentPeriodEnd
	}

	var customerID string
	if s.Customer != nil {
		customerID = s.Customer.ID
	}

	return processor.Subscription{
		ExternalID:         s.ID,
		CustomerID:         customerID,
		PriceID:            priceID,
		Status:             string(s.Status),
		CurrentPeriodStart: periodStart,
		CurrentPeriodEnd:   periodEnd,
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		TrialStart:         s.TrialStart,
		TrialEnd:           s.TrialEnd,
		CanceledAt:         s.CanceledAt,
		EndedAt:            s.EndedAt,
		Created:            s.Created,
		Metadata:           s.Metadata,
	}
}

// mapPrice converts a Stripe price to the canonical processor type.
func mapPrice(p *stripe.Price) processor.Price {
	if p == nil {
		return processor.Price{}
	}

	var productID string
	if p.Product != nil {
		productID = p.Product.ID
	}

	var interval string
	if p.Recurring != nil {
		interval = string(p.Recurring.Interval)
	}

	return processor.Price{
		ExternalID:        p.ID,
		ProductID:         productID,
		UnitAmount:        p.UnitAmount,
		Currency:          string(p.Currency),
		RecurringInterval: interval,
		Active:            p.Active,
		Nickname:          p.Nickname,
	}
}

// mapProduct converts a Stripe product to the canonical processor type.
func mapProduct(p *stripe.Product) processor.Product {
	if p == nil {
		return processor.Product{}
	}
	return processor.Product{
		ExternalID:  p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
	}
}

// mapPaymentMethod converts a Stripe payment method to the canonical
// processor type.
func mapPaymentMethod(pm *stripe.PaymentMethod) processor.PaymentMethod {
	if pm == nil {
		return processor.PaymentMethod{}
	}

	var customerID string
	if pm.Customer != nil {
		customerID = pm.Customer.ID
	}

	mapped := processor.PaymentMethod{
		ExternalID: pm.ID,
		CustomerID: customerID,
		Type:       string(pm.Type),
	}
	if pm.BillingDetails != nil {
		mapped.BillingName = pm.BillingDetails.Name
		mapped.BillingEmail = pm.BillingDetails.Email
		mapped.BillingPhone = pm.BillingDetails.Phone
	}
	return mapped
}

// mapCheckoutSession converts a completed Stripe checkout session to the
// canonical processor type.
func mapCheckoutSession(cs *stripe.CheckoutSession) processor.CheckoutSession {
	if cs == nil {
		return processor.CheckoutSession{}
	}

	var customerID, subscriptionID string
	if cs.Customer != nil {
		customerID = cs.Customer.ID
	}
	if cs.Subscription != nil {
		subscriptionID = cs.Subscription.ID
	}

	return processor.CheckoutSession{
		ExternalID:        cs.ID,
		CustomerID:        customerID,
		ClientReferenceID: cs.ClientReferenceID,
		SubscriptionID:    subscriptionID,
	}
}
