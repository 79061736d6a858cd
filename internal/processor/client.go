package processor

import "context"

// Client is the outbound interface to the payment processor. The Stripe
// implementation lives in the stripe subpackage; services and tests depend
// only on this interface.
type Client interface {
	// GetCustomer retrieves a customer by processor id.
	GetCustomer(ctx context.Context, externalID string) (Customer, error)

	// ListCustomersByEmail returns all non-deleted processor customers
	// sharing the given email, oldest first.
	ListCustomersByEmail(ctx context.Context, email string) ([]Customer, error)

	// DeleteCustomer deletes the processor customer record.
	DeleteCustomer(ctx context.Context, externalID string) error

	// ListPaymentMethods returns the payment instruments attached to a customer.
	ListPaymentMethods(ctx context.Context, customerExternalID string) ([]PaymentMethod, error)

	// AttachPaymentMethod attaches a payment instrument to a customer.
	AttachPaymentMethod(ctx context.Context, paymentMethodID, customerExternalID string) error

	// DetachPaymentMethod detaches a payment instrument from its current customer.
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error

	// ListSubscriptions returns all subscriptions for a processor customer.
	ListSubscriptions(ctx context.Context, customerExternalID string) ([]Subscription, error)

	// GetPrice retrieves a price by processor id.
	GetPrice(ctx context.Context, externalID string) (Price, error)

	// GetProduct retrieves a product by processor id.
	GetProduct(ctx context.Context, externalID string) (Product, error)
}
