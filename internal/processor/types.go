// Package processor defines the canonical types exchanged with the external
// payment processor. Services depend on these types and the Client interface
// rather than on any concrete provider SDK.
package processor

// Customer is the processor-side customer record.
type Customer struct {
	ExternalID             string            `json:"external_id"`
	Email                  string            `json:"email"`
	Name                   string            `json:"name"`
	Phone                  string            `json:"phone"`
	Created                int64             `json:"created"`
	Deleted                bool              `json:"deleted"`
	DefaultPaymentMethodID string            `json:"default_payment_method_id"`
	Metadata               map[string]string `json:"metadata"`
}

// Subscription is the processor-side subscription state. All timestamps are
// Unix seconds as reported by the processor; zero means unset.
type Subscription struct {
	ExternalID         string            `json:"external_id"`
	CustomerID         string            `json:"customer_id"`
	PriceID            string            `json:"price_id"`
	Status             string            `json:"status"`
	CurrentPeriodStart int64             `json:"current_period_start"`
	CurrentPeriodEnd   int64             `json:"current_period_end"`
	CancelAtPeriodEnd  bool              `json:"cancel_at_period_end"`
	TrialStart         int64             `json:"trial_start"`
	TrialEnd           int64             `json:"trial_end"`
	CanceledAt         int64             `json:"canceled_at"`
	EndedAt            int64             `json:"ended_at"`
	Created            int64             `json:"created"`
	Metadata           map[string]string `json:"metadata"`
}

// Price is a processor-side price record.
type Price struct {
	ExternalID        string `json:"external_id"`
	ProductID         string `json:"product_id"`
	UnitAmount        int64  `json:"unit_amount"`
	Currency          string `json:"currency"`
	RecurringInterval string `json:"recurring_interval"`
	Active            bool   `json:"active"`
	Nickname          string `json:"nickname"`
}

// Product is a processor-side product record.
type Product struct {
	ExternalID  string `json:"external_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// PaymentMethod is a stored payment instrument attached to a processor customer.
type PaymentMethod struct {
	ExternalID   string `json:"external_id"`
	CustomerID   string `json:"customer_id"`
	Type         string `json:"type"`
	BillingName  string `json:"billing_name"`
	BillingEmail string `json:"billing_email"`
	BillingPhone string `json:"billing_phone"`
}

// CheckoutSession carries the completed-checkout binding between a processor
// customer and the local account that initiated the checkout.
type CheckoutSession struct {
	ExternalID        string `json:"external_id"`
	CustomerID        string `json:"customer_id"`
	ClientReferenceID string `json:"client_reference_id"`
	SubscriptionID    string `json:"subscription_id"`
}

// Event is a verified, decoded processor event. Data holds one of the typed
// payloads above depending on Type; unknown types leave Data nil and rely on
// Raw for auditing.
type Event struct {
	ID   string      `json:"id"`
	Type string      `json:"type"`
	Raw  []byte      `json:"raw"`
	Data interface{} `json:"data"`
}
