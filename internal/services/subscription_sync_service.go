package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/processor"
)

// Subscription statuses considered live. At most one live subscription may
// exist per account; reconcileAccount restores that after every upsert.
func isLiveStatus(status string) bool {
	return status == "trialing" || status == "active"
}

// Deduplicator repairs duplicate processor-side customer records for one
// account. Implemented by CustomerDedupService; the sync service triggers it
// reactively when a second processor customer id shows up for an account.
type Deduplicator interface {
	DedupAccount(ctx context.Context, accountID uuid.UUID) error
}

// SubscriptionSyncService converts processor-side objects into local records
// with conflict-safe upsert semantics.
type SubscriptionSyncService struct {
	queries   db.Querier
	processor processor.Client
	dedup     Deduplicator
	logger    *zap.Logger
}

// NewSubscriptionSyncService creates a new sync service. dedup may be nil;
// reactive deduplication is then skipped.
func NewSubscriptionSyncService(queries db.Querier, client processor.Client, dedup Deduplicator) *SubscriptionSyncService {
	return &SubscriptionSyncService{
		queries:   queries,
		processor: client,
		dedup:     dedup,
		logger:    logger.Log,
	}
}

// ApplySubscription applies the processor's reported subscription state.
// Idempotent and safe under concurrent, out-of-order delivery: the upsert is
// keyed on the processor subscription id and overwrites full state, so two
// deliveries for the same id converge to whichever completed last.
func (s *SubscriptionSyncService) ApplySubscription(ctx context.Context, sub processor.Subscription) error {
	if sub.ExternalID == "" || sub.CustomerID == "" {
		return fmt.Errorf("%w: subscription missing id or customer", ErrMalformedPayload)
	}

	customer, err := s.queries.GetBillingCustomerByProcessorID(ctx, textVal(sub.CustomerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrUnmappedCustomer, sub.CustomerID)
		}
		return fmt.Errorf("failed to resolve account for customer %s: %w", sub.CustomerID, err)
	}

	// Opportunistic catalog refresh so subscription displays never show an
	// unresolved price id. Failure is logged, never fatal.
	if sub.PriceID != "" {
		s.refreshCatalog(ctx, sub.PriceID)
	}

	metadataBytes, err := json.Marshal(sub.Metadata)
	if err != nil {
		return fmt.Errorf("%w: subscription metadata: %v", ErrMalformedPayload, err)
	}

	row, err := s.queries.UpsertSubscriptionByProcessorID(ctx, db.UpsertSubscriptionByProcessorIDParams{
		AccountID:               customer.AccountID,
		ProcessorSubscriptionID: textVal(sub.ExternalID),
		ProcessorPriceID:        textVal(sub.PriceID),
		Status:                  sub.Status,
		CurrentPeriodStart:      unixTimestamptz(sub.CurrentPeriodStart),
		CurrentPeriodEnd:        unixTimestamptz(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd:       sub.CancelAtPeriodEnd,
		TrialStart:              unixTimestamptz(sub.TrialStart),
		TrialEnd:                unixTimestamptz(sub.TrialEnd),
		CanceledAt:              unixTimestamptz(sub.CanceledAt),
		EndedAt:                 unixTimestamptz(sub.EndedAt),
		Metadata:                metadataBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert subscription %s: %w", sub.ExternalID, err)
	}

	s.logger.Info("Subscription state applied",
		zap.String("processor_subscription_id", sub.ExternalID),
		zap.String("account_id", customer.AccountID.String()),
		zap.String("status", sub.Status),
		zap.Bool("created", row.Inserted))

	// First successful creation of a paid subscription copies the billing
	// contact from the default payment instrument. Non-critical side effect.
	if row.Inserted && isLiveStatus(sub.Status) {
		if err := s.copyBillingContact(ctx, customer.AccountID, sub.CustomerID); err != nil {
			s.logger.Warn("Failed to copy billing contact for new subscription",
				zap.String("processor_subscription_id", sub.ExternalID),
				zap.Error(err))
		}
	}

	return s.reconcileAccount(ctx, customer.AccountID)
}

// ApplyCustomer maintains the processor customer mapping. Customers created
// by this system carry the local account id in metadata; customers without it
// can only be bound via checkout, so they are logged and ignored here.
func (s *SubscriptionSyncService) ApplyCustomer(ctx context.Context, cust processor.Customer) error {
	if cust.ExternalID == "" {
		return fmt.Errorf("%w: customer missing id", ErrMalformedPayload)
	}

	accountRef, ok := cust.Metadata["account_id"]
	if !ok || accountRef == "" {
		// Contact refresh for an already-mapped customer.
		existing, err := s.queries.GetBillingCustomerByProcessorID(ctx, textVal(cust.ExternalID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				s.logger.Info("Ignoring customer event with no account reference",
					zap.String("processor_customer_id", cust.ExternalID))
				return nil
			}
			return fmt.Errorf("failed to look up customer mapping %s: %w", cust.ExternalID, err)
		}
		return s.updateContact(ctx, existing.AccountID, cust.Email, cust.Name, cust.Phone)
	}

	accountID, err := uuid.Parse(accountRef)
	if err != nil {
		return fmt.Errorf("%w: invalid account_id metadata %q", ErrMalformedPayload, accountRef)
	}

	return s.bindCustomer(ctx, accountID, cust.ExternalID, cust.Email)
}

// ApplyCustomerDeleted clears the processor id from the mapping while
// preserving the local account and its history.
func (s *SubscriptionSyncService) ApplyCustomerDeleted(ctx context.Context, cust processor.Customer) error {
	if cust.ExternalID == "" {
		return fmt.Errorf("%w: customer missing id", ErrMalformedPayload)
	}

	affected, err := s.queries.ClearBillingCustomerProcessorID(ctx, textVal(cust.ExternalID))
	if err != nil {
		return fmt.Errorf("failed to clear customer mapping %s: %w", cust.ExternalID, err)
	}
	if affected == 0 {
		s.logger.Info("Customer deletion for unknown mapping",
			zap.String("processor_customer_id", cust.ExternalID))
	}
	return nil
}

// ApplyPrice upserts a price by processor id.
func (s *SubscriptionSyncService) ApplyPrice(ctx context.Context, price processor.Price) error {
	if price.ExternalID == "" {
		return fmt.Errorf("%w: price missing id", ErrMalformedPayload)
	}

	_, err := s.queries.UpsertPrice(ctx, db.UpsertPriceParams{
		ProcessorPriceID:   price.ExternalID,
		ProcessorProductID: textVal(price.ProductID),
		UnitAmount:         pgtype.Int8{Int64: price.UnitAmount, Valid: true},
		Currency:           price.Currency,
		RecurringInterval:  textVal(price.RecurringInterval),
		Active:             price.Active,
		Nickname:           textVal(price.Nickname),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert price %s: %w", price.ExternalID, err)
	}
	return nil
}

// ApplyProduct upserts a product by processor id.
func (s *SubscriptionSyncService) ApplyProduct(ctx context.Context, product processor.Product) error {
	if product.ExternalID == "" {
		return fmt.Errorf("%w: product missing id", ErrMalformedPayload)
	}

	_, err := s.queries.UpsertProduct(ctx, db.UpsertProductParams{
		ProcessorProductID: product.ExternalID,
		Name:               product.Name,
		Description:        textVal(product.Description),
		Active:             product.Active,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", product.ExternalID, err)
	}
	return nil
}

// ApplyCheckoutSession binds the processor customer created at checkout to
// the local account that initiated it. This is the mapping-creation path.
func (s *SubscriptionSyncService) ApplyCheckoutSession(ctx context.Context, session processor.CheckoutSession) error {
	if session.CustomerID == "" {
		s.logger.Info("Checkout session without customer, nothing to bind",
			zap.String("session_id", session.ExternalID))
		return nil
	}
	if session.ClientReferenceID == "" {
		return fmt.Errorf("%w: checkout session %s missing client reference", ErrMalformedPayload, session.ExternalID)
	}

	accountID, err := uuid.Parse(session.ClientReferenceID)
	if err != nil {
		return fmt.Errorf("%w: invalid client reference %q", ErrMalformedPayload, session.ClientReferenceID)
	}

	return s.bindCustomer(ctx, accountID, session.CustomerID, "")
}

// ApplyPaymentMethod copies the billing contact from a newly attached
// payment instrument to the local customer record.
func (s *SubscriptionSyncService) ApplyPaymentMethod(ctx context.Context, pm processor.PaymentMethod) error {
	if pm.CustomerID == "" {
		s.logger.Info("Payment method not attached to a customer, ignoring",
			zap.String("payment_method_id", pm.ExternalID))
		return nil
	}

	customer, err := s.queries.GetBillingCustomerByProcessorID(ctx, textVal(pm.CustomerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrUnmappedCustomer, pm.CustomerID)
		}
		return fmt.Errorf("failed to resolve account for customer %s: %w", pm.CustomerID, err)
	}

	return s.updateContact(ctx, customer.AccountID, pm.BillingEmail, pm.BillingName, pm.BillingPhone)
}

// ProvisionFreePlan creates a local-only subscription row with no processor
// id. Reconciliation cancels it automatically when a paid plan appears.
func (s *SubscriptionSyncService) ProvisionFreePlan(ctx context.Context, accountID uuid.UUID, priceID string) (db.Subscription, error) {
	live, err := s.queries.ListLiveSubscriptionsByAccount(ctx, accountID)
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to check live subscriptions: %w", err)
	}
	if len(live) > 0 {
		return db.Subscription{}, fmt.Errorf("%w: account %s already has a live subscription", ErrIntegrityConflict, accountID)
	}

	sub, err := s.queries.CreateLocalSubscription(ctx, db.CreateLocalSubscriptionParams{
		AccountID:        accountID,
		ProcessorPriceID: textVal(priceID),
		Metadata:         []byte(`{"plan":"free"}`),
	})
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to provision free plan: %w", err)
	}

	s.logger.Info("Free plan provisioned",
		zap.String("account_id", accountID.String()),
		zap.String("subscription_id", sub.ID.String()))
	return sub, nil
}

// bindCustomer points the account's mapping at the given processor customer.
// Observing a second distinct processor id for one account triggers reactive
// deduplication; its failure never fails the binding.
func (s *SubscriptionSyncService) bindCustomer(ctx context.Context, accountID uuid.UUID, processorCustomerID, email string) error {
	previous, err := s.queries.GetBillingCustomerByAccountID(ctx, accountID)
	duplicateObserved := err == nil &&
		previous.ProcessorCustomerID.Valid &&
		previous.ProcessorCustomerID.String != processorCustomerID
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to look up existing mapping for account %s: %w", accountID, err)
	}

	_, err = s.queries.UpsertBillingCustomerMapping(ctx, db.UpsertBillingCustomerMappingParams{
		AccountID:           accountID,
		ProcessorCustomerID: textVal(processorCustomerID),
		Email:               textVal(email),
	})
	if err != nil {
		return fmt.Errorf("failed to bind customer %s to account %s: %w", processorCustomerID, accountID, err)
	}

	if duplicateObserved && s.dedup != nil {
		s.logger.Warn("Multiple processor customers observed for account, running deduplication",
			zap.String("account_id", accountID.String()),
			zap.String("previous_customer_id", previous.ProcessorCustomerID.String),
			zap.String("new_customer_id", processorCustomerID))
		if err := s.dedup.DedupAccount(ctx, accountID); err != nil {
			s.logger.Error("Reactive customer deduplication failed",
				zap.String("account_id", accountID.String()),
				zap.Error(err))
		}
	}

	return nil
}

// reconcileAccount restores the single-live-subscription invariant. It
// re-reads the live rows immediately before acting and is idempotent; the
// status-guarded cancel means a concurrent reconciliation simply finds
// nothing left to do. Two live paid rows cannot be resolved safely here and
// surface as an integrity conflict.
func (s *SubscriptionSyncService) reconcileAccount(ctx context.Context, accountID uuid.UUID) error {
	live, err := s.queries.ListLiveSubscriptionsByAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to list live subscriptions for %s: %w", accountID, err)
	}
	if len(live) <= 1 {
		return nil
	}

	paidCount := 0
	for _, sub := range live {
		if sub.ProcessorSubscriptionID.Valid {
			paidCount++
		}
	}
	if paidCount > 1 {
		return fmt.Errorf("%w: account %s has %d live paid subscriptions", ErrIntegrityConflict, accountID, paidCount)
	}

	// A paid plan always wins over a free placeholder. Rows come newest
	// first, so the winner is the newest paid row, or the newest row overall
	// when everything is free.
	winner := live[0]
	for _, sub := range live {
		if sub.ProcessorSubscriptionID.Valid {
			winner = sub
			break
		}
	}

	now := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}
	for _, sub := range live {
		if sub.ID == winner.ID {
			continue
		}
		affected, err := s.queries.CancelSubscriptionIfLive(ctx, db.CancelSubscriptionIfLiveParams{
			ID:      sub.ID,
			EndedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to cancel superseded subscription %s: %w", sub.ID, err)
		}
		if affected > 0 {
			s.logger.Info("Superseded subscription canceled by reconciliation",
				zap.String("account_id", accountID.String()),
				zap.String("subscription_id", sub.ID.String()),
				zap.Bool("was_paid", sub.ProcessorSubscriptionID.Valid))
		}
	}

	return nil
}

// refreshCatalog fetches the referenced price and its product from the
// processor when they are unknown locally.
func (s *SubscriptionSyncService) refreshCatalog(ctx context.Context, priceID string) {
	_, err := s.queries.GetPriceByProcessorID(ctx, priceID)
	if err == nil {
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Warn("Failed to check local price", zap.String("price_id", priceID), zap.Error(err))
		return
	}

	price, err := s.processor.GetPrice(ctx, priceID)
	if err != nil {
		s.logger.Warn("Failed to fetch price from processor", zap.String("price_id", priceID), zap.Error(err))
		return
	}
	if err := s.ApplyPrice(ctx, price); err != nil {
		s.logger.Warn("Failed to store refreshed price", zap.String("price_id", priceID), zap.Error(err))
		return
	}

	if price.ProductID == "" {
		return
	}
	if _, err := s.queries.GetProductByProcessorID(ctx, price.ProductID); err == nil || !errors.Is(err, pgx.ErrNoRows) {
		return
	}
	product, err := s.processor.GetProduct(ctx, price.ProductID)
	if err != nil {
		s.logger.Warn("Failed to fetch product from processor", zap.String("product_id", price.ProductID), zap.Error(err))
		return
	}
	if err := s.ApplyProduct(ctx, product); err != nil {
		s.logger.Warn("Failed to store refreshed product", zap.String("product_id", price.ProductID), zap.Error(err))
	}
}

// copyBillingContact copies contact details from the customer's default
// payment instrument to the local record.
func (s *SubscriptionSyncService) copyBillingContact(ctx context.Context, accountID uuid.UUID, processorCustomerID string) error {
	methods, err := s.processor.ListPaymentMethods(ctx, processorCustomerID)
	if err != nil {
		return fmt.Errorf("failed to list payment methods for %s: %w", processorCustomerID, err)
	}
	if len(methods) == 0 {
		return nil
	}

	pm := methods[0]
	return s.updateContact(ctx, accountID, pm.BillingEmail, pm.BillingName, pm.BillingPhone)
}

func (s *SubscriptionSyncService) updateContact(ctx context.Context, accountID uuid.UUID, email, name, phone string) error {
	if email == "" && name == "" && phone == "" {
		return nil
	}
	err := s.queries.UpdateBillingCustomerContact(ctx, db.UpdateBillingCustomerContactParams{
		AccountID:    accountID,
		Email:        textVal(email),
		BillingName:  textVal(name),
		BillingPhone: textVal(phone),
	})
	if err != nil {
		return fmt.Errorf("failed to update billing contact for account %s: %w", accountID, err)
	}
	return nil
}

// textVal builds a nullable text that is NULL for the empty string.
func textVal(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// unixTimestamptz converts a Unix-seconds timestamp to a nullable
// timestamptz; zero means unset.
func unixTimestamptz(unix int64) pgtype.Timestamptz {
	if unix == 0 {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: time.Unix(unix, 0).UTC(), Valid: true}
}
