package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/processor"
)

// DedupEventType marks dead letter entries raised by deduplication when a
// losing record could not be deleted safely.
const DedupEventType = "customer.dedup_review"

// CustomerDedupService detects and merges duplicate processor-side customer
// records mapping to one local account.
type CustomerDedupService struct {
	queries   db.Querier
	processor processor.Client
	logger    *zap.Logger
}

var _ Deduplicator = (*CustomerDedupService)(nil)

// NewCustomerDedupService creates a new dedup service.
func NewCustomerDedupService(queries db.Querier, client processor.Client) *CustomerDedupService {
	return &CustomerDedupService{
		queries:   queries,
		processor: client,
		logger:    logger.Log,
	}
}

// scoredRecord carries the facts the scoring rule weighs.
type scoredRecord struct {
	customer       processor.Customer
	hasLiveSub     bool
	paymentMethods []processor.PaymentMethod
}

// DedupAccount merges duplicate processor customers for one account. The
// winner is the highest-scoring record: live subscription outranks stored
// payment methods, which outrank recency. Payment methods move to the winner;
// losing records holding a live subscription are never deleted, only flagged
// for manual review. The local mapping is updated last, after all external
// calls succeed, so a crash mid-operation leaves the processor ahead of the
// mapping rather than the reverse. Running it again with no new data is a
// no-op.
func (s *CustomerDedupService) DedupAccount(ctx context.Context, accountID uuid.UUID) error {
	mapping, err := s.queries.GetBillingCustomerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("no billing customer record for account %s", accountID)
		}
		return fmt.Errorf("failed to load billing customer for account %s: %w", accountID, err)
	}

	email := mapping.Email.String
	if email == "" && mapping.ProcessorCustomerID.Valid {
		cust, err := s.processor.GetCustomer(ctx, mapping.ProcessorCustomerID.String)
		if err != nil {
			return fmt.Errorf("failed to fetch mapped customer %s: %w", mapping.ProcessorCustomerID.String, err)
		}
		email = cust.Email
	}
	if email == "" {
		s.logger.Info("No email on record, cannot search for duplicates",
			zap.String("account_id", accountID.String()))
		return nil
	}

	records, err := s.processor.ListCustomersByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to list processor customers for %s: %w", email, err)
	}
	if len(records) <= 1 {
		// Nothing to merge; make sure the mapping points at the survivor.
		if len(records) == 1 && (!mapping.ProcessorCustomerID.Valid || mapping.ProcessorCustomerID.String != records[0].ExternalID) {
			return s.updateMapping(ctx, accountID, records[0].ExternalID, email)
		}
		return nil
	}

	scored, err := s.scoreRecords(ctx, records)
	if err != nil {
		return err
	}

	winner := scored[0]
	s.logger.Info("Duplicate processor customers found",
		zap.String("account_id", accountID.String()),
		zap.String("email", email),
		zap.Int("count", len(scored)),
		zap.String("winner", winner.customer.ExternalID))

	for _, loser := range scored[1:] {
		if err := s.absorbLoser(ctx, accountID, winner, loser); err != nil {
			return err
		}
	}

	// Local mapping moves last: everything before this is externally
	// convergent, so a repair run after a crash finishes the job.
	return s.updateMapping(ctx, accountID, winner.customer.ExternalID, email)
}

// scoreRecords gathers subscription and payment-method facts for each record
// and sorts best-first.
func (s *CustomerDedupService) scoreRecords(ctx context.Context, records []processor.Customer) ([]scoredRecord, error) {
	scored := make([]scoredRecord, 0, len(records))
	for _, record := range records {
		subs, err := s.processor.ListSubscriptions(ctx, record.ExternalID)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscriptions for %s: %w", record.ExternalID, err)
		}
		hasLive := false
		for _, sub := range subs {
			if isLiveStatus(sub.Status) {
				hasLive = true
				break
			}
		}

		methods, err := s.processor.ListPaymentMethods(ctx, record.ExternalID)
		if err != nil {
			return nil, fmt.Errorf("failed to list payment methods for %s: %w", record.ExternalID, err)
		}

		scored = append(scored, scoredRecord{
			customer:       record,
			hasLiveSub:     hasLive,
			paymentMethods: methods,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].hasLiveSub != scored[j].hasLiveSub {
			return scored[i].hasLiveSub
		}
		if (len(scored[i].paymentMethods) > 0) != (len(scored[j].paymentMethods) > 0) {
			return len(scored[i].paymentMethods) > 0
		}
		return scored[i].customer.Created > scored[j].customer.Created
	})

	return scored, nil
}

// absorbLoser moves the loser's payment methods to the winner, then deletes
// the loser unless it holds a live subscription, in which case it is flagged
// for manual review instead. Subscriptions are never moved or canceled
// automatically.
func (s *CustomerDedupService) absorbLoser(ctx context.Context, accountID uuid.UUID, winner, loser scoredRecord) error {
	for _, pm := range loser.paymentMethods {
		if err := s.processor.DetachPaymentMethod(ctx, pm.ExternalID); err != nil {
			return fmt.Errorf("failed to detach payment method %s: %w", pm.ExternalID, err)
		}
		if err := s.processor.AttachPaymentMethod(ctx, pm.ExternalID, winner.customer.ExternalID); err != nil {
			return fmt.Errorf("failed to attach payment method %s to %s: %w", pm.ExternalID, winner.customer.ExternalID, err)
		}
		s.logger.Info("Payment method moved to winning customer",
			zap.String("payment_method_id", pm.ExternalID),
			zap.String("from", loser.customer.ExternalID),
			zap.String("to", winner.customer.ExternalID))
	}

	if loser.hasLiveSub {
		return s.flagForManualReview(ctx, accountID, winner.customer.ExternalID, loser.customer.ExternalID)
	}

	if err := s.processor.DeleteCustomer(ctx, loser.customer.ExternalID); err != nil {
		return fmt.Errorf("failed to delete duplicate customer %s: %w", loser.customer.ExternalID, err)
	}
	s.logger.Info("Duplicate processor customer deleted",
		zap.String("account_id", accountID.String()),
		zap.String("processor_customer_id", loser.customer.ExternalID))
	return nil
}

// flagForManualReview records a losing customer that holds a live
// subscription. Deleting it would be an unrecoverable customer-impacting
// action, so a human decides. The synthetic event id keeps repeated dedup
// runs from duplicating the entry.
func (s *CustomerDedupService) flagForManualReview(ctx context.Context, accountID uuid.UUID, winnerID, loserID string) error {
	payload, err := json.Marshal(map[string]string{
		"account_id":          accountID.String(),
		"winning_customer_id": winnerID,
		"losing_customer_id":  loserID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal dedup review payload: %w", err)
	}

	_, err = s.queries.UpsertDeadLetterEvent(ctx, db.UpsertDeadLetterEventParams{
		ProcessorEventID: "dedup_" + loserID,
		EventType:        DedupEventType,
		Payload:          payload,
		FailureReason: pgtype.Text{
			String: fmt.Sprintf("duplicate customer %s holds a live subscription and cannot be deleted automatically", loserID),
			Valid:  true,
		},
		RequiresManualReview: true,
	})
	if err != nil {
		return fmt.Errorf("failed to flag customer %s for manual review: %w", loserID, err)
	}

	s.logger.Warn("Duplicate customer with live subscription flagged for manual review",
		zap.String("account_id", accountID.String()),
		zap.String("processor_customer_id", loserID))
	return nil
}

func (s *CustomerDedupService) updateMapping(ctx context.Context, accountID uuid.UUID, processorCustomerID, email string) error {
	_, err := s.queries.UpsertBillingCustomerMapping(ctx, db.UpsertBillingCustomerMappingParams{
		AccountID:           accountID,
		ProcessorCustomerID: textVal(processorCustomerID),
		Email:               textVal(email),
	})
	if err != nil {
		return fmt.Errorf("failed to update customer mapping for account %s: %w", accountID, err)
	}
	return nil
}
