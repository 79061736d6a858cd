package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/mocks"
	"github.com/quotienthq/quotient-api/internal/processor"
	"github.com/quotienthq/quotient-api/internal/services"
)

func TestDedupAccount_SingleRecordIsNoOp(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewCustomerDedupService(mockQuerier, mockProcessor)
	ctx := context.Background()

	accountID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByAccountID(ctx, accountID).
		Return(db.BillingCustomer{
			AccountID:           accountID,
			ProcessorCustomerID: textOf("cus_only"),
			Email:               textOf("solo@example.com"),
		}, nil)
	mockProcessor.EXPECT().
		ListCustomersByEmail(ctx, "solo@example.com").
		Return([]processor.Customer{{ExternalID: "cus_only", Email: "solo@example.com"}}, nil)

	// No deletes, no payment method moves, no mapping change.
	err := service.DedupAccount(ctx, accountID)
	assert.NoError(t, err)
}

func TestDedupAccount_MergesDuplicatesIntoWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockProcessor := mocks.NewMockClient(ctrl)
	service := services.NewCustomerDedupService(mockQuerier, mockProcessor)
	ctx := context.Background()

	accountID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByAccountID(ctx, accountID).
		Return(db.BillingCustomer{
			AccountID:           accountID,
			ProcessorCustomerID: textOf("cus_loser"),
			Email:               textOf("dup@example.com"),
		}, nil)

	// Oldest first from the processor; the winner holds the live subscription.
	mockProcessor.EXPECT().
		ListCustomersByEmail(ctx, "dup@example.com").
		Return([]processor.Customer{
			{ExternalID: "cus_loser", Email: "dup@example.com", Created: 100},
			{ExternalID: "cus_winner", Email: "dup@example.com", Created: 200},
		}, nil)

	mockProcessor.EXPECT().
		ListSubscriptions(ctx, "cus_loser").
		Return(nil, nil)
	mockProcessor.EXPECT().
		ListPaymentMethods(ctx, "cus_loser").
		Return([]processor.PaymentMethod{{ExternalID: "pm_1", CustomerID: "cus_loser"}}, nil)

	mockProcessor.EXPECT().
		ListSubscriptions(ctx, "cus_winner").
		Return([]processor.Subscription{{ExternalID: "sub_live", Status: "active"}}, nil)
	mockProcessor.EXPECT().
		ListPaymentMethods(ctx, "cus_winner").
		Return(nil, nil)

	// The loser's instrument moves to the winner, then the loser is removed.
	gomock.InOrder(
		mockProcessor.EXPECT().DetachPaymentMethod(ctx, "pm_1").Return(nil),
		mockProcessor.EXPECT().AttachPaymentMethod(ctx, "pm_1", "cus_winner").Return(nil),
		mockProcessor.EXPECT().DeleteCustomer(ctx, "cus_loser").Return(nil),
		mockQuerier.EXPECT().
			UpsertBillingCustomerMapping(ctx, db.UpsertBillingCustomerMappingParams{
				AccountID:           accountID,
				ProcessorCustomerID: textOf("cus_winner"),
				Email:               textOf("dup@example.com"),
			}).
			Return(db.BillingCustomer{AccountID: accountID}, nil),
	)

	err := service.DedupAccount(ctx, accountID)
	assert.NoError(t, err)
}

func TestDedupAccount_NeverDeletesCustomerWithLiveSubscription(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewCustomerDedupService(mockQuerier, mockProcessor)
	ctx := context.Background()

	accountID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByAccountID(ctx, accountID).
		Return(db.BillingCustomer{
			AccountID: accountID,
			Email:     textOf("both@example.com"),
		}, nil)

	// Both records hold live subscriptions. The newer one wins on recency;
	// the loser must be flagged, never deleted.
	mockProcessor.EXPECT().
		ListCustomersByEmail(ctx, "both@example.com").
		Return([]processor.Customer{
			{ExternalID: "cus_old", Created: 100},
			{ExternalID: "cus_new", Created: 200},
		}, nil)
	mockProcessor.EXPECT().
		ListSubscriptions(ctx, "cus_old").
		Return([]processor.Subscription{{ExternalID: "sub_1", Status: "active"}}, nil)
	mockProcessor.EXPECT().
		ListPaymentMethods(ctx, "cus_old").
		Return(nil, nil)
	mockProcessor.EXPECT().
		ListSubscriptions(ctx, "cus_new").
		Return([]processor.Subscription{{ExternalID: "sub_2", Status: "trialing"}}, nil)
	mockProcessor.EXPECT().
		ListPaymentMethods(ctx, "cus_new").
		Return(nil, nil)

	mockQuerier.EXPECT().
		UpsertDeadLetterEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertDeadLetterEventParams) (db.DeadLetterEvent, error) {
			assert.Equal(t, "dedup_cus_old", arg.ProcessorEventID)
			assert.Equal(t, services.DedupEventType, arg.EventType)
			assert.True(t, arg.RequiresManualReview)
			return db.DeadLetterEvent{ID: uuid.New()}, nil
		})

	mockQuerier.EXPECT().
		UpsertBillingCustomerMapping(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertBillingCustomerMappingParams) (db.BillingCustomer, error) {
			assert.Equal(t, textOf("cus_new"), arg.ProcessorCustomerID)
			return db.BillingCustomer{AccountID: accountID}, nil
		})

	err := service.DedupAccount(ctx, accountID)
	assert.NoError(t, err)
}

func TestDedupAccount_MappingNotUpdatedWhenMergeFails(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewCustomerDedupService(mockQuerier, mockProcessor)
	ctx := context.Background()

	accountID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByAccountID(ctx, accountID).
		Return(db.BillingCustomer{AccountID: accountID, Email: textOf("fail@example.com")}, nil)
	mockProcessor.EXPECT().
		ListCustomersByEmail(ctx, "fail@example.com").
		Return([]processor.Customer{
			{ExternalID: "cus_a", Created: 100},
			{ExternalID: "cus_b", Created: 200},
		}, nil)
	mockProcessor.EXPECT().ListSubscriptions(ctx, "cus_a").Return(nil, nil)
	mockProcessor.EXPECT().
		ListPaymentMethods(ctx, "cus_a").
		Return([]processor.PaymentMethod{{ExternalID: "pm_x"}}, nil)
	mockProcessor.EXPECT().ListSubscriptions(ctx, "cus_b").Return(nil, nil)
	mockProcessor.EXPECT().ListPaymentMethods(ctx, "cus_b").Return(nil, nil)

	// cus_a wins on payment methods; moving nothing from cus_b, deleting it fails.
	mockProcessor.EXPECT().DeleteCustomer(ctx, "cus_b").Return(assert.AnError)

	// UpsertBillingCustomerMapping must not be called.
	err := service.DedupAccount(ctx, accountID)
	require.Error(t, err)
}

func TestDedupAccount_RepairsStaleMapping(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewCustomerDedupService(mockQuerier, mockProcessor)
	ctx := context.Background()

	accountID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByAccountID(ctx, accountID).
		Return(db.BillingCustomer{
			AccountID:           accountID,
			ProcessorCustomerID: textOf("cus_gone"),
			Email:               textOf("one@example.com"),
		}, nil)
	mockProcessor.EXPECT().
		ListCustomersByEmail(ctx, "one@example.com").
		Return([]processor.Customer{{ExternalID: "cus_current"}}, nil)
	mockQuerier.EXPECT().
		UpsertBillingCustomerMapping(ctx, db.UpsertBillingCustomerMappingParams{
			AccountID:           accountID,
			ProcessorCustomerID: textOf("cus_current"),
			Email:               textOf("one@example.com"),
		}).
		Return(db.BillingCustomer{AccountID: accountID}, nil)

	err := service.DedupAccount(ctx, accountID)
	assert.NoError(t, err)
}
