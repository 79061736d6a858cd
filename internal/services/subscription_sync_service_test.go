package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/mocks"
	"github.com/quotienthq/quotient-api/internal/processor"
	"github.com/quotienthq/quotient-api/internal/services"
)

func init() {
	logger.InitLogger("test")
}

// recordingDedup records dedup invocations without doing anything.
type recordingDedup struct {
	calls []uuid.UUID
	err   error
}

func (d *recordingDedup) DedupAccount(_ context.Context, accountID uuid.UUID) error {
	d.calls = append(d.calls, accountID)
	return d.err
}

func textOf(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func TestApplySubscription_UpdatesExistingSubscription(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)
	ctx := context.Background()

	accountID := uuid.New()
	sub := processor.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		PriceID:            "price_123",
		Status:             "active",
		CurrentPeriodStart: 1700000000,
		CurrentPeriodEnd:   1702592000,
	}

	mockQuerier.EXPECT().
		GetBillingCustomerByProcessorID(ctx, textOf("cus_123")).
		Return(db.BillingCustomer{AccountID: accountID, ProcessorCustomerID: textOf("cus_123")}, nil)

	// Price already known locally, so no processor round trip.
	mockQuerier.EXPECT().
		GetPriceByProcessorID(ctx, "price_123").
		Return(db.Price{ProcessorPriceID: "price_123"}, nil)

	mockQuerier.EXPECT().
		UpsertSubscriptionByProcessorID(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertSubscriptionByProcessorIDParams) (db.UpsertSubscriptionByProcessorIDRow, error) {
			assert.Equal(t, accountID, arg.AccountID)
			assert.Equal(t, textOf("sub_123"), arg.ProcessorSubscriptionID)
			assert.Equal(t, "active", arg.Status)
			assert.True(t, arg.CurrentPeriodStart.Valid)
			return db.UpsertSubscriptionByProcessorIDRow{
				ID:                      uuid.New(),
				AccountID:               accountID,
				ProcessorSubscriptionID: arg.ProcessorSubscriptionID,
				Status:                  arg.Status,
				Inserted:                false,
			}, nil
		})

	mockQuerier.EXPECT().
		ListLiveSubscriptionsByAccount(ctx, accountID).
		Return([]db.Subscription{
			{ID: uuid.New(), AccountID: accountID, Status: "active", ProcessorSubscriptionID: textOf("sub_123")},
		}, nil)

	err := service.ApplySubscription(ctx, sub)
	assert.NoError(t, err)
}

func TestApplySubscription_UnmappedCustomerIsRetryable(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)
	ctx := context.Background()

	mockQuerier.EXPECT().
		GetBillingCustomerByProcessorID(ctx, textOf("cus_unknown")).
		Return(db.BillingCustomer{}, pgx.ErrNoRows)

	err := service.ApplySubscription(ctx, processor.Subscription{
		ExternalID: "sub_9",
		CustomerID: "cus_unknown",
		Status:     "active",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUnmappedCustomer)
	assert.True(t, services.IsRetryable(err))
}

func TestApplySubscription_MissingIdentifiers(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)

	err := service.ApplySubscription(context.Background(), processor.Subscription{Status: "active"})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrMalformedPayload)
	assert.False(t, services.IsRetryable(err))
}

func TestApplySubscription_PaidPlanCancelsFreePlaceholder(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)
	ctx := context.Background()

	accountID := uuid.New()
	paidID := uuid.New()
	freeID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByProcessorID(ctx, textOf("cus_1")).
		Return(db.BillingCustomer{AccountID: accountID, ProcessorCustomerID: textOf("cus_1")}, nil)
	mockQuerier.EXPECT().
		GetPriceByProcessorID(ctx, "price_pro").
		Return(db.Price{}, nil)
	mockQuerier.EXPECT().
		UpsertSubscriptionByProcessorID(ctx, gomock.Any()).
		Return(db.UpsertSubscriptionByProcessorIDRow{
			ID:        paidID,
			AccountID: accountID,
			Status:    "active",
			Inserted:  true,
		}, nil)

	// New paid subscription copies billing contact; no instruments attached yet.
	mockProcessor.EXPECT().
		ListPaymentMethods(ctx, "cus_1").
		Return(nil, nil)

	// Newest first: the fresh paid row, then the free placeholder.
	mockQuerier.EXPECT().
		ListLiveSubscriptionsByAccount(ctx, accountID).
		Return([]db.Subscription{
			{ID: paidID, AccountID: accountID, Status: "active", ProcessorSubscriptionID: textOf("sub_pro")},
			{ID: freeID, AccountID: accountID, Status: "active"},
		}, nil)

	mockQuerier.EXPECT().
		CancelSubscriptionIfLive(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CancelSubscriptionIfLiveParams) (int64, error) {
			assert.Equal(t, freeID, arg.ID)
			return 1, nil
		})

	err := service.ApplySubscription(ctx, processor.Subscription{
		ExternalID: "sub_pro",
		CustomerID: "cus_1",
		PriceID:    "price_pro",
		Status:     "active",
	})
	assert.NoError(t, err)
}

func TestApplySubscription_TwoLivePaidIsIntegrityConflict(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)
	ctx := context.Background()

	accountID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByProcessorID(ctx, textOf("cus_2")).
		Return(db.BillingCustomer{AccountID: accountID}, nil)
	mockQuerier.EXPECT().
		UpsertSubscriptionByProcessorID(ctx, gomock.Any()).
		Return(db.UpsertSubscriptionByProcessorIDRow{AccountID: accountID, Status: "active"}, nil)
	mockQuerier.EXPECT().
		ListLiveSubscriptionsByAccount(ctx, accountID).
		Return([]db.Subscription{
			{ID: uuid.New(), Status: "active", ProcessorSubscriptionID: textOf("sub_a")},
			{ID: uuid.New(), Status: "active", ProcessorSubscriptionID: textOf("sub_b")},
		}, nil)

	err := service.ApplySubscription(ctx, processor.Subscription{
		ExternalID: "sub_a",
		CustomerID: "cus_2",
		Status:     "active",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrIntegrityConflict)
	assert.False(t, services.IsRetryable(err))
	assert.True(t, services.RequiresManualReview(err))
}

func TestApplyCustomer_BindsAccountFromMetadata(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)
	ctx := context.Background()

	accountID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByAccountID(ctx, accountID).
		Return(db.BillingCustomer{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().
		UpsertBillingCustomerMapping(ctx, db.UpsertBillingCustomerMappingParams{
			AccountID:           accountID,
			ProcessorCustomerID: textOf("cus_new"),
			Email:               textOf("owner@example.com"),
		}).
		Return(db.BillingCustomer{AccountID: accountID}, nil)

	err := service.ApplyCustomer(ctx, processor.Customer{
		ExternalID: "cus_new",
		Email:      "owner@example.com",
		Metadata:   map[string]string{"account_id": accountID.String()},
	})
	assert.NoError(t, err)
}

func TestApplyCustomer_SecondProcessorIDTriggersDedup(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	dedup := &recordingDedup{}
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, dedup)
	ctx := context.Background()

	accountID := uuid.New()

	mockQuerier.EXPECT().
		GetBillingCustomerByAccountID(ctx, accountID).
		Return(db.BillingCustomer{
			AccountID:           accountID,
			ProcessorCustomerID: textOf("cus_old"),
		}, nil)
	mockQuerier.EXPECT().
		UpsertBillingCustomerMapping(ctx, gomock.Any()).
		Return(db.BillingCustomer{AccountID: accountID}, nil)

	err := service.ApplyCustomer(ctx, processor.Customer{
		ExternalID: "cus_second",
		Metadata:   map[string]string{"account_id": accountID.String()},
	})

	require.NoError(t, err)
	require.Len(t, dedup.calls, 1)
	assert.Equal(t, accountID, dedup.calls[0])
}

func TestApplyCustomer_UnmappedWithoutReferenceIsIgnored(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)
	ctx := context.Background()

	mockQuerier.EXPECT().
		GetBillingCustomerByProcessorID(ctx, textOf("cus_stray")).
		Return(db.BillingCustomer{}, pgx.ErrNoRows)

	err := service.ApplyCustomer(ctx, processor.Customer{ExternalID: "cus_stray"})
	assert.NoError(t, err)
}

func TestApplyCheckoutSession_InvalidReference(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)

	tests := []struct {
		name    string
		session processor.CheckoutSession
		wantErr bool
	}{
		{
			name:    "no customer attached is a no-op",
			session: processor.CheckoutSession{ExternalID: "cs_1"},
			wantErr: false,
		},
		{
			name:    "missing client reference",
			session: processor.CheckoutSession{ExternalID: "cs_2", CustomerID: "cus_1"},
			wantErr: true,
		},
		{
			name:    "malformed client reference",
			session: processor.CheckoutSession{ExternalID: "cs_3", CustomerID: "cus_1", ClientReferenceID: "not-a-uuid"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ApplyCheckoutSession(context.Background(), tt.session)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrMalformedPayload)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProvisionFreePlan(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	t.Run("creates local subscription when none live", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockProcessor := mocks.NewMockClientForTest(t)
		service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)

		mockQuerier.EXPECT().
			ListLiveSubscriptionsByAccount(ctx, accountID).
			Return(nil, nil)
		mockQuerier.EXPECT().
			CreateLocalSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateLocalSubscriptionParams) (db.Subscription, error) {
				assert.Equal(t, accountID, arg.AccountID)
				assert.Equal(t, textOf("price_free"), arg.ProcessorPriceID)
				assert.JSONEq(t, `{"plan":"free"}`, string(arg.Metadata))
				return db.Subscription{ID: uuid.New(), AccountID: accountID, Status: "active"}, nil
			})

		sub, err := service.ProvisionFreePlan(ctx, accountID, "price_free")
		require.NoError(t, err)
		assert.Equal(t, "active", sub.Status)
	})

	t.Run("rejects when a live subscription exists", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockProcessor := mocks.NewMockClientForTest(t)
		service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)

		mockQuerier.EXPECT().
			ListLiveSubscriptionsByAccount(ctx, accountID).
			Return([]db.Subscription{{ID: uuid.New(), Status: "active"}}, nil)

		_, err := service.ProvisionFreePlan(ctx, accountID, "price_free")
		assert.ErrorIs(t, err, services.ErrIntegrityConflict)
	})
}

func TestApplyPaymentMethod_UnmappedCustomer(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockProcessor := mocks.NewMockClientForTest(t)
	service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)
	ctx := context.Background()

	mockQuerier.EXPECT().
		GetBillingCustomerByProcessorID(ctx, textOf("cus_nomap")).
		Return(db.BillingCustomer{}, pgx.ErrNoRows)

	err := service.ApplyPaymentMethod(ctx, processor.PaymentMethod{
		ExternalID: "pm_1",
		CustomerID: "cus_nomap",
	})
	assert.ErrorIs(t, err, services.ErrUnmappedCustomer)
}

func TestApplySubscription_OutOfOrderDeliveryConverges(t *testing.T) {
	accountID := uuid.New()

	created := processor.Subscription{
		ExternalID:         "sub_order_1",
		CustomerID:         "cus_order_1",
		PriceID:            "price_order_1",
		Status:             "trialing",
		CurrentPeriodStart: 1700000000,
		CurrentPeriodEnd:   1702592000,
		TrialStart:         1700000000,
		TrialEnd:           1700604800,
	}
	updated := created
	updated.Status = "active"
	updated.CancelAtPeriodEnd = true
	updated.TrialStart = 0
	updated.TrialEnd = 0

	orders := []struct {
		name   string
		events []processor.Subscription
	}{
		{"created then updated", []processor.Subscription{created, updated}},
		{"updated then created", []processor.Subscription{updated, created}},
	}

	upserts := make(map[string]map[string]db.UpsertSubscriptionByProcessorIDParams)

	for _, order := range orders {
		t.Run(order.name, func(t *testing.T) {
			mockQuerier := mocks.NewMockQuerierForTest(t)
			mockProcessor := mocks.NewMockClientForTest(t)
			service := services.NewSubscriptionSyncService(mockQuerier, mockProcessor, nil)
			ctx := context.Background()

			captured := make(map[string]db.UpsertSubscriptionByProcessorIDParams)

			mockQuerier.EXPECT().
				GetBillingCustomerByProcessorID(ctx, textOf("cus_order_1")).
				Return(db.BillingCustomer{AccountID: accountID, ProcessorCustomerID: textOf("cus_order_1")}, nil).
				Times(2)
			mockQuerier.EXPECT().
				GetPriceByProcessorID(ctx, "price_order_1").
				Return(db.Price{ProcessorPriceID: "price_order_1"}, nil).
				Times(2)
			mockQuerier.EXPECT().
				UpsertSubscriptionByProcessorID(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, arg db.UpsertSubscriptionByProcessorIDParams) (db.UpsertSubscriptionByProcessorIDRow, error) {
					captured[arg.Status] = arg
					return db.UpsertSubscriptionByProcessorIDRow{ID: uuid.New(), AccountID: accountID, Status: arg.Status}, nil
				}).
				Times(2)
			mockQuerier.EXPECT().
				ListLiveSubscriptionsByAccount(ctx, accountID).
				Return([]db.Subscription{{ID: uuid.New(), AccountID: accountID, Status: "active"}}, nil).
				Times(2)

			for _, event := range order.events {
				require.NoError(t, service.ApplySubscription(ctx, event))
			}

			require.Len(t, captured, 2)
			upserts[order.name] = captured
		})
	}

	// Each event maps to the same full-state overwrite no matter when it
	// arrives, so the stored row converges regardless of delivery order.
	assert.Equal(t, upserts["created then updated"], upserts["updated then created"])
}
