package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/mocks"
	"github.com/quotienthq/quotient-api/internal/services"
)

func manyIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestBatchJobCreate_RejectsOversizedRequest(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewBatchJobService(mockQuerier)

	_, err := service.Create(context.Background(), uuid.New(), services.BatchJobRequest{
		OperationType: services.OpDeleteQuotes,
		ItemIDs:       manyIDs(services.MaxJobItems + 1),
	})

	// Rejected before any row is written.
	assert.ErrorIs(t, err, services.ErrJobTooLarge)
}

func TestBatchJobCreate_RejectsInvalidRequests(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewBatchJobService(mockQuerier)
	ctx := context.Background()
	accountID := uuid.New()

	tests := []struct {
		name string
		req  services.BatchJobRequest
	}{
		{"unknown operation", services.BatchJobRequest{OperationType: "truncate_everything", ItemIDs: manyIDs(1)}},
		{"empty item list", services.BatchJobRequest{OperationType: services.OpDeleteQuotes}},
		{"status update without status", services.BatchJobRequest{OperationType: services.OpUpdateQuoteStatus, ItemIDs: manyIDs(1)}},
		{"price adjustment below -100", services.BatchJobRequest{OperationType: services.OpAdjustItemPrices, ItemIDs: manyIDs(1), PercentChange: -150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, accountID, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestBatchJob_OwnershipFailureScopedToItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewBatchJobService(mockQuerier)
	ctx := context.Background()

	accountID := uuid.New()
	jobID := uuid.New()
	ids := manyIDs(3)
	foreign := ids[1]

	mockQuerier.EXPECT().
		CreateBatchJob(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateBatchJobParams) (db.BatchJob, error) {
			assert.Equal(t, int32(3), arg.TotalItems)
			assert.Equal(t, services.OpDeleteQuotes, arg.OperationType)
			return db.BatchJob{ID: jobID, AccountID: accountID, Status: "pending"}, nil
		})
	mockQuerier.EXPECT().MarkBatchJobRunning(gomock.Any(), jobID).Return(nil)

	for _, id := range ids {
		affected := int64(1)
		if id == foreign {
			affected = 0
		}
		mockQuerier.EXPECT().
			DeleteQuoteForAccount(gomock.Any(), db.DeleteQuoteForAccountParams{ID: id, AccountID: accountID}).
			Return(affected, nil)
	}

	mockQuerier.EXPECT().UpdateBatchJobProgress(gomock.Any(), gomock.Any()).Return(nil)
	mockQuerier.EXPECT().
		FinishBatchJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.FinishBatchJobParams) error {
			assert.Equal(t, jobID, arg.ID)
			assert.Equal(t, "completed", arg.Status)
			assert.Equal(t, int32(2), arg.ProcessedItems)
			assert.Equal(t, int32(1), arg.FailedItems)
			assert.Equal(t, int32(3), arg.ProcessedItems+arg.FailedItems)

			var itemErrors []services.ItemError
			require.NoError(t, json.Unmarshal(arg.ItemErrors, &itemErrors))
			require.Len(t, itemErrors, 1)
			assert.Equal(t, foreign.String(), itemErrors[0].ID)
			return nil
		})

	_, err := service.Create(ctx, accountID, services.BatchJobRequest{
		OperationType: services.OpDeleteQuotes,
		ItemIDs:       ids,
	})
	require.NoError(t, err)
	service.Wait()
}

func TestBatchJob_ChunkedProgressReporting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewBatchJobService(mockQuerier)
	ctx := context.Background()

	accountID := uuid.New()
	jobID := uuid.New()
	total := services.ChunkSize*2 + 10

	mockQuerier.EXPECT().
		CreateBatchJob(ctx, gomock.Any()).
		Return(db.BatchJob{ID: jobID, AccountID: accountID, Status: "pending"}, nil)
	mockQuerier.EXPECT().MarkBatchJobRunning(gomock.Any(), jobID).Return(nil)
	mockQuerier.EXPECT().
		UpdateQuoteStatusForAccount(gomock.Any(), gomock.Any()).
		Return(int64(1), nil).
		Times(total)

	// One progress write per chunk.
	var mu sync.Mutex
	var lastProcessed int32
	mockQuerier.EXPECT().
		UpdateBatchJobProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateBatchJobProgressParams) error {
			mu.Lock()
			defer mu.Unlock()
			if arg.ProcessedItems > lastProcessed {
				lastProcessed = arg.ProcessedItems
			}
			return nil
		}).
		Times(3)
	mockQuerier.EXPECT().
		FinishBatchJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.FinishBatchJobParams) error {
			assert.Equal(t, "completed", arg.Status)
			assert.Equal(t, int32(total), arg.ProcessedItems)
			assert.Equal(t, int32(0), arg.FailedItems)
			return nil
		})

	_, err := service.Create(ctx, accountID, services.BatchJobRequest{
		OperationType: services.OpUpdateQuoteStatus,
		ItemIDs:       manyIDs(total),
		Status:        "archived",
	})
	require.NoError(t, err)
	service.Wait()

	assert.Equal(t, int32(total), lastProcessed)
}

func TestBatchJob_ExportCollectsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewBatchJobService(mockQuerier)
	ctx := context.Background()

	accountID := uuid.New()
	jobID := uuid.New()
	quoteID := uuid.New()
	clientID := uuid.New()

	mockQuerier.EXPECT().
		CreateBatchJob(ctx, gomock.Any()).
		Return(db.BatchJob{ID: jobID, AccountID: accountID}, nil)
	mockQuerier.EXPECT().MarkBatchJobRunning(gomock.Any(), jobID).Return(nil)
	mockQuerier.EXPECT().
		GetQuoteForAccount(gomock.Any(), db.GetQuoteForAccountParams{ID: quoteID, AccountID: accountID}).
		Return(db.Quote{
			ID:        quoteID,
			AccountID: accountID,
			ClientID:  pgtype.UUID{Bytes: clientID, Valid: true},
			Status:    "accepted",
			Total:     12500,
			Currency:  "usd",
		}, nil)
	mockQuerier.EXPECT().
		GetClientForAccount(gomock.Any(), db.GetClientForAccountParams{ID: clientID, AccountID: accountID}).
		Return(db.Client{
			ID:        clientID,
			AccountID: accountID,
			Name:      "Acme Ltd",
			Email:     pgtype.Text{String: "billing@acme.test", Valid: true},
		}, nil)
	mockQuerier.EXPECT().UpdateBatchJobProgress(gomock.Any(), gomock.Any()).Return(nil)
	mockQuerier.EXPECT().
		FinishBatchJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.FinishBatchJobParams) error {
			require.NotEmpty(t, arg.Result)
			var rows []map[string]interface{}
			require.NoError(t, json.Unmarshal(arg.Result, &rows))
			require.Len(t, rows, 1)
			assert.Equal(t, quoteID.String(), rows[0]["id"])
			assert.Equal(t, "accepted", rows[0]["status"])
			assert.Equal(t, clientID.String(), rows[0]["client_id"])
			assert.Equal(t, "Acme Ltd", rows[0]["client_name"])
			assert.Equal(t, "billing@acme.test", rows[0]["client_email"])
			return nil
		})

	_, err := service.Create(ctx, accountID, services.BatchJobRequest{
		OperationType: services.OpExportQuotes,
		ItemIDs:       []uuid.UUID{quoteID},
	})
	require.NoError(t, err)
	service.Wait()
}

func TestBatchJobGet_ScopedToAccount(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewBatchJobService(mockQuerier)
	ctx := context.Background()

	jobID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	mockQuerier.EXPECT().
		GetBatchJob(ctx, jobID).
		Return(db.BatchJob{ID: jobID, AccountID: owner}, nil)

	_, err := service.Get(ctx, stranger, jobID)
	assert.ErrorIs(t, err, services.ErrBatchJobNotFound)
}

func TestBatchJobRetryFailed_TargetsOnlyFailedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewBatchJobService(mockQuerier)
	ctx := context.Background()

	accountID := uuid.New()
	oldJobID := uuid.New()
	newJobID := uuid.New()
	okID := uuid.New()
	failedID := uuid.New()

	options, err := json.Marshal(services.BatchJobRequest{
		OperationType: services.OpDeleteQuotes,
		ItemIDs:       []uuid.UUID{okID, failedID},
	})
	require.NoError(t, err)
	itemErrors, err := json.Marshal([]services.ItemError{
		{Index: 1, ID: failedID.String(), Error: "quote not found or not owned by account"},
	})
	require.NoError(t, err)

	mockQuerier.EXPECT().
		GetBatchJob(ctx, oldJobID).
		Return(db.BatchJob{
			ID:          oldJobID,
			AccountID:   accountID,
			Status:      "completed",
			FailedItems: 1,
			Options:     options,
			ItemErrors:  itemErrors,
		}, nil)

	mockQuerier.EXPECT().
		CreateBatchJob(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateBatchJobParams) (db.BatchJob, error) {
			assert.Equal(t, int32(1), arg.TotalItems)
			var req services.BatchJobRequest
			require.NoError(t, json.Unmarshal(arg.Options, &req))
			assert.Equal(t, []uuid.UUID{failedID}, req.ItemIDs)
			return db.BatchJob{ID: newJobID, AccountID: accountID}, nil
		})
	mockQuerier.EXPECT().MarkBatchJobRunning(gomock.Any(), newJobID).Return(nil)
	mockQuerier.EXPECT().
		DeleteQuoteForAccount(gomock.Any(), db.DeleteQuoteForAccountParams{ID: failedID, AccountID: accountID}).
		Return(int64(1), nil)
	mockQuerier.EXPECT().UpdateBatchJobProgress(gomock.Any(), gomock.Any()).Return(nil)
	mockQuerier.EXPECT().FinishBatchJob(gomock.Any(), gomock.Any()).Return(nil)

	job, err := service.RetryFailed(ctx, accountID, oldJobID)
	require.NoError(t, err)
	assert.Equal(t, newJobID, job.ID)
	service.Wait()
}

func TestBatchJobRetryFailed_RequiresTerminalJobWithFailures(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewBatchJobService(mockQuerier)
	ctx := context.Background()

	accountID := uuid.New()
	jobID := uuid.New()

	t.Run("still running", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBatchJob(ctx, jobID).
			Return(db.BatchJob{ID: jobID, AccountID: accountID, Status: "running", FailedItems: 2}, nil)

		_, err := service.RetryFailed(ctx, accountID, jobID)
		assert.Error(t, err)
	})

	t.Run("nothing failed", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBatchJob(ctx, jobID).
			Return(db.BatchJob{ID: jobID, AccountID: accountID, Status: "completed", FailedItems: 0}, nil)

		_, err := service.RetryFailed(ctx, accountID, jobID)
		assert.Error(t, err)
	})
}
