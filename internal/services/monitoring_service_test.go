package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/mocks"
	"github.com/quotienthq/quotient-api/internal/services"
)

func TestMonitoringOverview(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewMonitoringService(mockQuerier, nil)
	ctx := context.Background()

	mockQuerier.EXPECT().
		CountWebhookEventsByStage(ctx).
		Return([]db.CountWebhookEventsByStageRow{
			{Stage: "handled", Count: 120},
			{Stage: "failed", Count: 3},
		}, nil)
	mockQuerier.EXPECT().
		CountUnresolvedDeadLetterEvents(ctx).
		Return(int64(3), nil)
	mockQuerier.EXPECT().
		CountBatchJobsByStatus(ctx).
		Return([]db.CountBatchJobsByStatusRow{
			{Status: "completed", Count: 8},
			{Status: "running", Count: 1},
		}, nil)

	overview, err := service.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(120), overview.EventsByStage["handled"])
	assert.Equal(t, int64(3), overview.UnresolvedDead)
	assert.Equal(t, int64(1), overview.BatchJobsByStatus["running"])
}

func TestMonitoringPerformance_FlagsOverTarget(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	targets := map[string]time.Duration{
		"customer.subscription.updated": 5 * time.Second,
		"price.updated":                 30 * time.Second,
	}
	service := services.NewMonitoringService(mockQuerier, targets)
	ctx := context.Background()

	mockQuerier.EXPECT().
		GetWebhookEventPerformance(ctx).
		Return([]db.GetWebhookEventPerformanceRow{
			{
				EventType:       "customer.subscription.updated",
				AvgProcessingMs: 7200,
				MaxProcessingMs: pgtype.Int8{Int64: 9100, Valid: true},
				HandledCount:    42,
			},
			{
				EventType:       "price.updated",
				AvgProcessingMs: 80,
				MaxProcessingMs: pgtype.Int8{Int64: 200, Valid: true},
				HandledCount:    10,
			},
		}, nil)

	report, err := service.Performance(ctx)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.True(t, report[0].OverTarget)
	assert.Equal(t, int64(5000), report[0].TargetMs)
	assert.Equal(t, int64(9100), report[0].MaxProcessingMs)
	assert.False(t, report[1].OverTarget)
}
