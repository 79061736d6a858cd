package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/mocks"
	"github.com/quotienthq/quotient-api/internal/services"
)

// recordingReplayer records replayed payloads.
type recordingReplayer struct {
	payloads [][]byte
	err      error
}

func (r *recordingReplayer) Replay(_ context.Context, payload []byte) error {
	r.payloads = append(r.payloads, payload)
	return r.err
}

func TestDeadLetterResolve_ReplaysAndMarksResolved(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	replayer := &recordingReplayer{}
	service := services.NewDeadLetterService(mockQuerier, replayer)
	ctx := context.Background()

	id := uuid.New()
	payload := []byte(`{"id":"evt_1"}`)

	mockQuerier.EXPECT().
		GetDeadLetterEvent(ctx, id).
		Return(db.DeadLetterEvent{
			ID:               id,
			ProcessorEventID: "evt_1",
			EventType:        "customer.subscription.updated",
			Payload:          payload,
		}, nil)
	mockQuerier.EXPECT().
		ResolveDeadLetterEvent(ctx, db.ResolveDeadLetterEventParams{
			ID:             id,
			ResolutionNote: pgtype.Text{String: "replayed after outage", Valid: true},
		}).
		Return(int64(1), nil)
	mockQuerier.EXPECT().
		GetDeadLetterEvent(ctx, id).
		Return(db.DeadLetterEvent{ID: id, ProcessorEventID: "evt_1", Resolved: true}, nil)

	entry, err := service.Resolve(ctx, id, "replayed after outage")
	require.NoError(t, err)
	assert.True(t, entry.Resolved)
	require.Len(t, replayer.payloads, 1)
	assert.Equal(t, payload, replayer.payloads[0])
}

func TestDeadLetterResolve_AlreadyResolvedIsNoOp(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	replayer := &recordingReplayer{}
	service := services.NewDeadLetterService(mockQuerier, replayer)
	ctx := context.Background()

	id := uuid.New()

	mockQuerier.EXPECT().
		GetDeadLetterEvent(ctx, id).
		Return(db.DeadLetterEvent{ID: id, Resolved: true}, nil)

	entry, err := service.Resolve(ctx, id, "")
	require.NoError(t, err)
	assert.True(t, entry.Resolved)
	assert.Empty(t, replayer.payloads)
}

func TestDeadLetterResolve_FailedReplayLeavesUnresolved(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	replayer := &recordingReplayer{err: assert.AnError}
	service := services.NewDeadLetterService(mockQuerier, replayer)
	ctx := context.Background()

	id := uuid.New()

	mockQuerier.EXPECT().
		GetDeadLetterEvent(ctx, id).
		Return(db.DeadLetterEvent{
			ID:               id,
			ProcessorEventID: "evt_2",
			EventType:        "customer.subscription.updated",
			Payload:          []byte(`{}`),
		}, nil)

	// ResolveDeadLetterEvent must not be called.
	_, err := service.Resolve(ctx, id, "")
	assert.Error(t, err)
}

func TestDeadLetterResolve_DedupReviewSkipsReplay(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	replayer := &recordingReplayer{err: assert.AnError}
	service := services.NewDeadLetterService(mockQuerier, replayer)
	ctx := context.Background()

	id := uuid.New()

	mockQuerier.EXPECT().
		GetDeadLetterEvent(ctx, id).
		Return(db.DeadLetterEvent{
			ID:               id,
			ProcessorEventID: "dedup_cus_1",
			EventType:        services.DedupEventType,
		}, nil)
	mockQuerier.EXPECT().
		ResolveDeadLetterEvent(ctx, db.ResolveDeadLetterEventParams{
			ID:             id,
			ResolutionNote: pgtype.Text{String: "kept winning customer", Valid: true},
		}).
		Return(int64(1), nil)
	mockQuerier.EXPECT().
		GetDeadLetterEvent(ctx, id).
		Return(db.DeadLetterEvent{ID: id, Resolved: true}, nil)

	entry, err := service.Resolve(ctx, id, "kept winning customer")
	require.NoError(t, err)
	assert.True(t, entry.Resolved)
	assert.Empty(t, replayer.payloads)
}

func TestDeadLetterGet_NotFound(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewDeadLetterService(mockQuerier, &recordingReplayer{})
	ctx := context.Background()

	id := uuid.New()
	mockQuerier.EXPECT().
		GetDeadLetterEvent(ctx, id).
		Return(db.DeadLetterEvent{}, pgx.ErrNoRows)

	_, err := service.Get(ctx, id)
	assert.ErrorIs(t, err, services.ErrDeadLetterNotFound)
}
