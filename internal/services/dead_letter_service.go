package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/logger"
)

// ErrDeadLetterNotFound indicates an unknown dead letter id.
var ErrDeadLetterNotFound = errors.New("dead letter entry not found")

// EventReplayer re-runs a stored event payload through the original handler
// pipeline. Implemented by the webhook router.
type EventReplayer interface {
	Replay(ctx context.Context, payload []byte) error
}

// DeadLetterService owns the manual-resolution workflow for events that
// exhausted their retries.
type DeadLetterService struct {
	queries  db.Querier
	replayer EventReplayer
	logger   *zap.Logger
}

// NewDeadLetterService creates a new dead letter service.
func NewDeadLetterService(queries db.Querier, replayer EventReplayer) *DeadLetterService {
	return &DeadLetterService{
		queries:  queries,
		replayer: replayer,
		logger:   logger.Log,
	}
}

// List returns unresolved entries, most recently failed first.
func (s *DeadLetterService) List(ctx context.Context, limit int32) ([]db.DeadLetterEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.queries.ListUnresolvedDeadLetterEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead letter entries: %w", err)
	}
	return entries, nil
}

// Get returns one entry by id.
func (s *DeadLetterService) Get(ctx context.Context, id uuid.UUID) (db.DeadLetterEvent, error) {
	entry, err := s.queries.GetDeadLetterEvent(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.DeadLetterEvent{}, ErrDeadLetterNotFound
		}
		return db.DeadLetterEvent{}, fmt.Errorf("failed to get dead letter entry %s: %w", id, err)
	}
	return entry, nil
}

// Resolve replays the stored payload through the original handler and marks
// the entry resolved on success. Manual-review flags raised by deduplication
// have no handler to replay; resolving one records that the human completed
// the review. Resolving an already-resolved entry is a no-op.
func (s *DeadLetterService) Resolve(ctx context.Context, id uuid.UUID, note string) (db.DeadLetterEvent, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return db.DeadLetterEvent{}, err
	}
	if entry.Resolved {
		return entry, nil
	}

	if entry.EventType != DedupEventType {
		if err := s.replayer.Replay(ctx, entry.Payload); err != nil {
			s.logger.Error("Dead letter replay failed",
				zap.String("dead_letter_id", id.String()),
				zap.String("processor_event_id", entry.ProcessorEventID),
				zap.Error(err))
			return db.DeadLetterEvent{}, fmt.Errorf("replay of event %s failed: %w", entry.ProcessorEventID, err)
		}
	}

	affected, err := s.queries.ResolveDeadLetterEvent(ctx, db.ResolveDeadLetterEventParams{
		ID:             id,
		ResolutionNote: pgtype.Text{String: note, Valid: note != ""},
	})
	if err != nil {
		return db.DeadLetterEvent{}, fmt.Errorf("failed to mark entry %s resolved: %w", id, err)
	}
	if affected == 0 {
		// A concurrent resolution won; the entry is resolved either way.
		s.logger.Info("Dead letter entry already resolved concurrently",
			zap.String("dead_letter_id", id.String()))
	}

	s.logger.Info("Dead letter entry resolved",
		zap.String("dead_letter_id", id.String()),
		zap.String("processor_event_id", entry.ProcessorEventID))

	return s.Get(ctx, id)
}
