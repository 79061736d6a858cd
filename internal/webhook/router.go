// Package webhook routes verified processor events to their handlers with
// per-type priority tiers and timeouts, records every delivery in the event
// log, and dead-letters events that exhaust their retries.
package webhook

import (
	"context"
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
	"github.com/quotienthq/quotient-api/internal/services"
)

// ErrDuplicateEvent indicates the event id was already durably logged by an
// earlier delivery; processing short-circuits with no side effects.
var ErrDuplicateEvent = errors.New("event already processed")

// Priority tiers. Dispatch is per event, so tiers never block each other;
// the tier determines how long a handler may run before it is failed.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityNormal   Priority = "normal"
	PriorityLow      Priority = "low"
)

// Timeout per priority tier.
const (
	TimeoutCritical = 5 * time.Second
	TimeoutNormal   = 10 * time.Second
	TimeoutLow      = 30 * time.Second
)

// Event log stages.
const (
	StageReceived = "received"
	StageRouted   = "routed"
	StageHandled  = "handled"
	StageFailed   = "failed"
)

// Result reports how Process disposed of an event.
type Result string

const (
	ResultHandled      Result = "handled"
	ResultDuplicate    Result = "duplicate"
	ResultIgnored      Result = "ignored"
	ResultDeadLettered Result = "dead_lettered"
)

// HandlerFunc processes one decoded event.
type HandlerFunc func(ctx context.Context, event processor.Event) error

// Route binds an event type to its handler, priority tier, and timeout.
type Route struct {
	Name     string
	Priority Priority
	Timeout  time.Duration
	Handler  HandlerFunc
}

// Decoder re-decodes a raw payload into a canonical event without signature
// verification. Used for replaying dead-lettered payloads whose signatures
// were already verified on first delivery.
type Decoder interface {
	DecodeEvent(payload []byte) (processor.Event, error)
}

// Router owns the static route table and the dispatch pipeline.
type Router struct {
	db      db.Querier
	decoder Decoder
	routes  map[string]Route
	retry   RetryPolicy
}

// NewRouter creates a router with the default retry policy and an empty
// route table.
func NewRouter(queries db.Querier, decoder Decoder) *Router {
	return &Router{
		db:      queries,
		decoder: decoder,
		routes:  make(map[string]Route),
		retry:   DefaultRetryPolicy(),
	}
}

// Register adds a route for an event type. Later registrations for the same
// type replace earlier ones.
func (r *Router) Register(eventType string, route Route) {
	if route.Timeout == 0 {
		switch route.Priority {
		case PriorityCritical:
			route.Timeout = TimeoutCritical
		case PriorityLow:
			route.Timeout = TimeoutLow
		default:
			route.Timeout = TimeoutNormal
		}
	}
	r.routes[eventType] = route
}

// Targets returns the timeout target per registered event type, for the
// monitoring surface.
func (r *Router) Targets() map[string]time.Duration {
	targets := make(map[string]time.Duration, len(r.routes))
	for eventType, route := range r.routes {
		targets[eventType] = route.Timeout
	}
	return targets
}

// Process logs, routes, and dispatches one verified event. The unique
// event-id constraint on the log is the sole cross-event synchronization
// point: a concurrent or repeated delivery of the same id detects the
// existing row and exits without side effects. An error return means the
// event could not be durably logged; every other outcome, including retry
// exhaustion, answers to the caller as a result so the endpoint can still
// return 200 and stop the upstream from retrying.
func (r *Router) Process(ctx context.Context, event processor.Event) (Result, error) {
	logged, err := r.db.CreateWebhookEvent(ctx, db.CreateWebhookEventParams{
		ProcessorEventID: event.ID,
		EventType:        event.Type,
		Payload:          event.Raw,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The insert hit the unique constraint: a previous delivery won.
			logger.Info("Skipping duplicate webhook event",
				zap.String("event_id", event.ID),
				zap.String("event_type", event.Type))
			return ResultDuplicate, nil
		}
		return "", fmt.Errorf("failed to log webhook event %s: %w", event.ID, err)
	}

	route, ok := r.routes[event.Type]
	if !ok {
		logger.Info("Ignoring unhandled webhook event type",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type))
		if err := r.db.UpdateWebhookEventStage(ctx, db.UpdateWebhookEventStageParams{
			ID:          logged.ID,
			Stage:       StageHandled,
			HandlerName: pgtype.Text{String: "ignored", Valid: true},
		}); err != nil {
			logger.Error("Failed to mark ignored event handled", zap.Error(err), zap.String("event_id", event.ID))
		}
		return ResultIgnored, nil
	}

	if err := r.db.UpdateWebhookEventStage(ctx, db.UpdateWebhookEventStageParams{
		ID:          logged.ID,
		Stage:       StageRouted,
		HandlerName: pgtype.Text{String: route.Name, Valid: true},
	}); err != nil {
		logger.Error("Failed to mark event routed", zap.Error(err), zap.String("event_id", event.ID))
	}

	start := time.Now()
	dispatchErr := r.dispatch(ctx, logged.ID, route, event)
	elapsed := time.Since(start).Milliseconds()

	if dispatchErr != nil {
		r.deadLetter(ctx, event, dispatchErr)
		if err := r.db.UpdateWebhookEventStage(ctx, db.UpdateWebhookEventStageParams{
			ID:           logged.ID,
			Stage:        StageFailed,
			HandlerName:  pgtype.Text{String: route.Name, Valid: true},
			ProcessingMs: pgtype.Int8{Int64: elapsed, Valid: true},
			ErrorMessage: pgtype.Text{String: dispatchErr.Error(), Valid: true},
		}); err != nil {
			logger.Error("Failed to mark event failed", zap.Error(err), zap.String("event_id", event.ID))
		}
		return ResultDeadLettered, nil
	}

	if err := r.db.UpdateWebhookEventStage(ctx, db.UpdateWebhookEventStageParams{
		ID:           logged.ID,
		Stage:        StageHandled,
		HandlerName:  pgtype.Text{String: route.Name, Valid: true},
		ProcessingMs: pgtype.Int8{Int64: elapsed, Valid: true},
	}); err != nil {
		logger.Error("Failed to mark event handled", zap.Error(err), zap.String("event_id", event.ID))
	}

	logger.Info("Webhook event handled",
		zap.String("event_id", event.ID),
		zap.String("event_type", event.Type),
		zap.String("handler", route.Name),
		zap.Int64("processing_ms", elapsed))

	return ResultHandled, nil
}

// dispatch runs the handler under the route timeout and the retry policy,
// recording each attempt on the event log row.
func (r *Router) dispatch(ctx context.Context, eventLogID uuid.UUID, route Route, event processor.Event) error {
	op := func(ctx context.Context) error {
		if err := r.db.IncrementWebhookEventAttempts(ctx, eventLogID); err != nil {
			logger.Error("Failed to record dispatch attempt", zap.Error(err), zap.String("event_id", event.ID))
		}
		attemptCtx, cancel := context.WithTimeout(ctx, route.Timeout)
		defer cancel()
		return route.Handler(attemptCtx, event)
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("Webhook handler attempt failed, backing off",
			zap.String("event_id", event.ID),
			zap.String("handler", route.Name),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	return r.retry.Execute(ctx, op, notify)
}

// deadLetter records an exhausted event. The upsert keyed on the processor
// event id guarantees exactly one row per event regardless of how many times
// it exhausts its retries.
func (r *Router) deadLetter(ctx context.Context, event processor.Event, cause error) {
	_, err := r.db.UpsertDeadLetterEvent(ctx, db.UpsertDeadLetterEventParams{
		ProcessorEventID:     event.ID,
		EventType:            event.Type,
		Payload:              event.Raw,
		FailureReason:        pgtype.Text{String: cause.Error(), Valid: true},
		RequiresManualReview: services.RequiresManualReview(cause),
	})
	if err != nil {
		logger.Error("Failed to write dead letter entry",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type),
			zap.Error(err))
		return
	}

	logger.Error("Webhook event dead-lettered",
		zap.String("event_id", event.ID),
		zap.String("event_type", event.Type),
		zap.Bool("requires_manual_review", services.RequiresManualReview(cause)),
		zap.Error(cause))
}

// Replay re-decodes a previously logged payload and re-invokes its handler,
// bypassing the duplicate check. The signature was verified on the original
// delivery; the stored payload is trusted. Returns the handler error so the
// caller can decide whether to mark the source entry resolved.
func (r *Router) Replay(ctx context.Context, payload []byte) error {
	event, err := r.decoder.DecodeEvent(payload)
	if err != nil {
		return fmt.Errorf("failed to decode replayed payload: %w", err)
	}

	route, ok := r.routes[event.Type]
	if !ok {
		logger.Warn("Replay requested for unrouted event type",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type))
		return nil
	}

	start := time.Now()
	replayErr := r.retry.Execute(ctx, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, route.Timeout)
		defer cancel()
		return route.Handler(attemptCtx, event)
	}, nil)
	elapsed := time.Since(start).Milliseconds()

	logged, err := r.db.GetWebhookEventByProcessorEventID(ctx, event.ID)
	if err == nil {
		stage := StageHandled
		errMsg := pgtype.Text{}
		if replayErr != nil {
			stage = StageFailed
			errMsg = pgtype.Text{String: replayErr.Error(), Valid: true}
		}
		if err := r.db.UpdateWebhookEventStage(ctx, db.UpdateWebhookEventStageParams{
			ID:           logged.ID,
			Stage:        stage,
			HandlerName:  pgtype.Text{String: route.Name, Valid: true},
			ProcessingMs: pgtype.Int8{Int64: elapsed, Valid: true},
			ErrorMessage: errMsg,
		}); err != nil {
			logger.Error("Failed to update replayed event stage", zap.Error(err), zap.String("event_id", event.ID))
		}
	}

	return replayErr
}
