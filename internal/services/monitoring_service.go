package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/logger"
)

// PipelineOverview is a point-in-time snapshot of the ingestion pipeline.
type PipelineOverview struct {
	EventsByStage     map[string]int64 `json:"events_by_stage"`
	UnresolvedDead    int64            `json:"unresolved_dead_letters"`
	BatchJobsByStatus map[string]int64 `json:"batch_jobs_by_status"`
}

// HandlerPerformance reports processing latency for one event type against
// its configured target.
type HandlerPerformance struct {
	EventType       string `json:"event_type"`
	AvgProcessingMs int64  `json:"avg_processing_ms"`
	MaxProcessingMs int64  `json:"max_processing_ms"`
	HandledCount    int64  `json:"handled_count"`
	TargetMs        int64  `json:"target_ms,omitempty"`
	OverTarget      bool   `json:"over_target"`
}

// MonitoringService aggregates pipeline health for the operations endpoints.
type MonitoringService struct {
	queries db.Querier
	targets map[string]time.Duration
	logger  *zap.Logger
}

// NewMonitoringService creates a monitoring service. targets maps event types
// to the latency budget of their registered handler.
func NewMonitoringService(queries db.Querier, targets map[string]time.Duration) *MonitoringService {
	return &MonitoringService{
		queries: queries,
		targets: targets,
		logger:  logger.Log,
	}
}

// Overview returns event counts per pipeline stage, unresolved dead letter
// count, and batch job counts per status.
func (s *MonitoringService) Overview(ctx context.Context) (PipelineOverview, error) {
	overview := PipelineOverview{
		EventsByStage:     make(map[string]int64),
		BatchJobsByStatus: make(map[string]int64),
	}

	stages, err := s.queries.CountWebhookEventsByStage(ctx)
	if err != nil {
		return PipelineOverview{}, fmt.Errorf("failed to count events by stage: %w", err)
	}
	for _, row := range stages {
		overview.EventsByStage[row.Stage] = row.Count
	}

	unresolved, err := s.queries.CountUnresolvedDeadLetterEvents(ctx)
	if err != nil {
		return PipelineOverview{}, fmt.Errorf("failed to count unresolved dead letters: %w", err)
	}
	overview.UnresolvedDead = unresolved

	jobs, err := s.queries.CountBatchJobsByStatus(ctx)
	if err != nil {
		return PipelineOverview{}, fmt.Errorf("failed to count batch jobs: %w", err)
	}
	for _, row := range jobs {
		overview.BatchJobsByStatus[row.Status] = row.Count
	}

	return overview, nil
}

// Performance returns per-event-type latency aggregates for handled events,
// marking types whose average exceeds the handler's budget.
func (s *MonitoringService) Performance(ctx context.Context) ([]HandlerPerformance, error) {
	rows, err := s.queries.GetWebhookEventPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read event performance: %w", err)
	}

	report := make([]HandlerPerformance, 0, len(rows))
	for _, row := range rows {
		perf := HandlerPerformance{
			EventType:       row.EventType,
			AvgProcessingMs: row.AvgProcessingMs,
			HandledCount:    row.HandledCount,
		}
		if row.MaxProcessingMs.Valid {
			perf.MaxProcessingMs = row.MaxProcessingMs.Int64
		}
		if target, ok := s.targets[row.EventType]; ok {
			perf.TargetMs = target.Milliseconds()
			perf.OverTarget = perf.AvgProcessingMs > perf.TargetMs
			if perf.OverTarget {
				s.logger.Warn("Event type exceeding latency target",
					zap.String("event_type", row.EventType),
					zap.Int64("avg_processing_ms", perf.AvgProcessingMs),
					zap.Int64("target_ms", perf.TargetMs))
			}
		}
		report = append(report, perf)
	}

	return report, nil
}

// RecentEvents returns the newest event log rows for inspection.
func (s *MonitoringService) RecentEvents(ctx context.Context, limit int32) ([]db.WebhookEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	events, err := s.queries.ListRecentWebhookEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent events: %w", err)
	}
	return events, nil
}
