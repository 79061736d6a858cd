package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/logger"
)

// Batch execution bounds. At most MaxConcurrentChunks * ChunkSize items are
// in flight at once, capping load on the store.
const (
	MaxJobItems         = 1000
	ChunkSize           = 50
	MaxConcurrentChunks = 5
)

// Batch operation types.
const (
	OpDeleteQuotes      = "delete_quotes"
	OpUpdateQuoteStatus = "update_quote_status"
	OpExportQuotes      = "export_quotes"
	OpBulkCreateItems   = "bulk_create_items"
	OpAdjustItemPrices  = "adjust_item_prices"
)

// ErrBatchJobNotFound indicates an unknown job id or a job owned by another
// account.
var ErrBatchJobNotFound = errors.New("batch job not found")

// NewItem describes one item to create in a bulk_create_items job.
type NewItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnitAmount  int64  `json:"unit_amount"`
	Currency    string `json:"currency"`
}

// BatchJobRequest is the client-supplied description of a bulk operation.
// It is persisted on the job so failed items can be retried later.
type BatchJobRequest struct {
	OperationType string      `json:"operation_type"`
	ItemIDs       []uuid.UUID `json:"item_ids,omitempty"`
	Status        string      `json:"status,omitempty"`
	PercentChange float64     `json:"percent_change,omitempty"`
	NewItems      []NewItem   `json:"new_items,omitempty"`
}

// ItemError records a single item's failure without failing the job.
type ItemError struct {
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

// BatchJobService executes bulk operations over locally owned collections in
// fixed-size chunks with bounded concurrency.
type BatchJobService struct {
	queries db.Querier
	logger  *zap.Logger

	// wg tracks in-flight job goroutines so tests and shutdown can wait.
	wg sync.WaitGroup
}

// NewBatchJobService creates a new batch job service.
func NewBatchJobService(queries db.Querier) *BatchJobService {
	return &BatchJobService{
		queries: queries,
		logger:  logger.Log,
	}
}

// Create validates the request, records the job, and starts execution in the
// background. Requests above the item cap are rejected synchronously before
// any item is touched.
func (s *BatchJobService) Create(ctx context.Context, accountID uuid.UUID, req BatchJobRequest) (db.BatchJob, error) {
	total, err := validateRequest(req)
	if err != nil {
		return db.BatchJob{}, err
	}

	optionsBytes, err := json.Marshal(req)
	if err != nil {
		return db.BatchJob{}, fmt.Errorf("failed to marshal job options: %w", err)
	}

	job, err := s.queries.CreateBatchJob(ctx, db.CreateBatchJobParams{
		AccountID:     accountID,
		OperationType: req.OperationType,
		TotalItems:    int32(total),
		Options:       optionsBytes,
	})
	if err != nil {
		return db.BatchJob{}, fmt.Errorf("failed to create batch job: %w", err)
	}

	s.logger.Info("Batch job created",
		zap.String("job_id", job.ID.String()),
		zap.String("account_id", accountID.String()),
		zap.String("operation_type", req.OperationType),
		zap.Int("total_items", total))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		// The job outlives the originating request.
		s.run(context.Background(), job.ID, accountID, req)
	}()

	return job, nil
}

// Get returns a job scoped to the requesting account.
func (s *BatchJobService) Get(ctx context.Context, accountID, jobID uuid.UUID) (db.BatchJob, error) {
	job, err := s.queries.GetBatchJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.BatchJob{}, ErrBatchJobNotFound
		}
		return db.BatchJob{}, fmt.Errorf("failed to get batch job %s: %w", jobID, err)
	}
	if job.AccountID != accountID {
		return db.BatchJob{}, ErrBatchJobNotFound
	}
	return job, nil
}

// List returns the account's jobs, newest first.
func (s *BatchJobService) List(ctx context.Context, accountID uuid.UUID, limit int32) ([]db.BatchJob, error) {
	if limit <= 0 {
		limit = 50
	}
	jobs, err := s.queries.ListBatchJobsByAccount(ctx, db.ListBatchJobsByAccountParams{
		AccountID: accountID,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list batch jobs: %w", err)
	}
	return jobs, nil
}

// RetryFailed creates a new job targeting only the items that failed in a
// terminal job. The new job carries the original operation and options.
func (s *BatchJobService) RetryFailed(ctx context.Context, accountID, jobID uuid.UUID) (db.BatchJob, error) {
	job, err := s.Get(ctx, accountID, jobID)
	if err != nil {
		return db.BatchJob{}, err
	}
	if job.Status != "completed" && job.Status != "failed" {
		return db.BatchJob{}, fmt.Errorf("batch job %s is still %s", jobID, job.Status)
	}
	if job.FailedItems == 0 {
		return db.BatchJob{}, fmt.Errorf("batch job %s has no failed items", jobID)
	}

	var req BatchJobRequest
	if err := json.Unmarshal(job.Options, &req); err != nil {
		return db.BatchJob{}, fmt.Errorf("failed to parse stored job options: %w", err)
	}

	var itemErrors []ItemError
	if len(job.ItemErrors) > 0 {
		if err := json.Unmarshal(job.ItemErrors, &itemErrors); err != nil {
			return db.BatchJob{}, fmt.Errorf("failed to parse stored item errors: %w", err)
		}
	}

	retry := BatchJobRequest{
		OperationType: req.OperationType,
		Status:        req.Status,
		PercentChange: req.PercentChange,
	}
	if req.OperationType == OpBulkCreateItems {
		for _, itemErr := range itemErrors {
			if itemErr.Index >= 0 && itemErr.Index < len(req.NewItems) {
				retry.NewItems = append(retry.NewItems, req.NewItems[itemErr.Index])
			}
		}
	} else {
		for _, itemErr := range itemErrors {
			id, err := uuid.Parse(itemErr.ID)
			if err != nil {
				continue
			}
			retry.ItemIDs = append(retry.ItemIDs, id)
		}
	}

	return s.Create(ctx, accountID, retry)
}

// Wait blocks until all in-flight jobs finish. Used by shutdown and tests.
func (s *BatchJobService) Wait() {
	s.wg.Wait()
}

func validateRequest(req BatchJobRequest) (int, error) {
	var total int
	switch req.OperationType {
	case OpDeleteQuotes, OpExportQuotes:
		total = len(req.ItemIDs)
	case OpUpdateQuoteStatus:
		if req.Status == "" {
			return 0, fmt.Errorf("update_quote_status requires a target status")
		}
		total = len(req.ItemIDs)
	case OpAdjustItemPrices:
		if req.PercentChange == 0 {
			return 0, fmt.Errorf("adjust_item_prices requires a non-zero percent_change")
		}
		if req.PercentChange <= -100 {
			return 0, fmt.Errorf("percent_change must be greater than -100")
		}
		total = len(req.ItemIDs)
	case OpBulkCreateItems:
		total = len(req.NewItems)
	default:
		return 0, fmt.Errorf("unsupported operation type %q", req.OperationType)
	}

	if total == 0 {
		return 0, fmt.Errorf("batch job has no items")
	}
	if total > MaxJobItems {
		return 0, fmt.Errorf("%w: %d items (max %d)", ErrJobTooLarge, total, MaxJobItems)
	}
	return total, nil
}

// run executes the job: items partitioned into fixed chunks, chunks processed
// with bounded concurrency, every item's outcome recorded independently, and
// progress written after each chunk so polling clients see it move. The job
// is terminal only after every chunk has returned.
func (s *BatchJobService) run(ctx context.Context, jobID, accountID uuid.UUID, req BatchJobRequest) {
	if err := s.queries.MarkBatchJobRunning(ctx, jobID); err != nil {
		s.logger.Error("Failed to mark batch job running", zap.String("job_id", jobID.String()), zap.Error(err))
	}

	total := len(req.ItemIDs)
	if req.OperationType == OpBulkCreateItems {
		total = len(req.NewItems)
	}

	var (
		mu         sync.Mutex
		processed  int32
		failed     int32
		itemErrors []ItemError
		exported   []exportedQuote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentChunks)

	for start := 0; start < total; start += ChunkSize {
		end := start + ChunkSize
		if end > total {
			end = total
		}
		start, end := start, end

		g.Go(func() error {
			chunkExports := make([]exportedQuote, 0)
			chunkErrors := make([]ItemError, 0)
			var chunkFailed int32

			for idx := start; idx < end; idx++ {
				export, err := s.processItem(gctx, accountID, req, idx)
				if err != nil {
					chunkFailed++
					chunkErrors = append(chunkErrors, ItemError{
						Index: idx,
						ID:    itemIDAt(req, idx),
						Error: err.Error(),
					})
				} else if export != nil {
					chunkExports = append(chunkExports, *export)
				}
			}

			mu.Lock()
			// processed and failed are disjoint: every attempted item lands
			// in exactly one of them.
			processed += int32(end-start) - chunkFailed
			failed += chunkFailed
			itemErrors = append(itemErrors, chunkErrors...)
			exported = append(exported, chunkExports...)
			progressProcessed, progressFailed := processed, failed
			mu.Unlock()

			attempted := progressProcessed + progressFailed
			if err := s.queries.UpdateBatchJobProgress(ctx, db.UpdateBatchJobProgressParams{
				ID:              jobID,
				ProcessedItems:  progressProcessed,
				FailedItems:     progressFailed,
				ProgressPercent: int32(int(attempted) * 100 / total),
			}); err != nil {
				s.logger.Error("Failed to update batch job progress",
					zap.String("job_id", jobID.String()), zap.Error(err))
			}
			return nil
		})
	}

	// Item failures are recorded per item and never abort the group, so an
	// error here means the context was canceled.
	groupErr := g.Wait()

	status := "completed"
	if groupErr != nil {
		status = "failed"
	}

	errorsBytes, err := json.Marshal(itemErrors)
	if err != nil {
		s.logger.Error("Failed to marshal item errors", zap.String("job_id", jobID.String()), zap.Error(err))
		errorsBytes = []byte("[]")
	}

	var resultBytes []byte
	if req.OperationType == OpExportQuotes && len(exported) > 0 {
		resultBytes, err = json.Marshal(exported)
		if err != nil {
			s.logger.Error("Failed to marshal export result", zap.String("job_id", jobID.String()), zap.Error(err))
			resultBytes = nil
		}
	}

	if err := s.queries.FinishBatchJob(ctx, db.FinishBatchJobParams{
		ID:             jobID,
		Status:         status,
		ProcessedItems: processed,
		FailedItems:    failed,
		ItemErrors:     errorsBytes,
		Result:         resultBytes,
	}); err != nil {
		s.logger.Error("Failed to finish batch job", zap.String("job_id", jobID.String()), zap.Error(err))
		return
	}

	s.logger.Info("Batch job finished",
		zap.String("job_id", jobID.String()),
		zap.String("status", status),
		zap.Int32("processed", processed),
		zap.Int32("failed", failed))
}

// exportedQuote is one row of an export_quotes result document. Client
// contact fields are resolved at export time so the document stands alone.
type exportedQuote struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`
	Status      string `json:"status"`
	Total       int64  `json:"total"`
	Currency    string `json:"currency"`
}

// processItem applies the operation to one item. Ownership is verified by
// the account-scoped queries themselves: zero rows affected means the item
// does not exist or belongs to another account, and only that item fails.
func (s *BatchJobService) processItem(ctx context.Context, accountID uuid.UUID, req BatchJobRequest, idx int) (*exportedQuote, error) {
	switch req.OperationType {
	case OpDeleteQuotes:
		affected, err := s.queries.DeleteQuoteForAccount(ctx, db.DeleteQuoteForAccountParams{
			ID:        req.ItemIDs[idx],
			AccountID: accountID,
		})
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, fmt.Errorf("quote not found or not owned by account")
		}
		return nil, nil

	case OpUpdateQuoteStatus:
		affected, err := s.queries.UpdateQuoteStatusForAccount(ctx, db.UpdateQuoteStatusForAccountParams{
			ID:        req.ItemIDs[idx],
			AccountID: accountID,
			Status:    req.Status,
		})
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, fmt.Errorf("quote not found or not owned by account")
		}
		return nil, nil

	case OpExportQuotes:
		quote, err := s.queries.GetQuoteForAccount(ctx, db.GetQuoteForAccountParams{
			ID:        req.ItemIDs[idx],
			AccountID: accountID,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("quote not found or not owned by account")
			}
			return nil, err
		}
		row := exportedQuote{
			ID:       quote.ID.String(),
			Status:   quote.Status,
			Total:    quote.Total,
			Currency: quote.Currency,
		}
		if quote.ClientID.Valid {
			clientID := uuid.UUID(quote.ClientID.Bytes)
			row.ClientID = clientID.String()
			client, err := s.queries.GetClientForAccount(ctx, db.GetClientForAccountParams{
				ID:        clientID,
				AccountID: accountID,
			})
			switch {
			case err == nil:
				row.ClientName = client.Name
				row.ClientEmail = client.Email.String
			case !errors.Is(err, pgx.ErrNoRows):
				return nil, err
			}
		}
		return &row, nil

	case OpBulkCreateItems:
		item := req.NewItems[idx]
		if item.Name == "" {
			return nil, fmt.Errorf("item name is required")
		}
		if item.Currency == "" {
			return nil, fmt.Errorf("item currency is required")
		}
		_, err := s.queries.CreateItem(ctx, db.CreateItemParams{
			AccountID:   accountID,
			Name:        item.Name,
			Description: textVal(item.Description),
			UnitAmount:  item.UnitAmount,
			Currency:    item.Currency,
		})
		return nil, err

	case OpAdjustItemPrices:
		affected, err := s.queries.AdjustItemPriceForAccount(ctx, db.AdjustItemPriceForAccountParams{
			ID:            req.ItemIDs[idx],
			AccountID:     accountID,
			PercentChange: req.PercentChange,
		})
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, fmt.Errorf("item not found or not owned by account")
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("unsupported operation type %q", req.OperationType)
	}
}

func itemIDAt(req BatchJobRequest, idx int) string {
	if req.OperationType == OpBulkCreateItems {
		return ""
	}
	if idx < len(req.ItemIDs) {
		return req.ItemIDs[idx].String()
	}
	return ""
}
