package services

import "errors"

var (
	// ErrUnmappedCustomer indicates an event referenced a processor customer
	// that has no local account mapping yet. Retryable: the mapping event may
	// simply not have been processed.
	ErrUnmappedCustomer = errors.New("no local account mapped to processor customer")

	// ErrIntegrityConflict indicates a state conflict reconciliation cannot
	// resolve safely, such as two live paid subscriptions for one account.
	// Never retried automatically; routed to the dead letter queue for
	// manual review.
	ErrIntegrityConflict = errors.New("data integrity conflict requires manual review")

	// ErrJobTooLarge indicates a batch request above the item cap. Rejected
	// synchronously before any item is processed.
	ErrJobTooLarge = errors.New("batch job exceeds maximum item count")

	// ErrMalformedPayload indicates event data that could not be interpreted
	// as the expected object shape.
	ErrMalformedPayload = errors.New("malformed event payload")
)

// IsRetryable reports whether an error is worth another attempt. Integrity
// conflicts and malformed payloads never resolve on retry; everything else
// (unmapped customers, transient infrastructure failures) might.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrIntegrityConflict) || errors.Is(err, ErrMalformedPayload) {
		return false
	}
	return true
}

// RequiresManualReview reports whether a dead-lettered error must be flagged
// for a human instead of being eligible for automatic replay.
func RequiresManualReview(err error) bool {
	return errors.Is(err, ErrIntegrityConflict)
}
