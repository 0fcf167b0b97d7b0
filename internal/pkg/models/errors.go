package models

import "errors"

// Sentinel errors for saga outcomes. Handlers and callers classify
// failures with errors.Is; wrapped messages carry the detail.
var (
	// ErrNotFound indicates a missing user, balance or transaction row.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientFunds indicates the balance cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrUpstreamFailure indicates the proxy market call failed, either at
	// transport level or as a well-formed non-success response.
	ErrUpstreamFailure = errors.New("upstream failure")

	// ErrPersistenceFailure indicates a per-item write failure that is
	// recovered locally (logged and skipped, never refunded).
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrDuplicateCallback indicates a payment callback replay for a
	// transaction that already reached a terminal success state.
	ErrDuplicateCallback = errors.New("duplicate callback")

	// ErrInternal covers unexpected failures caught at the orchestrator
	// boundary.
	ErrInternal = errors.New("internal error")
)
