package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgItemUnavailable = "item not found or unavailable"

	// Ownership errors
	ErrMsgAlreadyOwned = "user already owns this item"
	ErrMsgNotOwned     = "user does not own this item"

	// Points errors
	ErrMsgInsufficientPoints = "insufficient points"
	ErrMsgPointsDeduction    = "failed to deduct points"

	// Purchase workflow errors
	ErrMsgFulfillment           = "purchase fulfillment failed"
	ErrMsgClaimExists           = "purchase already claimed"
	ErrMsgPurchaseNotAccepted   = "purchase request cancelled before acceptance"
	ErrMsgPendingReconciliation = "purchase pending reconciliation"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Auth errors
	ErrMsgUnauthenticated = "unauthenticated"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrItemUnavailable = errors.New(ErrMsgItemUnavailable)

	ErrAlreadyOwned = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned     = errors.New(ErrMsgNotOwned)

	ErrInsufficientPoints = errors.New(ErrMsgInsufficientPoints)
	ErrPointsDeduction    = errors.New(ErrMsgPointsDeduction)

	ErrFulfillment           = errors.New(ErrMsgFulfillment)
	ErrClaimExists           = errors.New(ErrMsgClaimExists)
	ErrPurchaseNotAccepted   = errors.New(ErrMsgPurchaseNotAccepted)
	ErrPendingReconciliation = errors.New(ErrMsgPendingReconciliation)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)
)
