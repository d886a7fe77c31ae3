package domain

import "time"

// PurchaseState is a step of the purchase workflow.
type PurchaseState string

const (
	StateValidating        PurchaseState = "validating"
	StateDeductingPoints   PurchaseState = "deducting_points"
	StateGrantingOwnership PurchaseState = "granting_ownership"
	StateCommitted         PurchaseState = "committed"

	StateRejectedUnavailable   PurchaseState = "rejected_unavailable"
	StateRejectedAlreadyOwned  PurchaseState = "rejected_already_owned"
	StateRejectedPointsFailure PurchaseState = "rejected_points_failure"
	StateFailedFulfillment     PurchaseState = "failed_fulfillment"
)

// IsTerminal reports whether no further transition can happen from s.
func (s PurchaseState) IsTerminal() bool {
	switch s {
	case StateCommitted, StateRejectedUnavailable, StateRejectedAlreadyOwned,
		StateRejectedPointsFailure, StateFailedFulfillment:
		return true
	}
	return false
}

// PurchaseOutcome is the caller-facing result of a purchase.
type PurchaseOutcome string

const (
	OutcomeSuccess               PurchaseOutcome = "success"
	OutcomeAlreadyOwned          PurchaseOutcome = "already_owned"
	OutcomeItemUnavailable       PurchaseOutcome = "item_unavailable"
	OutcomePointsDeductionFailed PurchaseOutcome = "points_deduction_failed"
	OutcomeFulfillmentFailed     PurchaseOutcome = "fulfillment_failed"
	OutcomeNotAccepted           PurchaseOutcome = "not_accepted"
	OutcomeError                 PurchaseOutcome = "error"
)

// OutcomeFor maps a terminal state to its outcome. A workflow that stopped in
// a non-terminal state ended on an unexpected error.
func OutcomeFor(s PurchaseState) PurchaseOutcome {
	switch s {
	case StateCommitted:
		return OutcomeSuccess
	case StateRejectedUnavailable:
		return OutcomeItemUnavailable
	case StateRejectedAlreadyOwned:
		return OutcomeAlreadyOwned
	case StateRejectedPointsFailure:
		return OutcomePointsDeductionFailed
	case StateFailedFulfillment:
		return OutcomeFulfillmentFailed
	}
	return OutcomeError
}

// PurchaseResult describes how a purchase attempt ended.
type PurchaseResult struct {
	UserID         string
	ItemID         int64
	Item           *CatalogItem
	State          PurchaseState
	Outcome        PurchaseOutcome
	PointsDeducted bool
	// Note carries reconciliation detail, e.g. ClaimNoteGrantedElsewhere.
	Note string
}

// ClaimStatus is the persisted state of a purchase claim.
type ClaimStatus string

const (
	ClaimPending           ClaimStatus = "pending"
	ClaimCommitted         ClaimStatus = "committed"
	ClaimFulfillmentFailed ClaimStatus = "fulfillment_failed"
	ClaimUnresolved        ClaimStatus = "unresolved"
)

// NeedsReconciliation reports whether points may have been taken without a grant.
func (s ClaimStatus) NeedsReconciliation() bool {
	return s == ClaimFulfillmentFailed || s == ClaimUnresolved
}

// Claim notes
const (
	ClaimNoteGrantedElsewhere = "granted_elsewhere"
	ClaimNoteStale            = "stale_pending"
)

// PurchaseClaim is the idempotency record for one (user, item) purchase.
type PurchaseClaim struct {
	UserID    string
	ItemID    int64
	Amount    int64
	Status    ClaimStatus
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
