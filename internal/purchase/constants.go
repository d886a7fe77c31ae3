package purchase

// Log messages
const (
	LogMsgPurchaseStarted     = "Purchase started"
	LogMsgPurchaseCommitted   = "Purchase committed"
	LogMsgPurchaseRejected    = "Purchase rejected"
	LogMsgPurchaseAborted     = "Purchase aborted"
	LogMsgPurchaseNotAccepted = "Purchase cancelled before acceptance"
	LogMsgDeductionRetry      = "Retrying points deduction"
	LogMsgGrantedElsewhere    = "Item was granted by a concurrent path after points were deducted"
	LogMsgFulfillmentFailed   = "Points deducted but ownership grant failed"
	LogMsgClaimPending        = "Existing claim needs reconciliation"
	LogMsgClaimReleaseFailed  = "Failed to release purchase claim"
	LogMsgClaimUpdateFailed   = "Failed to update purchase claim"
	LogMsgGlobalMarkFailed    = "Failed to mark catalog item owned"
)

// Error messages
const (
	ErrMsgLoadItemFailed       = "failed to load item: %w"
	ErrMsgCheckOwnershipFailed = "failed to check ownership: %w"
	ErrMsgCreateClaimFailed    = "failed to create purchase claim: %w"
)
