package postgres

// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
const PgErrorCodeForeignKeyViolation = "23503"

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToListItems  = "failed to list catalog items"
	ErrMsgFailedToGetItem    = "failed to get catalog item"
	ErrMsgFailedToMarkOwned  = "failed to mark item owned"
	ErrMsgFailedToInsertItem = "failed to insert catalog item"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToCheckOwnership = "failed to check ownership"
	ErrMsgFailedToGrantItem      = "failed to grant item"
	ErrMsgFailedToListInventory  = "failed to list inventory"
)

// Error Messages - Equipment Operations
const (
	ErrMsgFailedToEquipItem   = "failed to equip item"
	ErrMsgFailedToGetEquipped = "failed to get equipped item"
)

// Error Messages - Purchase Claim Operations
const (
	ErrMsgFailedToCreateClaim     = "failed to create purchase claim"
	ErrMsgFailedToGetClaim        = "failed to get purchase claim"
	ErrMsgFailedToUpdateClaim     = "failed to update purchase claim"
	ErrMsgFailedToReleaseClaim    = "failed to release purchase claim"
	ErrMsgFailedToFlagStaleClaims = "failed to flag stale purchase claims"
	ErrMsgClaimNotFound           = "purchase claim not found"
)

// createClaimAttempts bounds the insert/read loop when a conflicting claim
// disappears between the two statements.
const createClaimAttempts = 3
