package catalog

// Error messages
const (
	ErrMsgListFailed       = "failed to list catalog: %w"
	ErrMsgGetFailed        = "failed to get catalog item: %w"
	ErrMsgMarkOwnedFailed  = "failed to mark item owned: %w"
	ErrMsgInsertFailed     = "failed to insert catalog items: %w"
	ErrMsgReadConfigFailed = "failed to read catalog file: %w"
	ErrMsgParseFailed      = "failed to parse catalog file: %w"
	ErrMsgConfigNil        = "config is nil"
	ErrMsgNoItemsDefined   = "no items defined"
)

// Error formats taking the sentinel and an item identifier
const (
	ErrFmtItemEmptyName     = "%w: item at index %d has empty name"
	ErrFmtItemEmptyCategory = "%w: item '%s' has empty category"
	ErrFmtItemNegativePrice = "%w: item '%s' has negative price"
	ErrFmtDuplicateItemName = "%w: '%s'"
)

// Log messages
const (
	LogMsgItemInserted  = "Catalog item inserted"
	LogMsgItemSkipped   = "Catalog item skipped (already exists)"
	LogMsgSeedCompleted = "Catalog seed completed"
	LogMsgMarkedOwned   = "Catalog item marked owned"
)
