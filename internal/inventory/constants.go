package inventory

// Error messages
const (
	ErrMsgCheckOwnershipFailed = "failed to check ownership: %w"
	ErrMsgGrantFailed          = "failed to grant item: %w"
	ErrMsgListFailed           = "failed to list inventory: %w"
	ErrMsgRemoteGrantFailed    = "remote inventory grant failed"
)

// Log messages
const (
	LogMsgItemGranted       = "Item granted"
	LogMsgGrantAlreadyOwned = "Grant skipped, item already owned"
	LogMsgRemoteGrantFailed = "Remote inventory grant failed"
)

// AddPath is the internal grant endpoint of the inventory service
const AddPath = "/inventory/add"
