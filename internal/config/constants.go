package config

// Configuration file paths
const (
	ConfigPathCatalog = "configs/catalog.json"
)

// Environment names treated as development
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Error messages
const (
	ErrMsgMissingRequired     = "must be set"
	ErrMsgInvalidOwnership    = "CATALOG_OWNERSHIP_MODE must be per_user or global"
	ErrMsgInvalidInventory    = "INVENTORY_MODE must be local or remote"
	ErrMsgRemoteNeedsURL      = "INVENTORY_SERVICE_URL must be set when INVENTORY_MODE is remote"
	ErrMsgInvalidAttempts     = "POINTS_MAX_ATTEMPTS must be at least 1"
	ErrMsgInvalidPositiveTime = "must be a positive duration"
	ErrMsgStaleBeforeTimeout  = "CLAIM_STALE_AFTER must be longer than PURCHASE_TIMEOUT"
)
