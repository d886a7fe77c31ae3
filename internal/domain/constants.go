package domain

import "time"

// Static image references served by the asset host.
const (
	ImageDefault = "/static/default.png"
	ImageCat     = "/static/cat.png"
	ImageDog     = "/static/dog.png"
)

// EquippedNoneName is the display name of an empty equipment slot.
const EquippedNoneName = "None"

// Catalog ownership modes
const (
	// OwnershipPerUser tracks ownership only in each user's inventory.
	OwnershipPerUser = "per_user"
	// OwnershipGlobal additionally flips the catalog item's owned flag on first sale.
	OwnershipGlobal = "global"
)

// Inventory fulfillment modes
const (
	InventoryModeLocal  = "local"
	InventoryModeRemote = "remote"
)

// Purchase defaults
const (
	DefaultPointsMaxAttempts = 3
	DefaultPointsRetryBase   = 100 * time.Millisecond
	DefaultPurchaseTimeout   = 30 * time.Second
)
