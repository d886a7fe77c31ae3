package domain

// CatalogItem is a purchasable cosmetic definition.
// Owned is only meaningful when the catalog runs in global ownership mode.
type CatalogItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
	Owned       bool   `json:"-"`
}

// CatalogFilter narrows a catalog listing.
type CatalogFilter struct {
	// Category is matched exactly; empty means all categories.
	Category string
	// ExcludeOwnedBy hides items already in this user's inventory.
	ExcludeOwnedBy string
	// ExcludeGloballyOwned hides items whose catalog-level owned flag is set.
	ExcludeGloballyOwned bool
}

// SeedResult reports what a catalog insert batch did.
type SeedResult struct {
	Inserted []CatalogItem
	Skipped  []string
}

// EquippedItem is the content of a user's single equipment slot.
// None is set when nothing is equipped.
type EquippedItem struct {
	ItemID int64
	Name   string
	Image  string
	None   bool
}

// NoneEquipped returns the sentinel for an empty slot.
func NoneEquipped() EquippedItem {
	return EquippedItem{
		Name:  EquippedNoneName,
		Image: ImageDefault,
		None:  true,
	}
}
