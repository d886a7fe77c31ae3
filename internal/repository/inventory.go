package repository

import (
	"context"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// Inventory defines the interface for per-user ownership records
type Inventory interface {
	IsOwned(ctx context.Context, userID string, itemID int64) (bool, error)
	// Grant records ownership. Returns domain.ErrAlreadyOwned when the record
	// exists and domain.ErrItemNotFound when the item is not in the catalog.
	Grant(ctx context.Context, userID string, itemID int64) error
	// ListOwned returns the owned items joined with their catalog definitions.
	ListOwned(ctx context.Context, userID string) ([]domain.CatalogItem, error)
}

// Equipment defines the interface for the single per-user equipment slot
type Equipment interface {
	// Equip replaces the slot with itemID if the user owns it.
	// Returns domain.ErrNotOwned and leaves the slot untouched otherwise.
	Equip(ctx context.Context, userID string, itemID int64) (*domain.CatalogItem, error)
	// GetEquipped returns nil, nil when the slot is empty.
	GetEquipped(ctx context.Context, userID string) (*domain.CatalogItem, error)
}
