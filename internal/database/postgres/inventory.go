package postgres

import (
	"context"
	"fmt"

	"github.com/yahna8/store-and-inventory-microservice/internal/database"
	"github.com/yahna8/store-and-inventory-microservice/internal/database/generated"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// InventoryRepository implements repository.Inventory using sqlc
type InventoryRepository struct {
	q *generated.Queries
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db database.DB) *InventoryRepository {
	return &InventoryRepository{q: generated.New(db)}
}

// IsOwned reports whether an ownership record exists for the pair
func (r *InventoryRepository) IsOwned(ctx context.Context, userID string, itemID int64) (bool, error) {
	owned, err := r.q.IsItemOwned(ctx, generated.IsItemOwnedParams{UserID: userID, ItemID: itemID})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckOwnership, err)
	}
	return owned, nil
}

// Grant inserts the ownership record; the primary key makes concurrent grants collapse to one row
func (r *InventoryRepository) Grant(ctx context.Context, userID string, itemID int64) error {
	affected, err := r.q.GrantItem(ctx, generated.GrantItemParams{UserID: userID, ItemID: itemID})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToGrantItem, err)
	}
	if affected == 0 {
		return domain.ErrAlreadyOwned
	}
	return nil
}

// ListOwned returns the user's items in acquisition order
func (r *InventoryRepository) ListOwned(ctx context.Context, userID string) ([]domain.CatalogItem, error) {
	rows, err := r.q.ListOwnedItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	return toCatalogItems(rows), nil
}
