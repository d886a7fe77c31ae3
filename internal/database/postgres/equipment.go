package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yahna8/store-and-inventory-microservice/internal/database"
	"github.com/yahna8/store-and-inventory-microservice/internal/database/generated"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// EquipmentRepository implements repository.Equipment using sqlc
type EquipmentRepository struct {
	q *generated.Queries
}

// NewEquipmentRepository creates a new EquipmentRepository
func NewEquipmentRepository(db database.DB) *EquipmentRepository {
	return &EquipmentRepository{q: generated.New(db)}
}

// Equip replaces the user's slot with an owned item. The ownership check and
// the upsert run as one statement, so no row means the item is not owned.
func (r *EquipmentRepository) Equip(ctx context.Context, userID string, itemID int64) (*domain.CatalogItem, error) {
	row, err := r.q.EquipItem(ctx, generated.EquipItemParams{UserID: userID, ItemID: itemID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotOwned
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEquipItem, err)
	}
	item := toCatalogItem(row)
	return &item, nil
}

// GetEquipped returns the equipped item (returns nil, nil if the slot is empty)
func (r *EquipmentRepository) GetEquipped(ctx context.Context, userID string) (*domain.CatalogItem, error) {
	row, err := r.q.GetEquippedItem(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquipped, err)
	}
	item := toCatalogItem(row)
	return &item, nil
}
