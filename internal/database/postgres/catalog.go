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

// CatalogRepository implements repository.Catalog using sqlc
type CatalogRepository struct {
	db database.DB
	q  *generated.Queries
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db database.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		q:  generated.New(db),
	}
}

// ListAvailable returns sellable items in a single anti-join query
func (r *CatalogRepository) ListAvailable(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	rows, err := r.q.ListAvailableItems(ctx, generated.ListAvailableItemsParams{
		Category:      filter.Category,
		ExcludeGlobal: filter.ExcludeGloballyOwned,
		UserID:        filter.ExcludeOwnedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return toCatalogItems(rows), nil
}

// GetItem retrieves a single item by id
func (r *CatalogRepository) GetItem(ctx context.Context, itemID int64) (*domain.CatalogItem, error) {
	row, err := r.q.GetStoreItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	item := toCatalogItem(row)
	return &item, nil
}

// MarkOwned flips the global owned flag with a conditional update
func (r *CatalogRepository) MarkOwned(ctx context.Context, itemID int64) (bool, error) {
	affected, err := r.q.MarkStoreItemOwned(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToMarkOwned, err)
	}
	if affected > 0 {
		return true, nil
	}

	exists, err := r.q.StoreItemExists(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToMarkOwned, err)
	}
	if !exists {
		return false, domain.ErrItemNotFound
	}
	return false, nil
}

// InsertItems inserts a batch of items in one transaction, skipping existing names
func (r *CatalogRepository) InsertItems(ctx context.Context, items []domain.CatalogItem) (*domain.SeedResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	result := &domain.SeedResult{
		Inserted: make([]domain.CatalogItem, 0, len(items)),
	}
	for _, item := range items {
		id, err := q.InsertStoreItem(ctx, generated.InsertStoreItemParams{
			Name:        item.Name,
			Description: item.Description,
			Image:       item.Image,
			Price:       item.Price,
			Category:    item.Category,
			Available:   item.Available,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			result.Skipped = append(result.Skipped, item.Name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedToInsertItem, item.Name, err)
		}
		item.ID = id
		item.Owned = false
		result.Inserted = append(result.Inserted, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return result, nil
}
