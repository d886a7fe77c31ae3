package repository

import (
	"context"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// Catalog defines the interface for catalog item persistence
type Catalog interface {
	// ListAvailable returns available items matching the filter, ordered by id.
	ListAvailable(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error)
	// GetItem returns domain.ErrItemNotFound when no item has the id.
	GetItem(ctx context.Context, itemID int64) (*domain.CatalogItem, error)
	// MarkOwned sets the global owned flag. It reports false when the flag was already set.
	MarkOwned(ctx context.Context, itemID int64) (bool, error)
	// InsertItems inserts items in one transaction, skipping names that already exist.
	InsertItems(ctx context.Context, items []domain.CatalogItem) (*domain.SeedResult, error)
}
