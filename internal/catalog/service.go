package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
	"github.com/yahna8/store-and-inventory-microservice/internal/repository"
)

// Service defines the catalog store operations
type Service interface {
	// ListAvailable returns items the user may still buy, optionally limited to one category.
	ListAvailable(ctx context.Context, category, userID string) ([]domain.CatalogItem, error)
	Get(ctx context.Context, itemID int64) (*domain.CatalogItem, error)
	// MarkOwned flips the catalog-level owned flag. It is a no-op in per_user mode.
	MarkOwned(ctx context.Context, itemID int64) error
	Insert(ctx context.Context, item domain.CatalogItem) (domain.CatalogItem, bool, error)
	InsertBatch(ctx context.Context, items []domain.CatalogItem) (*domain.SeedResult, error)
	// GlobalOwnership reports whether the catalog runs in global ownership mode.
	GlobalOwnership() bool
}

type service struct {
	repo          repository.Catalog
	ownershipMode string
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog, ownershipMode string) Service {
	if ownershipMode == "" {
		ownershipMode = domain.OwnershipPerUser
	}
	return &service{
		repo:          repo,
		ownershipMode: ownershipMode,
	}
}

func (s *service) GlobalOwnership() bool {
	return s.ownershipMode == domain.OwnershipGlobal
}

func (s *service) ListAvailable(ctx context.Context, category, userID string) ([]domain.CatalogItem, error) {
	items, err := s.repo.ListAvailable(ctx, domain.CatalogFilter{
		Category:             strings.TrimSpace(category),
		ExcludeOwnedBy:       userID,
		ExcludeGloballyOwned: s.GlobalOwnership(),
	})
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list catalog", "category", category, "error", err)
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, itemID int64) (*domain.CatalogItem, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("%w: item id must be positive", domain.ErrInvalidInput)
	}
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetFailed, err)
	}
	return item, nil
}

func (s *service) MarkOwned(ctx context.Context, itemID int64) error {
	if !s.GlobalOwnership() {
		return nil
	}
	changed, err := s.repo.MarkOwned(ctx, itemID)
	if err != nil {
		return fmt.Errorf(ErrMsgMarkOwnedFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgMarkedOwned, logger.AttrKeyItemID, itemID, "changed", changed)
	return nil
}

func (s *service) Insert(ctx context.Context, item domain.CatalogItem) (domain.CatalogItem, bool, error) {
	result, err := s.InsertBatch(ctx, []domain.CatalogItem{item})
	if err != nil {
		return item, false, err
	}
	if len(result.Inserted) == 1 {
		return result.Inserted[0], true, nil
	}
	return item, false, nil
}

func (s *service) InsertBatch(ctx context.Context, items []domain.CatalogItem) (*domain.SeedResult, error) {
	log := logger.FromContext(ctx)

	for _, item := range items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
	}

	result, err := s.repo.InsertItems(ctx, items)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertFailed, err)
	}

	for _, item := range result.Inserted {
		log.Info(LogMsgItemInserted, logger.AttrKeyItemID, item.ID, "name", item.Name)
	}
	for _, name := range result.Skipped {
		log.Info(LogMsgItemSkipped, "name", name)
	}
	return result, nil
}

func validateItem(item domain.CatalogItem) error {
	switch {
	case strings.TrimSpace(item.Name) == "":
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	case strings.TrimSpace(item.Category) == "":
		return fmt.Errorf("%w: item '%s' has empty category", domain.ErrInvalidInput, item.Name)
	case item.Price < 0:
		return fmt.Errorf("%w: item '%s' has negative price", domain.ErrInvalidInput, item.Name)
	}
	return nil
}
