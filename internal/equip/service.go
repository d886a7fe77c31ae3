// Package equip manages the single equipment slot each user has.
package equip

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/inventory"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
	"github.com/yahna8/store-and-inventory-microservice/internal/metrics"
	"github.com/yahna8/store-and-inventory-microservice/internal/repository"
)

// Service defines the equip slot operations
type Service interface {
	// Equip replaces the user's slot. Returns domain.ErrNotOwned when the user lacks the item.
	Equip(ctx context.Context, userID string, itemID int64) (domain.EquippedItem, error)
	// GetEquipped returns domain.NoneEquipped when the slot is empty.
	GetEquipped(ctx context.Context, userID string) (domain.EquippedItem, error)
}

type service struct {
	repo repository.Equipment
}

// NewService creates a new equip service
func NewService(repo repository.Equipment) Service {
	return &service{repo: repo}
}

func (s *service) Equip(ctx context.Context, userID string, itemID int64) (domain.EquippedItem, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.EquippedItem{}, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if itemID <= 0 {
		return domain.EquippedItem{}, fmt.Errorf("%w: item id must be positive", domain.ErrInvalidInput)
	}

	item, err := s.repo.Equip(ctx, userID, itemID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotOwned) {
			logger.FromContext(ctx).Error("Failed to equip item", logger.AttrKeyUserID, userID, logger.AttrKeyItemID, itemID, "error", err)
		}
		return domain.EquippedItem{}, fmt.Errorf("failed to equip item: %w", err)
	}

	metrics.ItemsEquipped.Inc()
	logger.FromContext(ctx).Info("Item equipped", logger.AttrKeyUserID, userID, logger.AttrKeyItemID, itemID)
	return toEquipped(*item), nil
}

func (s *service) GetEquipped(ctx context.Context, userID string) (domain.EquippedItem, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.EquippedItem{}, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	item, err := s.repo.GetEquipped(ctx, userID)
	if err != nil {
		return domain.EquippedItem{}, fmt.Errorf("failed to get equipped item: %w", err)
	}
	if item == nil {
		return domain.NoneEquipped(), nil
	}
	return toEquipped(*item), nil
}

func toEquipped(item domain.CatalogItem) domain.EquippedItem {
	item = inventory.WithImageFallback(item)
	return domain.EquippedItem{
		ItemID: item.ID,
		Name:   item.Name,
		Image:  item.Image,
	}
}
