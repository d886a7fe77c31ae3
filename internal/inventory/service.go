package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
	"github.com/yahna8/store-and-inventory-microservice/internal/metrics"
	"github.com/yahna8/store-and-inventory-microservice/internal/repository"
)

// Granter records that a user owns an item
type Granter interface {
	// Grant returns domain.ErrAlreadyOwned or domain.ErrItemNotFound for the expected conflicts.
	Grant(ctx context.Context, userID string, itemID int64) error
}

// Service defines the inventory ledger operations
type Service interface {
	Granter
	IsOwned(ctx context.Context, userID string, itemID int64) (bool, error)
	// List returns owned items with image fallbacks applied. Never nil.
	List(ctx context.Context, userID string) ([]domain.CatalogItem, error)
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

func (s *service) IsOwned(ctx context.Context, userID string, itemID int64) (bool, error) {
	if err := validateRef(userID, itemID); err != nil {
		return false, err
	}
	owned, err := s.repo.IsOwned(ctx, userID, itemID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgCheckOwnershipFailed, err)
	}
	return owned, nil
}

func (s *service) Grant(ctx context.Context, userID string, itemID int64) error {
	log := logger.FromContext(ctx)

	if err := validateRef(userID, itemID); err != nil {
		return err
	}

	err := s.repo.Grant(ctx, userID, itemID)
	switch {
	case err == nil:
		metrics.InventoryGrants.WithLabelValues(metrics.ResultSuccess).Inc()
		log.Info(LogMsgItemGranted, logger.AttrKeyUserID, userID, logger.AttrKeyItemID, itemID)
		return nil
	case errors.Is(err, domain.ErrAlreadyOwned):
		metrics.InventoryGrants.WithLabelValues(metrics.ResultAlreadyOwned).Inc()
		log.Debug(LogMsgGrantAlreadyOwned, logger.AttrKeyUserID, userID, logger.AttrKeyItemID, itemID)
	case errors.Is(err, domain.ErrItemNotFound):
		metrics.InventoryGrants.WithLabelValues(metrics.ResultNotFound).Inc()
	default:
		metrics.InventoryGrants.WithLabelValues(metrics.ResultError).Inc()
	}
	return fmt.Errorf(ErrMsgGrantFailed, err)
}

func (s *service) List(ctx context.Context, userID string) ([]domain.CatalogItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	items, err := s.repo.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}

	result := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		result = append(result, WithImageFallback(item))
	}
	return result, nil
}

func validateRef(userID string, itemID int64) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if itemID <= 0 {
		return fmt.Errorf("%w: item id must be positive", domain.ErrInvalidInput)
	}
	return nil
}
