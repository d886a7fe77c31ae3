package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// MockCatalogService implements catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListAvailable(ctx context.Context, category, userID string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, category, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, itemID int64) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) MarkOwned(ctx context.Context, itemID int64) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *MockCatalogService) Insert(ctx context.Context, item domain.CatalogItem) (domain.CatalogItem, bool, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.CatalogItem), args.Bool(1), args.Error(2)
}

func (m *MockCatalogService) InsertBatch(ctx context.Context, items []domain.CatalogItem) (*domain.SeedResult, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedResult), args.Error(1)
}

func (m *MockCatalogService) GlobalOwnership() bool {
	return m.Called().Bool(0)
}

// MockPurchaseService implements purchase.Service
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) Purchase(ctx context.Context, userID string, itemID int64) (domain.PurchaseResult, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(domain.PurchaseResult), args.Error(1)
}

// MockInventoryService implements inventory.Service
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) IsOwned(ctx context.Context, userID string, itemID int64) (bool, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryService) Grant(ctx context.Context, userID string, itemID int64) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockInventoryService) List(ctx context.Context, userID string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

// MockEquipService implements equip.Service
type MockEquipService struct {
	mock.Mock
}

func (m *MockEquipService) Equip(ctx context.Context, userID string, itemID int64) (domain.EquippedItem, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(domain.EquippedItem), args.Error(1)
}

func (m *MockEquipService) GetEquipped(ctx context.Context, userID string) (domain.EquippedItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.EquippedItem), args.Error(1)
}
