// Package memory provides a mutex-guarded implementation of the repository
// interfaces with the same uniqueness guarantees as the PostgreSQL schema.
// Service tests use it in place of a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

type ownershipKey struct {
	userID string
	itemID int64
}

type ownership struct {
	seq int64
}

// Store holds catalog, inventory, equipment and claim state in memory
type Store struct {
	mu sync.Mutex

	nextItemID int64
	nextSeq    int64
	items      map[int64]*domain.CatalogItem
	names      map[string]int64
	owned      map[ownershipKey]ownership
	equipped   map[string]int64
	claims     map[ownershipKey]*domain.PurchaseClaim

	now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		items:    make(map[int64]*domain.CatalogItem),
		names:    make(map[string]int64),
		owned:    make(map[ownershipKey]ownership),
		equipped: make(map[string]int64),
		claims:   make(map[ownershipKey]*domain.PurchaseClaim),
		now:      time.Now,
	}
}

// SetClock replaces the clock used for claim timestamps
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddItem inserts an item and returns it with its assigned id
func (s *Store) AddItem(item domain.CatalogItem) domain.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addItemLocked(item)
}

func (s *Store) addItemLocked(item domain.CatalogItem) domain.CatalogItem {
	s.nextItemID++
	item.ID = s.nextItemID
	stored := item
	s.items[item.ID] = &stored
	s.names[item.Name] = item.ID
	return item
}

// SetAvailable toggles an item's availability
func (s *Store) SetAvailable(itemID int64, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[itemID]; ok {
		item.Available = available
	}
}

// OwnershipCount returns the number of ownership records for the pair
func (s *Store) OwnershipCount(userID string, itemID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owned[ownershipKey{userID, itemID}]; ok {
		return 1
	}
	return 0
}

// Claim returns a copy of the claim for the pair, if any
func (s *Store) Claim(userID string, itemID int64) (domain.PurchaseClaim, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.claims[ownershipKey{userID, itemID}]
	if !ok {
		return domain.PurchaseClaim{}, false
	}
	return *c, true
}

// ---- repository.Catalog ----

func (s *Store) ListAvailable(_ context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CatalogItem, 0, len(s.items))
	for _, item := range s.items {
		if !item.Available {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.ExcludeGloballyOwned && item.Owned {
			continue
		}
		if _, ok := s.owned[ownershipKey{filter.ExcludeOwnedBy, item.ID}]; ok {
			continue
		}
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetItem(_ context.Context, itemID int64) (*domain.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *Store) MarkOwned(_ context.Context, itemID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok {
		return false, domain.ErrItemNotFound
	}
	if item.Owned {
		return false, nil
	}
	item.Owned = true
	return true, nil
}

func (s *Store) InsertItems(_ context.Context, items []domain.CatalogItem) (*domain.SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &domain.SeedResult{Inserted: make([]domain.CatalogItem, 0, len(items))}
	for _, item := range items {
		if _, exists := s.names[item.Name]; exists {
			result.Skipped = append(result.Skipped, item.Name)
			continue
		}
		item.Owned = false
		result.Inserted = append(result.Inserted, s.addItemLocked(item))
	}
	return result, nil
}

// ---- repository.Inventory ----

func (s *Store) IsOwned(_ context.Context, userID string, itemID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.owned[ownershipKey{userID, itemID}]
	return ok, nil
}

func (s *Store) Grant(_ context.Context, userID string, itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	key := ownershipKey{userID, itemID}
	if _, ok := s.owned[key]; ok {
		return domain.ErrAlreadyOwned
	}
	s.nextSeq++
	s.owned[key] = ownership{seq: s.nextSeq}
	return nil
}

func (s *Store) ListOwned(_ context.Context, userID string) ([]domain.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type ownedItem struct {
		seq  int64
		item domain.CatalogItem
	}
	var list []ownedItem
	for key, o := range s.owned {
		if key.userID != userID {
			continue
		}
		list = append(list, ownedItem{seq: o.seq, item: *s.items[key.itemID]})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].seq < list[j].seq })

	items := make([]domain.CatalogItem, 0, len(list))
	for _, o := range list {
		items = append(items, o.item)
	}
	return items, nil
}

// ---- repository.Equipment ----

func (s *Store) Equip(_ context.Context, userID string, itemID int64) (*domain.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owned[ownershipKey{userID, itemID}]; !ok {
		return nil, domain.ErrNotOwned
	}
	s.equipped[userID] = itemID
	cp := *s.items[itemID]
	return &cp, nil
}

func (s *Store) GetEquipped(_ context.Context, userID string) (*domain.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	itemID, ok := s.equipped[userID]
	if !ok {
		return nil, nil
	}
	cp := *s.items[itemID]
	return &cp, nil
}

// ---- repository.PurchaseClaims ----

func (s *Store) CreateClaim(_ context.Context, userID string, itemID, amount int64) (*domain.PurchaseClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[itemID]; !ok {
		return nil, domain.ErrItemNotFound
	}
	key := ownershipKey{userID, itemID}
	if existing, ok := s.claims[key]; ok {
		cp := *existing
		return &cp, domain.ErrClaimExists
	}
	now := s.now()
	claim := &domain.PurchaseClaim{
		UserID:    userID,
		ItemID:    itemID,
		Amount:    amount,
		Status:    domain.ClaimPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.claims[key] = claim
	cp := *claim
	return &cp, nil
}

func (s *Store) UpdateClaimStatus(_ context.Context, userID string, itemID int64, status domain.ClaimStatus, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	claim, ok := s.claims[ownershipKey{userID, itemID}]
	if !ok {
		return domain.ErrItemNotFound
	}
	claim.Status = status
	claim.Note = note
	claim.UpdatedAt = s.now()
	return nil
}

func (s *Store) ReleaseClaim(_ context.Context, userID string, itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ownershipKey{userID, itemID}
	if claim, ok := s.claims[key]; ok {
		switch claim.Status {
		case domain.ClaimPending, domain.ClaimUnresolved:
			delete(s.claims, key)
		}
	}
	return nil
}

func (s *Store) FlagStaleClaims(_ context.Context, olderThan time.Duration) ([]domain.PurchaseClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-olderThan)
	var flagged []domain.PurchaseClaim
	for _, claim := range s.claims {
		if claim.Status == domain.ClaimPending && claim.CreatedAt.Before(cutoff) {
			claim.Status = domain.ClaimUnresolved
			claim.Note = domain.ClaimNoteStale
			claim.UpdatedAt = s.now()
			flagged = append(flagged, *claim)
		}
	}
	return flagged, nil
}
