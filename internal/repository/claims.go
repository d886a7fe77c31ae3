package repository

import (
	"context"
	"time"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// PurchaseClaims defines the interface for purchase idempotency records
type PurchaseClaims interface {
	// CreateClaim inserts a pending claim. When a claim for the pair already
	// exists it returns that claim together with domain.ErrClaimExists.
	CreateClaim(ctx context.Context, userID string, itemID, amount int64) (*domain.PurchaseClaim, error)
	UpdateClaimStatus(ctx context.Context, userID string, itemID int64, status domain.ClaimStatus, note string) error
	// ReleaseClaim deletes a pending or unresolved claim. Only the attempt that
	// created the claim calls it, once it knows no points were deducted.
	ReleaseClaim(ctx context.Context, userID string, itemID int64) error
	// FlagStaleClaims marks pending claims older than olderThan as unresolved
	// and returns the claims it changed. Age is measured on the store's clock.
	FlagStaleClaims(ctx context.Context, olderThan time.Duration) ([]domain.PurchaseClaim, error)
}
