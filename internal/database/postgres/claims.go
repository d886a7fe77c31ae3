package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/yahna8/store-and-inventory-microservice/internal/database"
	"github.com/yahna8/store-and-inventory-microservice/internal/database/generated"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// ClaimRepository implements repository.PurchaseClaims using sqlc
type ClaimRepository struct {
	q *generated.Queries
}

// NewClaimRepository creates a new ClaimRepository
func NewClaimRepository(db database.DB) *ClaimRepository {
	return &ClaimRepository{q: generated.New(db)}
}

// CreateClaim inserts a pending claim or returns the existing one with domain.ErrClaimExists
func (r *ClaimRepository) CreateClaim(ctx context.Context, userID string, itemID, amount int64) (*domain.PurchaseClaim, error) {
	for attempt := 0; attempt < createClaimAttempts; attempt++ {
		row, err := r.q.CreatePurchaseClaim(ctx, generated.CreatePurchaseClaimParams{
			UserID: userID,
			ItemID: itemID,
			Amount: amount,
		})
		if err == nil {
			claim := toPurchaseClaim(row)
			return &claim, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			if isForeignKeyViolation(err) {
				return nil, domain.ErrItemNotFound
			}
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateClaim, err)
		}

		row, err = r.q.GetPurchaseClaim(ctx, generated.GetPurchaseClaimParams{UserID: userID, ItemID: itemID})
		if errors.Is(err, pgx.ErrNoRows) {
			// Released between the two statements; try to claim again.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetClaim, err)
		}
		existing := toPurchaseClaim(row)
		return &existing, domain.ErrClaimExists
	}
	return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateClaim, domain.ErrClaimExists)
}

// UpdateClaimStatus moves a claim to a new status
func (r *ClaimRepository) UpdateClaimStatus(ctx context.Context, userID string, itemID int64, status domain.ClaimStatus, note string) error {
	affected, err := r.q.UpdatePurchaseClaimStatus(ctx, generated.UpdatePurchaseClaimStatusParams{
		UserID: userID,
		ItemID: itemID,
		Status: string(status),
		Note:   note,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateClaim, err)
	}
	if affected == 0 {
		return errors.New(ErrMsgClaimNotFound)
	}
	return nil
}

// ReleaseClaim removes a pending or unresolved claim so the pair can be purchased again
func (r *ClaimRepository) ReleaseClaim(ctx context.Context, userID string, itemID int64) error {
	if err := r.q.ReleasePurchaseClaim(ctx, generated.ReleasePurchaseClaimParams{UserID: userID, ItemID: itemID}); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReleaseClaim, err)
	}
	return nil
}

// FlagStaleClaims marks pending claims older than olderThan, measured on the
// database clock, as unresolved
func (r *ClaimRepository) FlagStaleClaims(ctx context.Context, olderThan time.Duration) ([]domain.PurchaseClaim, error) {
	rows, err := r.q.FlagStalePurchaseClaims(ctx, generated.FlagStalePurchaseClaimsParams{
		Note:         domain.ClaimNoteStale,
		StaleAfterMs: olderThan.Milliseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFlagStaleClaims, err)
	}
	claims := make([]domain.PurchaseClaim, len(rows))
	for i, row := range rows {
		claims[i] = toPurchaseClaim(row)
	}
	return claims, nil
}
