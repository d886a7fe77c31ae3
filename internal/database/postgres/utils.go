package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yahna8/store-and-inventory-microservice/internal/database/generated"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation
}

func toCatalogItem(row generated.StoreItem) domain.CatalogItem {
	return domain.CatalogItem{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Image:       row.Image,
		Price:       row.Price,
		Category:    row.Category,
		Available:   row.Available,
		Owned:       row.Owned,
	}
}

// toCatalogItems never returns nil so empty listings encode as [].
func toCatalogItems(rows []generated.StoreItem) []domain.CatalogItem {
	items := make([]domain.CatalogItem, len(rows))
	for i, row := range rows {
		items[i] = toCatalogItem(row)
	}
	return items
}

func toPurchaseClaim(row generated.PurchaseClaim) domain.PurchaseClaim {
	return domain.PurchaseClaim{
		UserID:    row.UserID,
		ItemID:    row.ItemID,
		Amount:    row.Amount,
		Status:    domain.ClaimStatus(row.Status),
		Note:      row.Note,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
