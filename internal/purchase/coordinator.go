// Package purchase runs the buy-item workflow across the catalog, the points
// ledger and the inventory ledger without a distributed transaction.
//
// A pending claim keyed by (user, item) is written before points are taken.
// The claim's primary key serialises concurrent attempts for the same pair,
// and its final status records what happened when a later step fails.
package purchase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/inventory"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
	"github.com/yahna8/store-and-inventory-microservice/internal/metrics"
	"github.com/yahna8/store-and-inventory-microservice/internal/points"
	"github.com/yahna8/store-and-inventory-microservice/internal/repository"
)

// Catalog is the part of the catalog store the workflow reads and updates
type Catalog interface {
	Get(ctx context.Context, itemID int64) (*domain.CatalogItem, error)
	MarkOwned(ctx context.Context, itemID int64) error
	GlobalOwnership() bool
}

// OwnershipChecker answers whether a user already owns an item
type OwnershipChecker interface {
	IsOwned(ctx context.Context, userID string, itemID int64) (bool, error)
}

// Service defines the purchase operation
type Service interface {
	// Purchase returns the final result. The error is nil only on success and
	// otherwise wraps the domain sentinel for the failure exit.
	Purchase(ctx context.Context, userID string, itemID int64) (domain.PurchaseResult, error)
}

// Config holds the retry and timeout policy
type Config struct {
	MaxAttempts int
	RetryBase   time.Duration
	Timeout     time.Duration
}

// Coordinator implements Service
type Coordinator struct {
	catalog Catalog
	owners  OwnershipChecker
	granter inventory.Granter
	claims  repository.PurchaseClaims
	points  points.Client
	cfg     Config
}

// NewCoordinator creates a purchase coordinator. Zero config values fall back to defaults.
func NewCoordinator(catalog Catalog, owners OwnershipChecker, granter inventory.Granter,
	claims repository.PurchaseClaims, pts points.Client, cfg Config) *Coordinator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = domain.DefaultPointsMaxAttempts
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = domain.DefaultPointsRetryBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultPurchaseTimeout
	}
	return &Coordinator{
		catalog: catalog,
		owners:  owners,
		granter: granter,
		claims:  claims,
		points:  pts,
		cfg:     cfg,
	}
}

// Purchase buys one item for one user
func (c *Coordinator) Purchase(ctx context.Context, userID string, itemID int64) (domain.PurchaseResult, error) {
	start := time.Now()
	log := logger.FromContext(ctx).With(logger.AttrKeyUserID, userID, logger.AttrKeyItemID, itemID)
	result := domain.PurchaseResult{
		UserID: userID,
		ItemID: itemID,
		State:  domain.StateValidating,
	}

	if strings.TrimSpace(userID) == "" || itemID <= 0 {
		result.Outcome = domain.OutcomeNotAccepted
		return c.finish(log, &result, start, fmt.Errorf("%w: user id and positive item id are required", domain.ErrInvalidInput))
	}

	// Only acceptance honours client cancellation. Past this point the
	// workflow runs to a terminal state bounded by the purchase timeout.
	if err := ctx.Err(); err != nil {
		result.Outcome = domain.OutcomeNotAccepted
		log.Info(LogMsgPurchaseNotAccepted, "error", err)
		return c.finish(log, &result, start, fmt.Errorf("%w: %w", domain.ErrPurchaseNotAccepted, err))
	}

	workCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
	defer cancel()

	log.Debug(LogMsgPurchaseStarted)
	err := c.run(workCtx, log, &result)
	return c.finish(log, &result, start, err)
}

func (c *Coordinator) run(ctx context.Context, log *slog.Logger, result *domain.PurchaseResult) error {
	userID, itemID := result.UserID, result.ItemID

	// 1. Validate. Always re-read, never cached.
	item, err := c.catalog.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			result.State = domain.StateRejectedUnavailable
			return domain.ErrItemUnavailable
		}
		return fmt.Errorf(ErrMsgLoadItemFailed, err)
	}
	result.Item = item
	if !item.Available || (c.catalog.GlobalOwnership() && item.Owned) {
		result.State = domain.StateRejectedUnavailable
		return domain.ErrItemUnavailable
	}

	owned, err := c.owners.IsOwned(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf(ErrMsgCheckOwnershipFailed, err)
	}
	if owned {
		result.State = domain.StateRejectedAlreadyOwned
		return domain.ErrAlreadyOwned
	}

	// 2. Claim the (user, item) key.
	claim, err := c.claims.CreateClaim(ctx, userID, itemID, item.Price)
	switch {
	case errors.Is(err, domain.ErrClaimExists):
		if claim != nil && claim.Status.NeedsReconciliation() {
			log.Warn(LogMsgClaimPending, "claim_status", claim.Status, "claim_note", claim.Note)
			result.State = domain.StateFailedFulfillment
			result.PointsDeducted = claim.Status == domain.ClaimFulfillmentFailed
			result.Note = claim.Note
			return fmt.Errorf("%w: %w", domain.ErrFulfillment, domain.ErrPendingReconciliation)
		}
		result.State = domain.StateRejectedAlreadyOwned
		return domain.ErrAlreadyOwned
	case errors.Is(err, domain.ErrItemNotFound):
		result.State = domain.StateRejectedUnavailable
		return domain.ErrItemUnavailable
	case err != nil:
		return fmt.Errorf(ErrMsgCreateClaimFailed, err)
	}

	// 3. Deduct.
	result.State = domain.StateDeductingPoints
	if item.Price > 0 {
		if err := c.deduct(ctx, log, userID, item.Price); err != nil {
			c.releaseClaim(ctx, log, userID, itemID)
			result.State = domain.StateRejectedPointsFailure
			return fmt.Errorf("%w: %w", domain.ErrPointsDeduction, err)
		}
		result.PointsDeducted = true
	}

	// 4. Grant.
	result.State = domain.StateGrantingOwnership
	note := ""
	if err := c.granter.Grant(ctx, userID, itemID); err != nil {
		if !errors.Is(err, domain.ErrAlreadyOwned) {
			log.Error(LogMsgFulfillmentFailed, "price", item.Price, "error", err)
			metrics.ReconciliationGaps.WithLabelValues(metrics.ReasonFulfillmentFailed).Inc()
			c.updateClaim(ctx, log, userID, itemID, domain.ClaimFulfillmentFailed, err.Error())
			result.State = domain.StateFailedFulfillment
			return fmt.Errorf("%w: %w", domain.ErrFulfillment, err)
		}
		note = domain.ClaimNoteGrantedElsewhere
		log.Warn(LogMsgGrantedElsewhere, "price", item.Price)
		metrics.ReconciliationGaps.WithLabelValues(metrics.ReasonGrantedElsewhere).Inc()
	}

	// 5. Commit. Ownership exists now, so bookkeeping failures do not undo the sale.
	if err := c.claims.UpdateClaimStatus(ctx, userID, itemID, domain.ClaimCommitted, note); err != nil {
		log.Error(LogMsgClaimUpdateFailed, "status", domain.ClaimCommitted, "error", err)
		metrics.ReconciliationGaps.WithLabelValues(metrics.ReasonClaimCommit).Inc()
	}
	if err := c.catalog.MarkOwned(ctx, itemID); err != nil {
		log.Error(LogMsgGlobalMarkFailed, "error", err)
		metrics.ReconciliationGaps.WithLabelValues(metrics.ReasonGlobalMark).Inc()
	}

	result.State = domain.StateCommitted
	result.Note = note
	return nil
}

// deduct calls the points ledger, retrying transient faults with exponential backoff
func (c *Coordinator) deduct(ctx context.Context, log *slog.Logger, userID string, amount int64) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.RetryBase
	b.MaxElapsedTime = c.cfg.Timeout
	b.Reset()
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.cfg.MaxAttempts-1)), ctx)

	attempt := 0
	operation := func() error {
		attempt++
		err := c.points.Deduct(ctx, userID, amount)
		switch {
		case err == nil:
			metrics.PointsDeductionAttempts.WithLabelValues(metrics.ResultSuccess).Inc()
			return nil
		case points.IsTransient(err):
			metrics.PointsDeductionAttempts.WithLabelValues(metrics.ResultTransient).Inc()
			return err
		default:
			metrics.PointsDeductionAttempts.WithLabelValues(metrics.ResultPermanent).Inc()
			return backoff.Permanent(err)
		}
	}
	notify := func(err error, next time.Duration) {
		log.Warn(LogMsgDeductionRetry, "attempt", attempt, "max_attempts", c.cfg.MaxAttempts, "backoff", next, "error", err)
	}

	return backoff.RetryNotify(operation, policy, notify)
}

func (c *Coordinator) releaseClaim(ctx context.Context, log *slog.Logger, userID string, itemID int64) {
	if err := c.claims.ReleaseClaim(ctx, userID, itemID); err != nil {
		log.Error(LogMsgClaimReleaseFailed, "error", err)
		metrics.ReconciliationGaps.WithLabelValues(metrics.ReasonClaimRelease).Inc()
	}
}

func (c *Coordinator) updateClaim(ctx context.Context, log *slog.Logger, userID string, itemID int64, status domain.ClaimStatus, note string) {
	if err := c.claims.UpdateClaimStatus(ctx, userID, itemID, status, note); err != nil {
		log.Error(LogMsgClaimUpdateFailed, "status", status, "error", err)
	}
}

func (c *Coordinator) finish(log *slog.Logger, result *domain.PurchaseResult, start time.Time, err error) (domain.PurchaseResult, error) {
	if result.Outcome == "" {
		result.Outcome = domain.OutcomeFor(result.State)
	}
	outcome := string(result.Outcome)
	metrics.PurchasesTotal.WithLabelValues(outcome).Inc()
	metrics.PurchaseDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		log.Info(LogMsgPurchaseCommitted, "price", priceOf(result.Item), "points_deducted", result.PointsDeducted, "note", result.Note)
	case result.State.IsTerminal() && result.State != domain.StateFailedFulfillment:
		log.Info(LogMsgPurchaseRejected, "state", result.State, "reason", err)
	case !result.State.IsTerminal() && result.Outcome == domain.OutcomeError:
		log.Error(LogMsgPurchaseAborted, "state", result.State, "error", err)
	}
	return *result, err
}

func priceOf(item *domain.CatalogItem) int64 {
	if item == nil {
		return 0
	}
	return item.Price
}
