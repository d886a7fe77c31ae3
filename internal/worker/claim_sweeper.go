package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
	"github.com/yahna8/store-and-inventory-microservice/internal/metrics"
	"github.com/yahna8/store-and-inventory-microservice/internal/repository"
)

// ClaimSweeper periodically flags purchase claims stuck in pending.
// A claim stays pending only when the process died between claiming and
// finishing a purchase, so whether points were taken is unknown.
type ClaimSweeper struct {
	BaseWorker

	claims     repository.PurchaseClaims
	interval   time.Duration
	staleAfter time.Duration
}

// NewClaimSweeper creates a sweeper that runs every interval and flags
// pending claims older than staleAfter
func NewClaimSweeper(claims repository.PurchaseClaims, interval, staleAfter time.Duration) *ClaimSweeper {
	w := &ClaimSweeper{
		claims:     claims,
		interval:   interval,
		staleAfter: staleAfter,
	}
	w.init()
	return w
}

// Start launches the sweep loop
func (w *ClaimSweeper) Start() {
	logger.FromContext(context.Background()).Info(LogMsgClaimSweeperStarted,
		"interval", w.interval, "stale_after", w.staleAfter)

	w.wg.Add(1)
	go w.loop()
}

func (w *ClaimSweeper) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), w.interval)
			if _, err := w.Sweep(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgClaimSweepFailed, "error", err)
			}
			cancel()
		}
	}
}

// Sweep flags stale claims once and returns how many were flagged
func (w *ClaimSweeper) Sweep(ctx context.Context) (int, error) {
	flagged, err := w.claims.FlagStaleClaims(ctx, w.staleAfter)
	if err != nil {
		return 0, fmt.Errorf("failed to flag stale claims: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, claim := range flagged {
		log.Warn(LogMsgStaleClaimFlagged,
			logger.AttrKeyUserID, claim.UserID,
			logger.AttrKeyItemID, claim.ItemID,
			"amount", claim.Amount,
			"created_at", claim.CreatedAt)
		metrics.ReconciliationGaps.WithLabelValues(metrics.ReasonStaleClaim).Inc()
	}
	metrics.StaleClaimsFlagged.Add(float64(len(flagged)))
	return len(flagged), nil
}

// Shutdown stops the loop and waits for an in-flight sweep
func (w *ClaimSweeper) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, ClaimSweeperName)
}
