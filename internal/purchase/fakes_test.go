package purchase

import (
	"context"
	"net/http"
	"sync"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/points"
)

// fakeLedger is an in-memory points ledger. Scripted failures are returned
// before the balance is consulted.
type fakeLedger struct {
	mu         sync.Mutex
	balances   map[string]int64
	failures   []error
	calls      int
	deductions int
	onDeduct   func(ctx context.Context)
}

func newFakeLedger(balances map[string]int64) *fakeLedger {
	return &fakeLedger{balances: balances}
}

func (l *fakeLedger) Deduct(ctx context.Context, userID string, amount int64) error {
	if l.onDeduct != nil {
		l.onDeduct(ctx)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++

	if len(l.failures) > 0 {
		err := l.failures[0]
		l.failures = l.failures[1:]
		return err
	}
	if l.balances[userID] < amount {
		return &points.Error{Kind: points.KindPermanent, StatusCode: http.StatusPaymentRequired, Err: domain.ErrInsufficientPoints}
	}
	l.balances[userID] -= amount
	l.deductions++
	return nil
}

func (l *fakeLedger) balance(userID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[userID]
}

func (l *fakeLedger) stats() (calls, deductions int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls, l.deductions
}

func transientFailure() error {
	return &points.Error{Kind: points.KindTransient, StatusCode: http.StatusServiceUnavailable, Err: context.DeadlineExceeded}
}

// granterFunc adapts a function to inventory.Granter
type granterFunc func(ctx context.Context, userID string, itemID int64) error

func (f granterFunc) Grant(ctx context.Context, userID string, itemID int64) error {
	return f(ctx, userID, itemID)
}
