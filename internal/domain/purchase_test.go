package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurchaseState_Terminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state    PurchaseState
		terminal bool
		outcome  PurchaseOutcome
	}{
		{StateValidating, false, OutcomeError},
		{StateDeductingPoints, false, OutcomeError},
		{StateGrantingOwnership, false, OutcomeError},
		{StateCommitted, true, OutcomeSuccess},
		{StateRejectedUnavailable, true, OutcomeItemUnavailable},
		{StateRejectedAlreadyOwned, true, OutcomeAlreadyOwned},
		{StateRejectedPointsFailure, true, OutcomePointsDeductionFailed},
		{StateFailedFulfillment, true, OutcomeFulfillmentFailed},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.terminal, tt.state.IsTerminal())
			assert.Equal(t, tt.outcome, OutcomeFor(tt.state))
		})
	}
}

func TestClaimStatus_NeedsReconciliation(t *testing.T) {
	t.Parallel()

	assert.False(t, ClaimPending.NeedsReconciliation())
	assert.False(t, ClaimCommitted.NeedsReconciliation())
	assert.True(t, ClaimFulfillmentFailed.NeedsReconciliation())
	assert.True(t, ClaimUnresolved.NeedsReconciliation())
}

func TestNoneEquipped(t *testing.T) {
	t.Parallel()

	none := NoneEquipped()
	assert.True(t, none.None)
	assert.Zero(t, none.ItemID)
	assert.Equal(t, EquippedNoneName, none.Name)
	assert.Equal(t, ImageDefault, none.Image)
}
