package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

// Validate checks secrets, modes and durations. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, fmt.Errorf("API_KEY environment variable %s for security", ErrMsgMissingRequired))
	}
	if c.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("JWT_SECRET environment variable %s", ErrMsgMissingRequired))
	}

	switch c.CatalogOwnershipMode {
	case domain.OwnershipPerUser, domain.OwnershipGlobal:
	default:
		errs = append(errs, errors.New(ErrMsgInvalidOwnership))
	}

	switch c.InventoryMode {
	case domain.InventoryModeLocal:
	case domain.InventoryModeRemote:
		if c.InventoryServiceURL == "" {
			errs = append(errs, errors.New(ErrMsgRemoteNeedsURL))
		}
	default:
		errs = append(errs, errors.New(ErrMsgInvalidInventory))
	}

	if c.PointsMaxAttempts < 1 {
		errs = append(errs, errors.New(ErrMsgInvalidAttempts))
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"PURCHASE_TIMEOUT", c.PurchaseTimeout},
		{"POINTS_TIMEOUT", c.PointsTimeout},
		{"CLAIM_SWEEP_INTERVAL", c.ClaimSweepInterval},
		{"CLAIM_STALE_AFTER", c.ClaimStaleAfter},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%s %s", d.name, ErrMsgInvalidPositiveTime))
		}
	}

	// A purchase still inside its timeout must never be flagged as abandoned.
	if c.PurchaseTimeout > 0 && c.ClaimStaleAfter <= c.PurchaseTimeout {
		errs = append(errs, errors.New(ErrMsgStaleBeforeTimeout))
	}

	return errors.Join(errs...)
}
