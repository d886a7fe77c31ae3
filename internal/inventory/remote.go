package inventory

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/yahna8/store-and-inventory-microservice/internal/apiclient"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
)

type addRequest struct {
	ItemID int64  `json:"item_id"`
	UserID string `json:"user_id"`
}

// RemoteGranter grants ownership through a separately deployed inventory service
type RemoteGranter struct {
	api *apiclient.Client
}

// NewRemoteGranter creates a granter that calls POST /inventory/add with the service key
func NewRemoteGranter(baseURL, apiKey string, timeout time.Duration) *RemoteGranter {
	return &RemoteGranter{api: apiclient.New(baseURL, apiKey, timeout)}
}

func (g *RemoteGranter) Grant(ctx context.Context, userID string, itemID int64) error {
	resp, err := g.api.Do(ctx, http.MethodPost, AddPath, addRequest{ItemID: itemID, UserID: userID})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgRemoteGrantFailed, logger.AttrKeyUserID, userID, logger.AttrKeyItemID, itemID, "error", err)
		return fmt.Errorf("%w: %s: %w", domain.ErrFulfillment, ErrMsgRemoteGrantFailed, err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusConflict:
		return domain.ErrAlreadyOwned
	case http.StatusNotFound:
		return domain.ErrItemNotFound
	}

	logger.FromContext(ctx).Error(LogMsgRemoteGrantFailed,
		logger.AttrKeyUserID, userID, logger.AttrKeyItemID, itemID,
		"status", resp.StatusCode, "detail", resp.Message())
	return fmt.Errorf("%w: %s (status %d): %s", domain.ErrFulfillment, ErrMsgRemoteGrantFailed, resp.StatusCode, resp.Message())
}
