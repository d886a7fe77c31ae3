package points

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yahna8/store-and-inventory-microservice/internal/apiclient"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
)

// DeductPath is the points ledger deduction endpoint
const DeductPath = "/points/deduct"

// Client deducts points from a user's balance
type Client interface {
	// Deduct returns nil, an error wrapping domain.ErrInsufficientPoints, or a classified *Error.
	Deduct(ctx context.Context, userID string, amount int64) error
}

type deductRequest struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
}

// HTTPClient talks to the points ledger over HTTP
type HTTPClient struct {
	api *apiclient.Client
}

// NewHTTPClient creates a points ledger client
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{api: apiclient.New(baseURL, apiKey, timeout)}
}

// Deduct performs a single deduction attempt; retries are the caller's policy
func (c *HTTPClient) Deduct(ctx context.Context, userID string, amount int64) error {
	log := logger.FromContext(ctx)

	resp, err := c.api.Do(ctx, http.MethodPost, DeductPath, deductRequest{UserID: userID, Amount: amount})
	if err != nil {
		log.Warn("Points ledger unreachable", "user_id", userID, "error", err)
		return &Error{Kind: KindTransient, Err: err}
	}

	return classify(resp)
}

func classify(resp *apiclient.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusPaymentRequired:
		return &Error{Kind: KindPermanent, StatusCode: code, Err: domain.ErrInsufficientPoints}
	case code == http.StatusTooManyRequests, code >= 500:
		return &Error{Kind: KindTransient, StatusCode: code, Err: errors.New(resp.Message())}
	}

	msg := resp.Message()
	if code == http.StatusBadRequest && strings.Contains(strings.ToLower(msg), "insufficient") {
		return &Error{Kind: KindPermanent, StatusCode: code, Err: fmt.Errorf("%w: %s", domain.ErrInsufficientPoints, msg)}
	}
	return &Error{Kind: KindPermanent, StatusCode: code, Err: errors.New(msg)}
}
