package handler

import (
	"errors"
	"net/http"

	"github.com/yahna8/store-and-inventory-microservice/internal/catalog"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
	"github.com/yahna8/store-and-inventory-microservice/internal/purchase"
)

// PurchaseRequest is the body of POST /store/purchase
type PurchaseRequest struct {
	ItemID int64 `json:"item_id" validate:"required,gt=0"`
}

// PurchaseErrorResponse describes a failed purchase
type PurchaseErrorResponse struct {
	Error          string `json:"error"`
	Outcome        string `json:"outcome"`
	PointsDeducted bool   `json:"points_deducted"`
}

// HandleListStore lists items the caller can still buy
// @Summary List store items
// @Description Available items not yet owned by the caller, optionally filtered by category
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param category query string false "Exact category name"
// @Success 200 {array} domain.CatalogItem
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /store [get]
func HandleListStore(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		items, err := svc.ListAvailable(r.Context(), r.URL.Query().Get("category"), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list store", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListStoreFailed)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandlePurchase buys one item for the caller
// @Summary Purchase an item
// @Description Deducts the item price from the caller's points and grants ownership
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PurchaseRequest true "Item to buy"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} PurchaseErrorResponse "Already owned or points deduction failed"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} PurchaseErrorResponse "Item not found or unavailable"
// @Failure 500 {object} PurchaseErrorResponse "Fulfillment failed or an earlier attempt awaits reconciliation"
// @Failure 503 {object} PurchaseErrorResponse "Cancelled before acceptance"
// @Router /store/purchase [post]
func HandlePurchase(svc purchase.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "purchase"); err != nil {
			return
		}

		result, err := svc.Purchase(r.Context(), userID, req.ItemID)
		if err != nil {
			if errors.Is(err, domain.ErrFulfillment) {
				log.Error("Purchase fulfillment failed", logger.AttrKeyUserID, userID, logger.AttrKeyItemID, req.ItemID,
					"points_deducted", result.PointsDeducted, "error", err)
			}
			status, msg := mapServiceError(err)
			if msg == ErrMsgFulfillment && result.PointsDeducted {
				msg = ErrMsgFulfillmentCharged
			}
			respondJSON(w, status, PurchaseErrorResponse{
				Error:          msg,
				Outcome:        string(result.Outcome),
				PointsDeducted: result.PointsDeducted,
			})
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPurchaseSuccessful, ItemID: req.ItemID})
	}
}
