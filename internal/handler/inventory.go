package handler

import (
	"errors"
	"net/http"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/equip"
	"github.com/yahna8/store-and-inventory-microservice/internal/inventory"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
)

// AddInventoryRequest is the body of the internal POST /inventory/add
type AddInventoryRequest struct {
	ItemID int64  `json:"item_id" validate:"required,gt=0"`
	UserID string `json:"user_id" validate:"required,max=128,userid"`
}

// EquipRequest is the body of POST /inventory/equip
type EquipRequest struct {
	ItemID int64 `json:"item_id" validate:"required,gt=0"`
}

// EquippedResponse is the caller's equipment slot. ItemID is null when empty.
type EquippedResponse struct {
	ItemID *int64 `json:"item_id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
}

// EquipResponse acknowledges an equip
type EquipResponse struct {
	Message string `json:"message"`
	ItemID  int64  `json:"item_id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
}

// HandleGetInventory lists the caller's owned items
// @Summary Get inventory
// @Description Items owned by the caller, in acquisition order. Empty list when none.
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.CatalogItem
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get inventory", logger.AttrKeyUserID, userID, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetInventoryFailed)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleAddInventory records ownership on behalf of another service
// @Summary Grant an item (internal)
// @Description Service-to-service grant used by a separately deployed store
// @Tags inventory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AddInventoryRequest true "Grant details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /inventory/add [post]
func HandleAddInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddInventoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "add inventory"); err != nil {
			return
		}

		if err := svc.Grant(r.Context(), req.UserID, req.ItemID); err != nil {
			if errors.Is(err, domain.ErrAlreadyOwned) {
				respondError(w, http.StatusConflict, ErrMsgAlreadyOwned)
				return
			}
			log.Warn("Failed to add inventory item", logger.AttrKeyUserID, req.UserID, logger.AttrKeyItemID, req.ItemID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemAdded, ItemID: req.ItemID})
	}
}

// HandleEquip equips an owned item, replacing the current one
// @Summary Equip an item
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EquipRequest true "Item to equip"
// @Success 200 {object} EquipResponse
// @Failure 400 {object} ErrorResponse "Item not owned"
// @Failure 401 {object} ErrorResponse
// @Router /inventory/equip [post]
func HandleEquip(svc equip.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "equip"); err != nil {
			return
		}

		item, err := svc.Equip(r.Context(), userID, req.ItemID)
		if err != nil {
			logger.FromContext(r.Context()).Info("Equip rejected", logger.AttrKeyUserID, userID, logger.AttrKeyItemID, req.ItemID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, EquipResponse{
			Message: MsgItemEquipped,
			ItemID:  item.ItemID,
			Name:    item.Name,
			Image:   item.Image,
		})
	}
}

// HandleGetEquipped returns the caller's equipped item
// @Summary Get equipped item
// @Description Returns item_id null and name "None" when nothing is equipped
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} EquippedResponse
// @Failure 401 {object} ErrorResponse
// @Router /inventory/equipped [get]
func HandleGetEquipped(svc equip.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		item, err := svc.GetEquipped(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get equipped item", logger.AttrKeyUserID, userID, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetEquippedFailed)
			return
		}

		respondJSON(w, http.StatusOK, toEquippedResponse(item))
	}
}

func toEquippedResponse(item domain.EquippedItem) EquippedResponse {
	resp := EquippedResponse{Name: item.Name, Image: item.Image}
	if !item.None {
		id := item.ItemID
		resp.ItemID = &id
	}
	return resp
}
