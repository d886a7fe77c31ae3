package handler

// Client-facing error messages. Internal error detail is logged, not returned.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnauthenticated       = "Authentication required"
	ErrMsgGenericServerError    = "Something went wrong"

	ErrMsgItemUnavailable    = "Item not found or unavailable"
	ErrMsgItemNotFound       = "Item not found"
	ErrMsgAlreadyOwned       = "You already own this item"
	ErrMsgNotOwned           = "You do not own this item"
	ErrMsgInsufficientPoints = "Insufficient points"
	ErrMsgPointsDeduction    = "Failed to deduct points"
	ErrMsgFulfillment        = "Purchase could not be completed and is pending reconciliation."
	ErrMsgFulfillmentCharged = "Purchase could not be completed. Your points were deducted and the purchase is pending reconciliation."
	ErrMsgNotAccepted        = "Purchase was cancelled before it was accepted"

	ErrMsgListStoreFailed    = "Failed to list store items"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgGetEquippedFailed  = "Failed to get equipped item"
)

// Success messages
const (
	MsgPurchaseSuccessful = "Purchase successful"
	MsgItemAdded          = "Item added to inventory"
	MsgItemEquipped       = "Item equipped"
)
