package handler

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// createOrderRequest carries the order payload. Item-level validation
// (quantity ≥ 1, product existence) is the order service's job; the handler
// only rejects the empty-items case up front.
type createOrderRequest struct {
	Items []orderItemRequest `json:"items"`
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}
