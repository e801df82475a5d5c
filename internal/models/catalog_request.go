package models

// The catalog request bodies model fields whose zero value must still reach
// the handler as pointers: an absent field is a 422 at binding time, while a
// present zero value flows through to its fault boundary.

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Product  *string `json:"product" binding:"required"`
	Quantity *int    `json:"quantity" binding:"required"`
	Note     *string `json:"note,omitempty"`
}

// CreatePaymentRequest represents the request body for processing a payment
type CreatePaymentRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Currency    *string  `json:"currency" binding:"required"`
	Description *string  `json:"description,omitempty"`
}

// UpdateConfigRequest represents the request body for merging config
// sections. Each section is an arbitrary JSON object; a nil section is
// skipped entirely.
type UpdateConfigRequest struct {
	Theme         map[string]any `json:"theme,omitempty"`
	Notifications map[string]any `json:"notifications,omitempty"`
	Profile       map[string]any `json:"profile,omitempty"`
}

// TransformRequest represents the request body for aggregating a sequence
// of arbitrary JSON scalars
type TransformRequest struct {
	Values    *[]any  `json:"values" binding:"required"`
	Operation *string `json:"operation" binding:"required"`
}
