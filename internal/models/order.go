package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// CustomerDetails is the delivery form submitted at checkout. Landmark is optional.
type CustomerDetails struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Landmark     string `json:"landmark,omitempty"`
}

// CreateOrderRequest is the single order-creation call sent to the shop API.
type CreateOrderRequest struct {
	CustomerDetails
	Items           []LineItem `json:"items"`
	Subtotal        Amount     `json:"subtotal"`
	StitchingCost   Amount     `json:"stitching_cost"`
	DeliveryCharges Amount     `json:"delivery_charges"`
	Total           Amount     `json:"total"`
}

// Order is owned by the shop API once submitted. Items are kept opaque.
type Order struct {
	ID              int64            `json:"id"`
	CustomerName    string           `json:"customer_name"`
	Phone           string           `json:"phone"`
	Address         string           `json:"address"`
	PostalCode      string           `json:"postal_code"`
	City            string           `json:"city"`
	State           string           `json:"state"`
	Landmark        *string          `json:"landmark"`
	Items           []map[string]any `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	DeliveryCharges float64          `json:"delivery_charges"`
	Total           float64          `json:"total"`
	Status          OrderStatus      `json:"status"`
	CreatedAt       Timestamp        `json:"created_at"`
}

type CheckoutRequest struct {
	Customer CustomerDetails `json:"customer" validate:"required"`
}

type CheckoutResult struct {
	Order         *Order       `json:"order"`
	Summary       PriceSummary `json:"summary"`
	Items         []LineItem   `json:"items"`
	RedirectAfter int          `json:"redirect_after_seconds"`
}

// Receipt is the storefront's own record of a successful checkout.
type Receipt struct {
	ID              int64     `json:"id"`
	CartID          string    `json:"cart_id"`
	OrderID         int64     `json:"order_id"`
	ItemCount       int       `json:"item_count"`
	Subtotal        Amount    `json:"subtotal"`
	StitchingCost   Amount    `json:"stitching_cost"`
	DeliveryCharges Amount    `json:"delivery_charges"`
	Total           Amount    `json:"total"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending completed cancelled"`
}
