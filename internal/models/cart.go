package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Amount is a whole-unit currency value (rupees, no minor units).
type Amount int64

type LineType string

const (
	LineTypeReadyMade LineType = "ready-made"
	LineTypeFabric    LineType = "fabric"
	LineTypeCustom    LineType = "custom"
)

func (t LineType) Valid() bool {
	switch t {
	case LineTypeReadyMade, LineTypeFabric, LineTypeCustom:
		return true
	}

	return false
}

// MaxLineQuantity caps the units on one cart line.
const MaxLineQuantity = 99

var (
	ErrQuantityRange   = fmt.Errorf("quantity must be between 1 and %d", MaxLineQuantity)
	ErrUnknownLineType = errors.New("unknown line item type")
	ErrMissingDetails  = errors.New("line item details are required")
	ErrDetailsMismatch = errors.New("line item details do not match its type")
)

// LineItem is one cart entry. Details always carries the shape selected by Type.
type LineItem struct {
	ID       string      `json:"id"`
	Type     LineType    `json:"type"`
	Name     string      `json:"name"`
	Price    Amount      `json:"price"`
	Quantity int         `json:"quantity"`
	Image    string      `json:"image"`
	Details  LineDetails `json:"details"`
}

// LineTotal is the unit price times the quantity.
func (li LineItem) LineTotal() Amount {
	return li.Price * Amount(li.Quantity)
}

// Clone returns a deep copy, so snapshots never share measurement pointers with the cart.
func (li LineItem) Clone() LineItem {
	out := li
	if li.Details != nil {
		out.Details = li.Details.clone()
	}

	return out
}

// Check enforces the line item invariants.
func (li LineItem) Check() error {
	if li.ID == "" {
		return errors.New("line item id is required")
	}

	if !li.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLineType, li.Type)
	}

	if li.Quantity < 1 || li.Quantity > MaxLineQuantity {
		return fmt.Errorf("line item %s: %w", li.ID, ErrQuantityRange)
	}

	if li.Price < 0 {
		return fmt.Errorf("line item %s: price must not be negative", li.ID)
	}

	if li.Details == nil {
		return ErrMissingDetails
	}

	if li.Details.LineType() != li.Type {
		return fmt.Errorf("%w: %s carries %s details", ErrDetailsMismatch, li.Type, li.Details.LineType())
	}

	return li.Details.check()
}

func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string          `json:"id"`
		Type     LineType        `json:"type"`
		Name     string          `json:"name"`
		Price    Amount          `json:"price"`
		Quantity int             `json:"quantity"`
		Image    string          `json:"image"`
		Details  json.RawMessage `json:"details"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	details, err := decodeDetails(raw.Type, raw.Details)
	if err != nil {
		return err
	}

	*li = LineItem{
		ID:       raw.ID,
		Type:     raw.Type,
		Name:     raw.Name,
		Price:    raw.Price,
		Quantity: raw.Quantity,
		Image:    raw.Image,
		Details:  details,
	}

	return nil
}

// CartDocument is the persisted state of one cart session.
type CartDocument struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PriceSummary is the checkout-facing monetary breakdown of a cart.
type PriceSummary struct {
	Subtotal              Amount `json:"subtotal"`
	StitchingCost         Amount `json:"stitching_cost"`
	DeliveryCharges       Amount `json:"delivery_charges"`
	Total                 Amount `json:"total"`
	FreeDeliveryThreshold Amount `json:"free_delivery_threshold"`
	FreeDeliveryEligible  bool   `json:"free_delivery_eligible"`
}

type CartView struct {
	ID        string       `json:"id"`
	Items     []LineItem   `json:"items"`
	ItemCount int          `json:"item_count"`
	Summary   PriceSummary `json:"summary"`
}

type AddReadyMadeRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Size      string `json:"size" validate:"required,oneof=XS S M L XL"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=99"`
}

type AddFabricRequest struct {
	FabricID int64   `json:"fabric_id" validate:"required,gt=0"`
	Length   float64 `json:"length" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,min=1,max=99"`
}

type UpdateQuantityRequest struct {
	// Below 1 removes the line.
	Quantity *int `json:"quantity" validate:"required,max=99"`
}
