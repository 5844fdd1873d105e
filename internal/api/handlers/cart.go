package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/shopdarven/storefront/internal/api/middleware"
	"github.com/shopdarven/storefront/internal/models"
	service "github.com/shopdarven/storefront/internal/services"
	"github.com/shopdarven/storefront/internal/utils"
	"github.com/shopdarven/storefront/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: utils.NewValidator()}
}

// GetCart godoc
//
//	@Summary		Get the current cart
//	@Description	Returns the session's cart with its price summary. A new session gets an empty cart.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView			"Current cart"
//	@Failure		500	{object}	response.ErrorResponse	"Cart storage unavailable"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := cartID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), id)
		if err != nil {
			logger.Error("Failed to load cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddReadyMade godoc
//
//	@Summary		Add a ready-made suit
//	@Description	Adds a ready-made product in the given size and color. The same product, size and color added again increases the quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddReadyMadeRequest	true	"Product, size, color and quantity"
//	@Success		200		{object}	models.CartView				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or color not offered"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Failure		502		{object}	response.ErrorResponse		"Shop API unavailable"
//	@Router			/cart/items/ready-made [post]
func (h *CartHandler) AddReadyMade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := cartID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.AddReadyMadeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid ready-made item input")
			return
		}

		cart, err := h.cartService.AddReadyMade(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to add ready-made item", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddFabric godoc
//
//	@Summary		Add fabric by length
//	@Description	Adds unstitched fabric cut to the requested length in meters. Lengths must be multiples of the meter step.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddFabricRequest	true	"Fabric, length and quantity"
//	@Success		200		{object}	models.CartView			"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Fabric not found"
//	@Failure		502		{object}	response.ErrorResponse	"Shop API unavailable"
//	@Router			/cart/items/fabric [post]
func (h *CartHandler) AddFabric() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := cartID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.AddFabricRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid fabric item input")
			return
		}

		cart, err := h.cartService.AddFabric(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to add fabric item", slog.Int64("fabricId", req.FabricID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddCustom godoc
//
//	@Summary		Add a made-to-measure suit
//	@Description	Validates the measurement form against the chosen custom fabric and adds a custom suit. Every custom line carries the stitching surcharge.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		service.AddCustomRequest	true	"Fabric, meters, quantity and measurements"
//	@Success		200		{object}	models.CartView				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error listing every failing measurement"
//	@Failure		404		{object}	response.ErrorResponse		"Custom fabric not found"
//	@Failure		502		{object}	response.ErrorResponse		"Shop API unavailable"
//	@Router			/cart/items/custom [post]
func (h *CartHandler) AddCustom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := cartID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req service.AddCustomRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid custom item input")
			return
		}

		cart, err := h.cartService.AddCustom(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to add custom item", slog.Int64("fabricId", req.FabricID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Change a line's quantity
//	@Description	Sets the quantity of one line. Zero or less removes the line; an unknown line id is ignored.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Line item ID"
//	@Param			body	body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200		{object}	models.CartView					"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Router			/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := cartID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		itemID := r.PathValue("id")

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity input", slog.String("itemId", itemID))
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), id, itemID, *req.Quantity)
		if err != nil {
			logger.Error("Failed to update quantity", slog.String("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove a line
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string			true	"Line item ID"
//	@Success		200	{object}	models.CartView	"Updated cart"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := cartID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		itemID := r.PathValue("id")

		cart, err := h.cartService.RemoveItem(r.Context(), id, itemID)
		if err != nil {
			logger.Error("Failed to remove item", slog.String("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView	"Empty cart"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := cartID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), id)
		if err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
