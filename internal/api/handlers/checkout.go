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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: utils.NewValidator()}
}

// Checkout godoc
//
//	@Summary		Place the order
//	@Description	Submits the session's cart as one order. The cart is cleared only when the shop API accepts the order.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Delivery details"
//	@Success		201			{object}	models.CheckoutResult	"Order confirmation"
//	@Failure		400			{object}	response.ErrorResponse	"Empty cart or invalid delivery details"
//	@Failure		409			{object}	response.ErrorResponse	"A checkout for this cart is already in progress"
//	@Failure		502			{object}	response.ErrorResponse	"Shop API rejected or failed the order"
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := cartID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.checkoutService.Submit(r.Context(), id, req.Customer)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", slog.Int64("orderId", result.Order.ID))
		response.Success(w, http.StatusCreated, result)
	}
}
