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

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: utils.NewValidator()}
}

// Submit godoc
//
//	@Summary		Send a contact message
//	@Description	Forwards the message to the shop inbox by email.
//	@Tags			Contact
//	@Accept			json
//	@Produce		json
//	@Param			message	body	models.ContactRequest	true	"Contact form"
//	@Success		202		{object}	map[string]string		"Message accepted"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		502		{object}	response.ErrorResponse	"Email delivery failed"
//	@Router			/contact [post]
func (h *ContactHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid contact form")
			return
		}

		if err := h.contactService.Submit(r.Context(), &req); err != nil {
			logger.Error("Failed to send contact message", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Contact message sent")
		response.Success(w, http.StatusAccepted, map[string]string{"status": "sent"})
	}
}
