package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/shopdarven/storefront/internal/api/middleware"
	"github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/models"
	service "github.com/shopdarven/storefront/internal/services"
	"github.com/shopdarven/storefront/internal/utils"
	"github.com/shopdarven/storefront/internal/utils/response"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

var orderStatuses = []models.OrderStatus{models.OrderStatusPending, models.OrderStatusCompleted, models.OrderStatusCancelled}

type AdminHandler struct {
	adminService  service.AdminService
	validator     *validator.Validate
	secureCookies bool
}

func NewAdminHandler(adminService service.AdminService, secureCookies bool) *AdminHandler {
	return &AdminHandler{adminService: adminService, validator: utils.NewValidator(), secureCookies: secureCookies}
}

// fail writes err and drops the admin cookie when the shop API no longer accepts the token.
func (h *AdminHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger := middleware.LoggerFromContext(r.Context())

	if appErr, ok := errors.IsAppError(err); ok && appErr.StatusCode == http.StatusUnauthorized {
		logger.Warn("Admin session rejected", slog.Any("error", err))
		middleware.ClearAdminCookie(w, h.secureCookies)
		response.Error(w, err)
		return
	}

	logger.Error(msg, slog.Any("error", err))
	response.Error(w, err)
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Exchanges admin credentials for a token, also set as an HttpOnly cookie. Attempts are rate limited per username.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.AdminLoginRequest	true	"Admin credentials"
//	@Success		200			{object}	models.AdminLoginResponse	"Token issued"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		401			{object}	response.ErrorResponse		"Invalid username or password"
//	@Failure		429			{object}	response.ErrorResponse		"Too many login attempts"
//	@Router			/admin/login [post]
func (h *AdminHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AdminLoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid admin login input")
			return
		}

		logger = logger.With(slog.String("username", req.Username))

		resp, err := h.adminService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Admin login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		middleware.SetAdminCookie(w, resp.AccessToken, resp.ExpiresIn, h.secureCookies)

		logger.Info("Admin logged in")
		response.Success(w, http.StatusOK, resp)
	}
}

// Logout godoc
//
//	@Summary	Admin logout
//	@Tags		Admin
//	@Success	204	"Cookie cleared"
//	@Router		/admin/logout [post]
func (h *AdminHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware.ClearAdminCookie(w, h.secureCookies)
		response.NoContent(w)
	}
}

// Verify godoc
//
//	@Summary	Check the admin session
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	models.AdminIdentity	"Session is valid"
//	@Failure	401	{object}	response.ErrorResponse	"Session is invalid or expired"
//	@Security	BearerAuth
//	@Router		/admin/verify [get]
func (h *AdminHandler) Verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		identity, err := h.adminService.Verify(r.Context())
		if err != nil {
			h.fail(w, r, "Failed to verify admin session", err)
			return
		}

		response.Success(w, http.StatusOK, identity)
	}
}

// Revenue godoc
//
//	@Summary	Revenue dashboard figures
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	models.Revenue	"Revenue summary"
//	@Security	BearerAuth
//	@Router		/admin/revenue [get]
func (h *AdminHandler) Revenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		revenue, err := h.adminService.Revenue(r.Context())
		if err != nil {
			h.fail(w, r, "Failed to load revenue", err)
			return
		}

		response.Success(w, http.StatusOK, revenue)
	}
}

// ListOrders godoc
//
//	@Summary	List orders
//	@Tags		Admin
//	@Produce	json
//	@Param		status	query		string					false	"Order status"	Enums(pending, completed, cancelled)
//	@Success	200		{array}		models.Order			"Orders"
//	@Failure	400		{object}	response.ErrorResponse	"Unknown status"
//	@Security	BearerAuth
//	@Router		/admin/orders [get]
func (h *AdminHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		status := models.OrderStatus(r.URL.Query().Get("status"))
		if status != "" && !slices.Contains(orderStatuses, status) {
			response.Error(w, errors.AddValidationError("status", "must be one of pending, completed, cancelled"))
			return
		}

		orders, err := h.adminService.ListOrders(r.Context(), status)
		if err != nil {
			h.fail(w, r, "Failed to list orders", err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// GetOrder godoc
//
//	@Summary	Get an order
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		int						true	"Order ID"
//	@Success	200	{object}	models.Order			"Order"
//	@Failure	404	{object}	response.ErrorResponse	"Order not found"
//	@Security	BearerAuth
//	@Router		/admin/orders/{id} [get]
func (h *AdminHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.adminService.GetOrder(r.Context(), id)
		if err != nil {
			h.fail(w, r, "Failed to get order", err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// UpdateOrderStatus godoc
//
//	@Summary	Change an order's status
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Order ID"
//	@Param		body	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success	200		{object}	models.Order					"Updated order"
//	@Failure	400		{object}	response.ErrorResponse			"Validation error"
//	@Failure	404		{object}	response.ErrorResponse			"Order not found"
//	@Security	BearerAuth
//	@Router		/admin/orders/{id} [patch]
func (h *AdminHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order status input", slog.Int64("orderId", id))
			return
		}

		order, err := h.adminService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			h.fail(w, r, "Failed to update order status", err)
			return
		}

		logger.Info("Order status updated", slog.Int64("orderId", id), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

// DeleteOrder godoc
//
//	@Summary	Delete an order
//	@Tags		Admin
//	@Param		id	path	int	true	"Order ID"
//	@Success	204	"Deleted"
//	@Security	BearerAuth
//	@Router		/admin/orders/{id} [delete]
func (h *AdminHandler) DeleteOrder() http.HandlerFunc {
	return h.deleteByID("order", h.adminService.DeleteOrder)
}

// CreateReadyMade godoc
//
//	@Summary	Create a ready-made product
//	@Tags		Admin
//	@Accept		mpfd
//	@Produce	json
//	@Param		name			formData	string	true	"Name"
//	@Param		price			formData	number	true	"Price"
//	@Param		images			formData	file	false	"Product images"
//	@Success	201				{object}	models.ReadyMadeProduct	"Created product"
//	@Failure	400				{object}	response.ErrorResponse	"Invalid form"
//	@Security	BearerAuth
//	@Router		/admin/ready-made [post]
func (h *AdminHandler) CreateReadyMade() http.HandlerFunc {
	return writeProduct(h, "images", func(r *http.Request, form *models.ProductForm, files []shopapi.Upload) (*models.ReadyMadeProduct, error) {
		return h.adminService.CreateReadyMade(r.Context(), form, files)
	})
}

// UpdateReadyMade godoc
//
//	@Summary	Update a ready-made product
//	@Tags		Admin
//	@Accept		mpfd
//	@Produce	json
//	@Param		id		path		int		true	"Product ID"
//	@Param		images	formData	file	false	"Replacement images"
//	@Success	200		{object}	models.ReadyMadeProduct	"Updated product"
//	@Security	BearerAuth
//	@Router		/admin/ready-made/{id} [put]
func (h *AdminHandler) UpdateReadyMade() http.HandlerFunc {
	return writeProduct(h, "images", func(r *http.Request, form *models.ProductForm, files []shopapi.Upload) (*models.ReadyMadeProduct, error) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			return nil, err
		}

		return h.adminService.UpdateReadyMade(r.Context(), id, form, files)
	})
}

// DeleteReadyMade godoc
//
//	@Summary	Delete a ready-made product
//	@Tags		Admin
//	@Param		id	path	int	true	"Product ID"
//	@Success	204	"Deleted"
//	@Security	BearerAuth
//	@Router		/admin/ready-made/{id} [delete]
func (h *AdminHandler) DeleteReadyMade() http.HandlerFunc {
	return h.deleteByID("ready-made product", h.adminService.DeleteReadyMade)
}

// CreateFabric godoc
//
//	@Summary	Create a fabric
//	@Tags		Admin
//	@Accept		mpfd
//	@Produce	json
//	@Param		name			formData	string	true	"Name"
//	@Param		price_per_meter	formData	number	true	"Price per meter"
//	@Param		images			formData	file	false	"Fabric images"
//	@Success	201				{object}	models.Fabric	"Created fabric"
//	@Security	BearerAuth
//	@Router		/admin/fabrics [post]
func (h *AdminHandler) CreateFabric() http.HandlerFunc {
	return writeProduct(h, "images", func(r *http.Request, form *models.ProductForm, files []shopapi.Upload) (*models.Fabric, error) {
		return h.adminService.CreateFabric(r.Context(), form, files)
	})
}

// UpdateFabric godoc
//
//	@Summary	Update a fabric
//	@Tags		Admin
//	@Accept		mpfd
//	@Produce	json
//	@Param		id	path		int				true	"Fabric ID"
//	@Success	200	{object}	models.Fabric	"Updated fabric"
//	@Security	BearerAuth
//	@Router		/admin/fabrics/{id} [put]
func (h *AdminHandler) UpdateFabric() http.HandlerFunc {
	return writeProduct(h, "images", func(r *http.Request, form *models.ProductForm, files []shopapi.Upload) (*models.Fabric, error) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			return nil, err
		}

		return h.adminService.UpdateFabric(r.Context(), id, form, files)
	})
}

// DeleteFabric godoc
//
//	@Summary	Delete a fabric
//	@Tags		Admin
//	@Param		id	path	int	true	"Fabric ID"
//	@Success	204	"Deleted"
//	@Security	BearerAuth
//	@Router		/admin/fabrics/{id} [delete]
func (h *AdminHandler) DeleteFabric() http.HandlerFunc {
	return h.deleteByID("fabric", h.adminService.DeleteFabric)
}

// CreateCustomFabric godoc
//
//	@Summary	Create a made-to-measure fabric
//	@Tags		Admin
//	@Accept		mpfd
//	@Produce	json
//	@Param		name	formData	string	true	"Name"
//	@Param		price	formData	number	true	"Price of a 4 meter suit"
//	@Param		image	formData	file	true	"Fabric image"
//	@Success	201		{object}	models.CustomFabric		"Created custom fabric"
//	@Failure	400		{object}	response.ErrorResponse	"Image is required"
//	@Security	BearerAuth
//	@Router		/admin/custom-fabrics [post]
func (h *AdminHandler) CreateCustomFabric() http.HandlerFunc {
	return writeProduct(h, "image", func(r *http.Request, form *models.ProductForm, files []shopapi.Upload) (*models.CustomFabric, error) {
		if len(files) == 0 {
			return nil, errors.AddValidationError("image", "an image is required")
		}

		return h.adminService.CreateCustomFabric(r.Context(), form, files[0])
	})
}

// UpdateCustomFabric godoc
//
//	@Summary	Update a made-to-measure fabric
//	@Tags		Admin
//	@Accept		mpfd
//	@Produce	json
//	@Param		id		path		int		true	"Custom fabric ID"
//	@Param		image	formData	file	false	"Replacement image"
//	@Success	200		{object}	models.CustomFabric	"Updated custom fabric"
//	@Security	BearerAuth
//	@Router		/admin/custom-fabrics/{id} [put]
func (h *AdminHandler) UpdateCustomFabric() http.HandlerFunc {
	return writeProduct(h, "image", func(r *http.Request, form *models.ProductForm, files []shopapi.Upload) (*models.CustomFabric, error) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			return nil, err
		}

		var image *shopapi.Upload
		if len(files) > 0 {
			image = &files[0]
		}

		return h.adminService.UpdateCustomFabric(r.Context(), id, form, image)
	})
}

// DeleteCustomFabric godoc
//
//	@Summary	Delete a made-to-measure fabric
//	@Tags		Admin
//	@Param		id	path	int	true	"Custom fabric ID"
//	@Success	204	"Deleted"
//	@Security	BearerAuth
//	@Router		/admin/custom-fabrics/{id} [delete]
func (h *AdminHandler) DeleteCustomFabric() http.HandlerFunc {
	return h.deleteByID("custom fabric", h.adminService.DeleteCustomFabric)
}

// UpdateLandingImage godoc
//
//	@Summary	Replace a landing section image
//	@Tags		Admin
//	@Accept		mpfd
//	@Produce	json
//	@Param		category	path		string	true	"Landing section"
//	@Param		image		formData	file	true	"Image"
//	@Success	200			{object}	models.LandingImage	"Updated image"
//	@Security	BearerAuth
//	@Router		/admin/landing-images/{category} [post]
func (h *AdminHandler) UpdateLandingImage() http.HandlerFunc {
	return h.writeLanding(func(r *http.Request, image shopapi.Upload) (*models.LandingImage, error) {
		return h.adminService.UpdateLandingImage(r.Context(), r.PathValue("category"), image)
	})
}

// UpdateLandingPortrait godoc
//
//	@Summary	Replace the portrait variant of a landing image
//	@Tags		Admin
//	@Accept		mpfd
//	@Produce	json
//	@Param		category	path		string	true	"Landing section"
//	@Param		id			path		int		true	"Landing image ID"
//	@Param		image		formData	file	true	"Portrait image"
//	@Success	200			{object}	models.LandingImage	"Updated image"
//	@Security	BearerAuth
//	@Router		/admin/landing-images/{category}/portrait/{id} [post]
func (h *AdminHandler) UpdateLandingPortrait() http.HandlerFunc {
	return h.writeLanding(func(r *http.Request, image shopapi.Upload) (*models.LandingImage, error) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			return nil, err
		}

		return h.adminService.UpdateLandingPortrait(r.Context(), r.PathValue("category"), id, image)
	})
}

// DeleteLandingImage godoc
//
//	@Summary	Delete a landing image
//	@Tags		Admin
//	@Param		id	path	int	true	"Landing image ID"
//	@Success	204	"Deleted"
//	@Security	BearerAuth
//	@Router		/admin/landing-images/{id} [delete]
func (h *AdminHandler) DeleteLandingImage() http.HandlerFunc {
	return h.deleteByID("landing image", h.adminService.DeleteLandingImage)
}

func (h *AdminHandler) deleteByID(resource string, del func(ctx context.Context, id int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := del(r.Context(), id); err != nil {
			h.fail(w, r, "Failed to delete "+resource, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Deleted "+resource, slog.Int64("id", id))
		response.NoContent(w)
	}
}

// writeProduct parses a multipart product form with its files under fileField and runs call.
// Creates answer 201, updates 200.
func writeProduct[T any](h *AdminHandler, fileField string, call func(r *http.Request, form *models.ProductForm, files []shopapi.Upload) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := parseMultipart(r); err != nil {
			response.Error(w, err)
			return
		}

		form, err := productForm(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := utils.ValidateStruct(h.validator, form); err != nil {
			response.Error(w, err)
			return
		}

		uploads, err := openUploads(r, fileField)
		if err != nil {
			response.Error(w, err)
			return
		}
		defer uploads.Close()

		result, err := call(r, form, uploads.uploads)
		if err != nil {
			h.fail(w, r, "Failed to save product", err)
			return
		}

		status := http.StatusOK
		if r.Method == http.MethodPost {
			status = http.StatusCreated
		}

		response.Success(w, status, result)
	}
}

func (h *AdminHandler) writeLanding(call func(r *http.Request, image shopapi.Upload) (*models.LandingImage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := parseMultipart(r); err != nil {
			response.Error(w, err)
			return
		}

		uploads, err := openUploads(r, "image")
		if err != nil {
			response.Error(w, err)
			return
		}
		defer uploads.Close()

		if len(uploads.uploads) == 0 {
			response.Error(w, errors.AddValidationError("image", "an image is required"))
			return
		}

		image, err := call(r, uploads.uploads[0])
		if err != nil {
			h.fail(w, r, "Failed to save landing image", err)
			return
		}

		response.Success(w, http.StatusOK, image)
	}
}
