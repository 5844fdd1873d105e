package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopdarven/storefront/internal/api/middleware"
	service "github.com/shopdarven/storefront/internal/services"
	"github.com/shopdarven/storefront/internal/utils"
	"github.com/shopdarven/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListReadyMade godoc
//
//	@Summary		List ready-made suits
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query		string						false	"Fabric category"
//	@Param			material	query		string						false	"Material"
//	@Param			color		query		string						false	"Offered color"
//	@Param			min_price	query		number						false	"Minimum price"
//	@Param			max_price	query		number						false	"Maximum price"
//	@Success		200			{array}		models.ReadyMadeProduct		"Matching products"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid filter"
//	@Failure		502			{object}	response.ErrorResponse		"Shop API unavailable"
//	@Router			/catalog/ready-made [get]
func (h *CatalogHandler) ListReadyMade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filter, err := parseCatalogFilter(r)
		if err != nil {
			logger.Warn("Invalid catalog filter", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		products, err := h.catalogService.ListReadyMade(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list ready-made products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetReadyMade godoc
//
//	@Summary		Get a ready-made suit
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	models.ReadyMadeProduct	"Product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/catalog/ready-made/{id} [get]
func (h *CatalogHandler) GetReadyMade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.catalogService.GetReadyMade(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get ready-made product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// RelatedReadyMade godoc
//
//	@Summary		Products related to a ready-made suit
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{array}		models.ReadyMadeProduct	"Up to four other products"
//	@Router			/catalog/ready-made/{id}/related [get]
func (h *CatalogHandler) RelatedReadyMade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		products, err := h.catalogService.RelatedReadyMade(r.Context(), id)
		if err != nil {
			logger.Error("Failed to list related products", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// ListFabrics godoc
//
//	@Summary		List fabrics sold by the meter
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query		string					false	"Fabric category"
//	@Param			material	query		string					false	"Material"
//	@Param			min_price	query		number					false	"Minimum price per meter"
//	@Param			max_price	query		number					false	"Maximum price per meter"
//	@Success		200			{array}		models.Fabric			"Matching fabrics"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid filter"
//	@Router			/catalog/fabrics [get]
func (h *CatalogHandler) ListFabrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filter, err := parseCatalogFilter(r)
		if err != nil {
			logger.Warn("Invalid catalog filter", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		fabrics, err := h.catalogService.ListFabrics(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list fabrics", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, fabrics)
	}
}

// GetFabric godoc
//
//	@Summary		Get a fabric
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int						true	"Fabric ID"
//	@Success		200	{object}	models.Fabric			"Fabric"
//	@Failure		404	{object}	response.ErrorResponse	"Fabric not found"
//	@Router			/catalog/fabrics/{id} [get]
func (h *CatalogHandler) GetFabric() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		fabric, err := h.catalogService.GetFabric(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get fabric", slog.Int64("fabricId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, fabric)
	}
}

// ListCustomFabrics godoc
//
//	@Summary		List made-to-measure fabrics
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}	models.CustomFabric	"Custom fabrics"
//	@Router			/catalog/custom-fabrics [get]
func (h *CatalogHandler) ListCustomFabrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		fabrics, err := h.catalogService.ListCustomFabrics(r.Context())
		if err != nil {
			logger.Error("Failed to list custom fabrics", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, fabrics)
	}
}

// GetCustomFabric godoc
//
//	@Summary		Get a made-to-measure fabric
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int						true	"Custom fabric ID"
//	@Success		200	{object}	models.CustomFabric		"Custom fabric"
//	@Failure		404	{object}	response.ErrorResponse	"Custom fabric not found"
//	@Router			/catalog/custom-fabrics/{id} [get]
func (h *CatalogHandler) GetCustomFabric() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		fabric, err := h.catalogService.GetCustomFabric(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get custom fabric", slog.Int64("fabricId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, fabric)
	}
}

// ListLandingImages godoc
//
//	@Summary		Landing page imagery
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query	string				false	"Landing section"
//	@Success		200			{array}	models.LandingImage	"Images"
//	@Router			/catalog/landing-images [get]
func (h *CatalogHandler) ListLandingImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		images, err := h.catalogService.ListLandingImages(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			logger.Error("Failed to list landing images", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, images)
	}
}
