package handlers

import (
	"net/http"
	"strconv"

	"github.com/shopdarven/storefront/internal/api/middleware"
	"github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/models"
)

// cartID returns the session id bound by the CartSession middleware.
func cartID(r *http.Request) (string, error) {
	id, ok := middleware.CartIDFromContext(r.Context())
	if !ok {
		return "", errors.BadRequestError("Cart session is missing")
	}

	return id, nil
}

// parseCatalogFilter reads ?category=&material=&color=&min_price=&max_price=.
func parseCatalogFilter(r *http.Request) (models.CatalogFilter, error) {
	query := r.URL.Query()

	filter := models.CatalogFilter{
		FabricCategory: query.Get("category"),
		Material:       query.Get("material"),
		Color:          query.Get("color"),
	}

	var err error

	if filter.MinPrice, err = parsePrice(query.Get("min_price"), "min_price"); err != nil {
		return filter, err
	}

	if filter.MaxPrice, err = parsePrice(query.Get("max_price"), "max_price"); err != nil {
		return filter, err
	}

	if filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return filter, errors.BadRequestError("min_price cannot exceed max_price")
	}

	return filter, nil
}

func parsePrice(raw, name string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, errors.AddValidationError(name, "must be a non-negative number")
	}

	return v, nil
}
