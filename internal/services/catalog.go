package service

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopdarven/storefront/internal/api/middleware"
	"github.com/shopdarven/storefront/internal/cache"
	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/metrics"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

const relatedProductsLimit = 4

type CatalogService interface {
	ListReadyMade(ctx context.Context, filter models.CatalogFilter) ([]models.ReadyMadeProduct, error)
	GetReadyMade(ctx context.Context, id int64) (*models.ReadyMadeProduct, error)
	RelatedReadyMade(ctx context.Context, id int64) ([]models.ReadyMadeProduct, error)
	ListFabrics(ctx context.Context, filter models.CatalogFilter) ([]models.Fabric, error)
	GetFabric(ctx context.Context, id int64) (*models.Fabric, error)
	ListCustomFabrics(ctx context.Context) ([]models.CustomFabric, error)
	GetCustomFabric(ctx context.Context, id int64) (*models.CustomFabric, error)
	ListLandingImages(ctx context.Context, category string) ([]models.LandingImage, error)
	Invalidate(ctx context.Context) error
}

type catalogService struct {
	api     CatalogAPI
	cache   cache.Cache
	ttl     time.Duration
	baseURL string
}

// NewCatalogService serves catalog reads through c. baseURL is the shop API origin that
// relative image paths are resolved against.
func NewCatalogService(api CatalogAPI, c cache.Cache, ttl time.Duration, baseURL string) CatalogService {
	return &catalogService{api: api, cache: c, ttl: ttl, baseURL: baseURL}
}

// cached reads key from the cache or, on a miss, loads and stores it. Cache failures
// are logged and the shop API is used directly.
func cached[T any](ctx context.Context, s *catalogService, key string, load func(context.Context) (T, error)) (T, error) {
	logger := middleware.LoggerFromContext(ctx)

	var value T

	found, err := s.cache.Get(ctx, key, &value)
	if err != nil {
		logger.Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	metrics.RecordCacheLookup("catalog", found)

	if found {
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		logger.Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return value, nil
}

func catalogKey(parts ...string) string {
	return cache.Key(cache.CatalogKeyPrefix, strings.Join(parts, ":"))
}

func (s *catalogService) readyMade(ctx context.Context) ([]models.ReadyMadeProduct, error) {
	return cached(ctx, s, catalogKey("ready-made"), func(ctx context.Context) ([]models.ReadyMadeProduct, error) {
		products, err := s.api.ListReadyMade(ctx)
		if err != nil {
			return nil, upstreamError("Ready-made products", err)
		}

		for i := range products {
			s.resolveReadyMade(&products[i])
		}

		return products, nil
	})
}

func (s *catalogService) ListReadyMade(ctx context.Context, filter models.CatalogFilter) ([]models.ReadyMadeProduct, error) {
	products, err := s.readyMade(ctx)
	if err != nil {
		return nil, err
	}

	out := []models.ReadyMadeProduct{}

	for _, p := range products {
		if matches(filter, p.FabricCategory, p.Material, p.Colors, p.Price) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (s *catalogService) GetReadyMade(ctx context.Context, id int64) (*models.ReadyMadeProduct, error) {
	return cached(ctx, s, catalogKey("ready-made", strconv.FormatInt(id, 10)), func(ctx context.Context) (*models.ReadyMadeProduct, error) {
		product, err := s.api.GetReadyMade(ctx, id)
		if err != nil {
			return nil, upstreamError("Product", err)
		}

		s.resolveReadyMade(product)

		return product, nil
	})
}

// RelatedReadyMade lists up to four other ready-made products.
func (s *catalogService) RelatedReadyMade(ctx context.Context, id int64) ([]models.ReadyMadeProduct, error) {
	products, err := s.readyMade(ctx)
	if err != nil {
		return nil, err
	}

	related := []models.ReadyMadeProduct{}

	for _, p := range products {
		if p.ID == id {
			continue
		}

		related = append(related, p)
		if len(related) == relatedProductsLimit {
			break
		}
	}

	return related, nil
}

func (s *catalogService) ListFabrics(ctx context.Context, filter models.CatalogFilter) ([]models.Fabric, error) {
	fabrics, err := cached(ctx, s, catalogKey("fabrics"), func(ctx context.Context) ([]models.Fabric, error) {
		fabrics, err := s.api.ListFabrics(ctx)
		if err != nil {
			return nil, upstreamError("Fabrics", err)
		}

		for i := range fabrics {
			s.resolveFabric(&fabrics[i])
		}

		return fabrics, nil
	})
	if err != nil {
		return nil, err
	}

	out := []models.Fabric{}

	for _, f := range fabrics {
		if matches(filter, f.FabricCategory, f.Material, f.Colors, f.PricePerMeter) {
			out = append(out, f)
		}
	}

	return out, nil
}

func (s *catalogService) GetFabric(ctx context.Context, id int64) (*models.Fabric, error) {
	return cached(ctx, s, catalogKey("fabrics", strconv.FormatInt(id, 10)), func(ctx context.Context) (*models.Fabric, error) {
		fabric, err := s.api.GetFabric(ctx, id)
		if err != nil {
			return nil, upstreamError("Fabric", err)
		}

		s.resolveFabric(fabric)

		return fabric, nil
	})
}

func (s *catalogService) ListCustomFabrics(ctx context.Context) ([]models.CustomFabric, error) {
	return cached(ctx, s, catalogKey("custom-fabrics"), func(ctx context.Context) ([]models.CustomFabric, error) {
		fabrics, err := s.api.ListCustomFabrics(ctx)
		if err != nil {
			return nil, upstreamError("Custom fabrics", err)
		}

		for i := range fabrics {
			fabrics[i].ImageURL = shopapi.ImageURL(s.baseURL, fabrics[i].ImageURL)
		}

		return fabrics, nil
	})
}

// GetCustomFabric looks the fabric up in the cached list; the shop API has no
// single-item endpoint for custom fabrics.
func (s *catalogService) GetCustomFabric(ctx context.Context, id int64) (*models.CustomFabric, error) {
	fabrics, err := s.ListCustomFabrics(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(fabrics, func(f models.CustomFabric) bool { return f.ID == id })
	if i < 0 {
		return nil, appErrors.NotFoundError("Custom fabric not found")
	}

	return &fabrics[i], nil
}

func (s *catalogService) ListLandingImages(ctx context.Context, category string) ([]models.LandingImage, error) {
	images, err := cached(ctx, s, catalogKey("landing-images"), func(ctx context.Context) ([]models.LandingImage, error) {
		images, err := s.api.ListLandingImages(ctx)
		if err != nil {
			return nil, upstreamError("Landing images", err)
		}

		for i := range images {
			images[i].ImageURL = shopapi.ImageURL(s.baseURL, images[i].ImageURL)
			if images[i].PortraitImageURL != nil {
				portrait := shopapi.ImageURL(s.baseURL, *images[i].PortraitImageURL)
				images[i].PortraitImageURL = &portrait
			}
		}

		return images, nil
	})
	if err != nil {
		return nil, err
	}

	if category == "" {
		return images, nil
	}

	out := []models.LandingImage{}

	for _, img := range images {
		if img.Category == category {
			out = append(out, img)
		}
	}

	return out, nil
}

// Invalidate drops every cached catalog entry. Admin mutations call it.
func (s *catalogService) Invalidate(ctx context.Context) error {
	if err := s.cache.DeleteByPrefix(ctx, cache.CatalogKeyPrefix); err != nil {
		return appErrors.CacheError("Failed to invalidate catalog cache").WithError(err)
	}

	return nil
}

func (s *catalogService) resolveReadyMade(p *models.ReadyMadeProduct) {
	p.Images = resolveImages(s.baseURL, p.Images)
}

func (s *catalogService) resolveFabric(f *models.Fabric) {
	f.Images = resolveImages(s.baseURL, f.Images)
}

func resolveImages(base string, paths []string) []string {
	out := make([]string, len(paths))
	for i, path := range paths {
		out[i] = shopapi.ImageURL(base, path)
	}

	return out
}

// OfferedColors is the color list of a catalog item, or the default palette when it has none.
func OfferedColors(colors []string) []string {
	if len(colors) == 0 {
		return models.DefaultColors
	}

	return colors
}

func matches(filter models.CatalogFilter, category, material string, colors []string, price float64) bool {
	if filter.FabricCategory != "" && !strings.EqualFold(filter.FabricCategory, category) {
		return false
	}

	if filter.Material != "" && !strings.EqualFold(filter.Material, material) {
		return false
	}

	if filter.Color != "" && !slices.ContainsFunc(OfferedColors(colors), func(c string) bool {
		return strings.EqualFold(c, filter.Color)
	}) {
		return false
	}

	if filter.MinPrice > 0 && price < filter.MinPrice {
		return false
	}

	if filter.MaxPrice > 0 && price > filter.MaxPrice {
		return false
	}

	return true
}
