package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shopdarven/storefront/internal/api/middleware"
	"github.com/shopdarven/storefront/internal/cart"
	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/measurement"
	"github.com/shopdarven/storefront/internal/metrics"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/internal/pricing"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

type AddCustomRequest struct {
	FabricID int64            `json:"fabric_id" validate:"required,gt=0"`
	Meters   float64          `json:"meters" validate:"required,gt=0"`
	Quantity int              `json:"quantity" validate:"required,min=1,max=99"`
	Form     measurement.Form `json:"measurements" validate:"-"`
}

type CartService interface {
	GetCart(ctx context.Context, cartID string) (*models.CartView, error)
	AddReadyMade(ctx context.Context, cartID string, req *models.AddReadyMadeRequest) (*models.CartView, error)
	AddFabric(ctx context.Context, cartID string, req *models.AddFabricRequest) (*models.CartView, error)
	AddCustom(ctx context.Context, cartID string, req *AddCustomRequest) (*models.CartView, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*models.CartView, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (*models.CartView, error)
	ClearCart(ctx context.Context, cartID string) (*models.CartView, error)
}

type cartService struct {
	persister cart.Persister
	catalog   CatalogService
	composer  *pricing.Composer
	validate  *validator.Validate
	meterStep float64
	now       func() time.Time
}

func NewCartService(persister cart.Persister, catalog CatalogService, composer *pricing.Composer, validate *validator.Validate, meterStep float64) CartService {
	return &cartService{
		persister: persister,
		catalog:   catalog,
		composer:  composer,
		validate:  validate,
		meterStep: meterStep,
		now:       time.Now,
	}
}

func (s *cartService) load(ctx context.Context, cartID string) (*cart.Store, error) {
	store, err := cart.Load(ctx, s.persister, cartID)
	if err != nil {
		return nil, appErrors.CacheError("Failed to load cart").WithError(err)
	}

	return store, nil
}

func (s *cartService) view(store *cart.Store) *models.CartView {
	items := store.Items()

	return &models.CartView{
		ID:        store.ID(),
		Items:     items,
		ItemCount: itemCount(items),
		Summary:   s.composer.Compose(items),
	}
}

// itemCount is the number of units in the cart, as shown on the cart badge.
func itemCount(items []models.LineItem) int {
	var n int
	for _, item := range items {
		n += item.Quantity
	}

	return n
}

// mutate loads the cart, applies fn and returns the resulting view.
func (s *cartService) mutate(ctx context.Context, cartID, operation string, fn func(*cart.Store) error) (*models.CartView, error) {
	store, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if err := fn(store); err != nil {
		if _, ok := appErrors.IsAppError(err); ok {
			return nil, err
		}

		switch {
		case errors.Is(err, cart.ErrQuantityLimit):
			return nil, appErrors.AddValidationError("quantity", err.Error()).WithError(err)
		case errors.Is(err, cart.ErrInvalidItem):
			return nil, appErrors.BadRequestError("Item cannot be added to the cart").WithDetail(err.Error()).WithError(err)
		}

		return nil, appErrors.CacheError("Failed to save cart").WithError(err)
	}

	metrics.RecordCartMutation(operation)

	middleware.LoggerFromContext(ctx).Info("Cart updated",
		slog.String("cartId", cartID),
		slog.String("operation", operation),
		slog.Int("lines", store.Len()))

	return s.view(store), nil
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (*models.CartView, error) {
	store, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	return s.view(store), nil
}

// AddReadyMade prices the line from the catalog. Each add gets its own line.
func (s *cartService) AddReadyMade(ctx context.Context, cartID string, req *models.AddReadyMadeRequest) (*models.CartView, error) {
	product, err := s.catalog.GetReadyMade(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(OfferedColors(product.Colors), req.Color) {
		return nil, appErrors.AddValidationError("color", fmt.Sprintf("must be one of %v", OfferedColors(product.Colors)))
	}

	item := models.LineItem{
		ID:       fmt.Sprintf("ready-made-%d-%s-%s-%d", product.ID, req.Size, req.Color, s.now().UnixMilli()),
		Type:     models.LineTypeReadyMade,
		Name:     product.Name,
		Price:    pricing.ToAmount(product.Price),
		Quantity: req.Quantity,
		Image:    firstImage(product.Images),
		Details: models.ReadyMadeDetails{
			Material: product.Material,
			Size:     req.Size,
			Color:    req.Color,
		},
	}

	return s.mutate(ctx, cartID, "add_ready_made", func(store *cart.Store) error {
		return store.AddItem(ctx, item)
	})
}

// AddFabric adds a cut of fabric. Cuts of the same fabric and length share one line.
func (s *cartService) AddFabric(ctx context.Context, cartID string, req *models.AddFabricRequest) (*models.CartView, error) {
	if !pricing.ValidMeters(req.Length, s.meterStep) {
		return nil, appErrors.AddValidationError("length", fmt.Sprintf("must be a positive multiple of %g meters", s.meterStep))
	}

	fabric, err := s.catalog.GetFabric(ctx, req.FabricID)
	if err != nil {
		return nil, err
	}

	item := models.LineItem{
		ID:       fmt.Sprintf("fabric-%d-%s", fabric.ID, strconv.FormatFloat(req.Length, 'f', -1, 64)),
		Type:     models.LineTypeFabric,
		Name:     fabric.Name,
		Price:    pricing.FabricLinePrice(fabric.PricePerMeter, req.Length),
		Quantity: req.Quantity,
		Image:    firstImage(fabric.Images),
		Details: models.FabricDetails{
			Material:      fabric.Material,
			Length:        req.Length,
			PricePerMeter: fabric.PricePerMeter,
		},
	}

	return s.mutate(ctx, cartID, "add_fabric", func(store *cart.Store) error {
		return store.AddItem(ctx, item)
	})
}

// AddCustom validates the measurement form against the chosen fabric and adds a custom suit.
func (s *cartService) AddCustom(ctx context.Context, cartID string, req *AddCustomRequest) (*models.CartView, error) {
	if !pricing.ValidMeters(req.Meters, s.meterStep) {
		return nil, appErrors.AddValidationError("meters", fmt.Sprintf("must be a positive multiple of %g meters", s.meterStep))
	}

	fabric, err := s.catalog.GetCustomFabric(ctx, req.FabricID)
	if err != nil {
		return nil, err
	}

	color, err := measurement.Validate(s.validate, &req.Form, fabric)
	if err != nil {
		return nil, err
	}

	item := measurement.BuildLineItem(measurement.LineRequest{
		Fabric:   fabric,
		Form:     &req.Form,
		Color:    color,
		Meters:   req.Meters,
		Quantity: req.Quantity,
		Image:    fabric.ImageURL,
		Now:      s.now(),
	})

	return s.mutate(ctx, cartID, "add_custom", func(store *cart.Store) error {
		return store.AddItem(ctx, item)
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*models.CartView, error) {
	return s.mutate(ctx, cartID, "update_quantity", func(store *cart.Store) error {
		return store.UpdateQuantity(ctx, itemID, quantity)
	})
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, itemID string) (*models.CartView, error) {
	return s.mutate(ctx, cartID, "remove_item", func(store *cart.Store) error {
		return store.RemoveItem(ctx, itemID)
	})
}

func (s *cartService) ClearCart(ctx context.Context, cartID string) (*models.CartView, error) {
	return s.mutate(ctx, cartID, "clear", func(store *cart.Store) error {
		return store.Clear(ctx)
	})
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return shopapi.PlaceholderImage
	}

	return images[0]
}
