package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopdarven/storefront/internal/cache"
	"github.com/shopdarven/storefront/internal/cart"
	"github.com/shopdarven/storefront/internal/config"
	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/measurement"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/internal/pricing"
	service "github.com/shopdarven/storefront/internal/services"
	"github.com/shopdarven/storefront/internal/services/mocks"
	"github.com/shopdarven/storefront/internal/utils"
)

const testCartID = "0b6f3c52-8a54-4c1e-9f38-2d35b7a8c001"

func ptr(v float64) *float64 { return &v }

func defaultComposer() *pricing.Composer {
	return pricing.NewComposer(config.Pricing{
		StitchingSurchargePerSuit: 3500,
		FlatDeliveryCharge:        200,
		FreeDeliveryThreshold:     10000,
		MeterStep:                 0.5,
	})
}

func setupCartServiceTest(t *testing.T) (service.CartService, *mocks.CatalogService, cart.Persister) {
	t.Helper()

	catalog := mocks.NewCatalogService(t)
	persister := cart.NewPersister(cache.NewMemoryCache(time.Hour), time.Hour)
	svc := service.NewCartService(persister, catalog, defaultComposer(), utils.NewValidator(), 0.5)

	return svc, catalog, persister
}

func shalwarForm(color string) measurement.Form {
	return measurement.Form{
		Color:         color,
		Cuffs:         "no",
		CollarType:    "shirt",
		BottomWear:    "shalwar",
		Collar:        ptr(15),
		Shoulder:      ptr(18),
		Chest:         ptr(40),
		Sleeves:       ptr(24),
		KameezLength:  ptr(42),
		ShalwarLength: ptr(38),
	}
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("Empty cart", func(t *testing.T) {
		// Arrange
		svc, _, _ := setupCartServiceTest(t)

		// Act
		view, err := svc.GetCart(context.Background(), testCartID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, testCartID, view.ID)
		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.ItemCount)
		assert.Equal(t, models.Amount(0), view.Summary.Subtotal)
		assert.Equal(t, models.Amount(200), view.Summary.DeliveryCharges)
		assert.Equal(t, models.Amount(200), view.Summary.Total)
	})
}

func TestCartService_AddReadyMade(t *testing.T) {
	ctx := context.Background()

	product := &models.ReadyMadeProduct{
		ID:       3,
		Name:     "Classic Kurta",
		Price:    5500.4,
		Material: "Cotton",
		Colors:   []string{"Jet Black", "Grey"},
		Images:   []string{"http://shop/uploads/kurta.jpg"},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		catalog.On("GetReadyMade", mock.Anything, int64(3)).Return(product, nil).Once()

		// Act
		view, err := svc.AddReadyMade(ctx, testCartID, &models.AddReadyMadeRequest{ProductID: 3, Size: "M", Color: "Grey", Quantity: 2})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		item := view.Items[0]
		assert.Contains(t, item.ID, "ready-made-3-M-Grey-")
		assert.Equal(t, models.LineTypeReadyMade, item.Type)
		assert.Equal(t, models.Amount(5500), item.Price)
		assert.Equal(t, "http://shop/uploads/kurta.jpg", item.Image)
		assert.Equal(t, models.ReadyMadeDetails{Material: "Cotton", Size: "M", Color: "Grey"}, item.Details)
		assert.Equal(t, 2, view.ItemCount)
		assert.Equal(t, models.Amount(11000), view.Summary.Subtotal)
		assert.Equal(t, models.Amount(11200), view.Summary.Total)
	})

	t.Run("Color outside the product palette", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		catalog.On("GetReadyMade", mock.Anything, int64(3)).Return(product, nil).Once()

		// Act
		view, err := svc.AddReadyMade(ctx, testCartID, &models.AddReadyMadeRequest{ProductID: 3, Size: "M", Color: "Navy Blue", Quantity: 1})

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})

	t.Run("Default palette when the product has no colors", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		plain := *product
		plain.Colors = nil
		plain.Images = nil
		catalog.On("GetReadyMade", mock.Anything, int64(3)).Return(&plain, nil).Once()

		// Act
		view, err := svc.AddReadyMade(ctx, testCartID, &models.AddReadyMadeRequest{ProductID: 3, Size: "L", Color: "Navy Blue", Quantity: 1})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "/placeholder.jpg", view.Items[0].Image)
	})

	t.Run("Unknown product", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		catalog.On("GetReadyMade", mock.Anything, int64(9)).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		// Act
		view, err := svc.AddReadyMade(ctx, testCartID, &models.AddReadyMadeRequest{ProductID: 9, Size: "M", Color: "Grey", Quantity: 1})

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestCartService_AddFabric(t *testing.T) {
	ctx := context.Background()

	fabric := &models.Fabric{ID: 7, Name: "Egyptian Cotton", PricePerMeter: 1000, Material: "Cotton", Images: []string{"http://shop/uploads/f.jpg"}}

	t.Run("Same fabric and length share a line", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		catalog.On("GetFabric", mock.Anything, int64(7)).Return(fabric, nil).Twice()

		// Act
		_, err := svc.AddFabric(ctx, testCartID, &models.AddFabricRequest{FabricID: 7, Length: 2.5, Quantity: 1})
		require.NoError(t, err)
		view, err := svc.AddFabric(ctx, testCartID, &models.AddFabricRequest{FabricID: 7, Length: 2.5, Quantity: 2})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "fabric-7-2.5", view.Items[0].ID)
		assert.Equal(t, models.Amount(2500), view.Items[0].Price)
		assert.Equal(t, 3, view.Items[0].Quantity)
		assert.Equal(t, models.Amount(7500), view.Summary.Subtotal)
		assert.Equal(t, models.Amount(0), view.Summary.StitchingCost)
	})

	t.Run("Length off the meter step", func(t *testing.T) {
		// Arrange
		svc, _, _ := setupCartServiceTest(t)

		// Act
		view, err := svc.AddFabric(ctx, testCartID, &models.AddFabricRequest{FabricID: 7, Length: 2.3, Quantity: 1})

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}

func TestCartService_QuantityLimits(t *testing.T) {
	ctx := context.Background()

	fabric := &models.Fabric{ID: 7, Name: "Egyptian Cotton", PricePerMeter: 1000, Material: "Cotton"}

	t.Run("Merged fabric line over the cap", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		catalog.On("GetFabric", mock.Anything, int64(7)).Return(fabric, nil).Twice()
		_, err := svc.AddFabric(ctx, testCartID, &models.AddFabricRequest{FabricID: 7, Length: 2, Quantity: 60})
		require.NoError(t, err)

		// Act
		view, err := svc.AddFabric(ctx, testCartID, &models.AddFabricRequest{FabricID: 7, Length: 2, Quantity: 50})

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)

		current, err := svc.GetCart(ctx, testCartID)
		require.NoError(t, err)
		require.Len(t, current.Items, 1)
		assert.Equal(t, 60, current.Items[0].Quantity)
	})

	t.Run("Update above the cap", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		catalog.On("GetFabric", mock.Anything, int64(7)).Return(fabric, nil).Once()
		_, err := svc.AddFabric(ctx, testCartID, &models.AddFabricRequest{FabricID: 7, Length: 2, Quantity: 1})
		require.NoError(t, err)

		// Act
		view, err := svc.UpdateQuantity(ctx, testCartID, "fabric-7-2", models.MaxLineQuantity+1)

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})

	t.Run("Negative catalog price is a bad request", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		broken := &models.ReadyMadeProduct{ID: 4, Name: "Broken Kurta", Price: -500, Colors: []string{"Grey"}}
		catalog.On("GetReadyMade", mock.Anything, int64(4)).Return(broken, nil).Once()

		// Act
		view, err := svc.AddReadyMade(ctx, testCartID, &models.AddReadyMadeRequest{ProductID: 4, Size: "M", Color: "Grey", Quantity: 1})

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.ErrorIs(t, err, cart.ErrInvalidItem)
	})
}

func TestCartService_AddCustom(t *testing.T) {
	ctx := context.Background()

	fabric := &models.CustomFabric{ID: 2, Name: "Premium Wash n Wear", Price: 4000, Material: "Wash n Wear", ImageURL: "http://shop/uploads/c.jpg"}

	t.Run("Mixed cart totals", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		catalog.On("GetCustomFabric", mock.Anything, int64(2)).Return(fabric, nil).Once()
		catalog.On("GetReadyMade", mock.Anything, int64(3)).Return(&models.ReadyMadeProduct{ID: 3, Name: "Kurta", Price: 5500}, nil).Once()

		_, err := svc.AddReadyMade(ctx, testCartID, &models.AddReadyMadeRequest{ProductID: 3, Size: "M", Color: "Grey", Quantity: 2})
		require.NoError(t, err)

		// Act
		view, err := svc.AddCustom(ctx, testCartID, &service.AddCustomRequest{
			FabricID: 2,
			Meters:   4,
			Quantity: 2,
			Form:     shalwarForm(""),
		})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		custom := view.Items[1]
		assert.Contains(t, custom.ID, "custom-2-")
		assert.Equal(t, "Custom Suit - Premium Wash n Wear", custom.Name)
		assert.Equal(t, models.Amount(4000), custom.Price)

		details, ok := custom.Details.(models.CustomDetails)
		require.True(t, ok)
		assert.Equal(t, models.StandardColor, details.Color)
		require.NotNil(t, details.Measurements.Shalwar)
		assert.Nil(t, details.Measurements.Pajama)

		assert.Equal(t, models.Amount(19000), view.Summary.Subtotal)
		assert.Equal(t, models.Amount(7000), view.Summary.StitchingCost)
		assert.Equal(t, models.Amount(200), view.Summary.DeliveryCharges)
		assert.Equal(t, models.Amount(26200), view.Summary.Total)
	})

	t.Run("Missing measurements", func(t *testing.T) {
		// Arrange
		svc, catalog, _ := setupCartServiceTest(t)
		catalog.On("GetCustomFabric", mock.Anything, int64(2)).Return(fabric, nil).Once()
		form := shalwarForm("")
		form.Chest = nil
		form.ShalwarLength = nil

		// Act
		view, err := svc.AddCustom(ctx, testCartID, &service.AddCustomRequest{FabricID: 2, Meters: 4, Quantity: 1, Form: form})

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Len(t, appErr.Details, 2)
	})

	t.Run("Meters off the step", func(t *testing.T) {
		// Arrange
		svc, _, _ := setupCartServiceTest(t)

		// Act
		view, err := svc.AddCustom(ctx, testCartID, &service.AddCustomRequest{FabricID: 2, Meters: 3.7, Quantity: 1, Form: shalwarForm("")})

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
	})
}

func TestCartService_Mutations(t *testing.T) {
	ctx := context.Background()

	fabric := &models.Fabric{ID: 7, Name: "Boski", PricePerMeter: 1200}

	t.Run("Update, remove and clear", func(t *testing.T) {
		// Arrange
		svc, catalog, persister := setupCartServiceTest(t)
		catalog.On("GetFabric", mock.Anything, int64(7)).Return(fabric, nil).Twice()

		_, err := svc.AddFabric(ctx, testCartID, &models.AddFabricRequest{FabricID: 7, Length: 2, Quantity: 1})
		require.NoError(t, err)
		_, err = svc.AddFabric(ctx, testCartID, &models.AddFabricRequest{FabricID: 7, Length: 3, Quantity: 1})
		require.NoError(t, err)

		// Act
		view, err := svc.UpdateQuantity(ctx, testCartID, "fabric-7-2", 4)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, view.Items[0].Quantity)
		assert.Equal(t, models.Amount(4*2400+3600), view.Summary.Subtotal)

		// Act
		view, err = svc.UpdateQuantity(ctx, testCartID, "fabric-7-3", 0)

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 1)

		// Act
		view, err = svc.RemoveItem(ctx, testCartID, "missing")

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Items, 1)

		// Act
		view, err = svc.ClearCart(ctx, testCartID)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		_, err = persister.Load(ctx, testCartID)
		assert.ErrorIs(t, err, cart.ErrNotFound)
	})
}

type failingPersister struct{}

func (failingPersister) Load(context.Context, string) (*models.CartDocument, error) {
	return nil, errors.New("redis unavailable")
}

func (failingPersister) Save(context.Context, *models.CartDocument) error { return nil }

func (failingPersister) Delete(context.Context, string) error { return nil }

func TestCartService_StorageFailure(t *testing.T) {
	// Arrange
	svc := service.NewCartService(failingPersister{}, mocks.NewCatalogService(t), defaultComposer(), utils.NewValidator(), 0.5)

	// Act
	view, err := svc.GetCart(context.Background(), testCartID)

	// Assert
	require.Error(t, err)
	assert.Nil(t, view)
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeCacheError, appErr.Code)
}
