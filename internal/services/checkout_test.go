package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopdarven/storefront/internal/cache"
	"github.com/shopdarven/storefront/internal/cart"
	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/models"
	service "github.com/shopdarven/storefront/internal/services"
	"github.com/shopdarven/storefront/internal/services/mocks"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

type checkoutFixture struct {
	svc       service.CheckoutService
	api       *mocks.ShopAPI
	receipts  *mocks.ReceiptRepository
	email     *mocks.EmailService
	persister cart.Persister
	locks     cache.Cache
}

func setupCheckoutTest(t *testing.T) checkoutFixture {
	t.Helper()

	f := checkoutFixture{
		api:       mocks.NewShopAPI(t),
		receipts:  mocks.NewReceiptRepository(t),
		email:     mocks.NewEmailService(t),
		persister: cart.NewPersister(cache.NewMemoryCache(time.Hour), time.Hour),
		locks:     cache.NewMemoryCache(time.Minute),
	}

	f.svc = service.NewCheckoutService(f.persister, f.locks, f.api, f.receipts, f.email, defaultComposer(), service.CheckoutConfig{
		RedirectAfter: 5 * time.Second,
		LockTTL:       30 * time.Second,
		ShopInbox:     "orders@darven.test",
	})

	return f
}

func measurements() models.Measurements {
	return models.Measurements{
		MeasurementType: models.MeasurementTypeCustom,
		Cuffs:           models.CuffsYes,
		CollarType:      models.CollarSherwani,
		BottomWear:      models.BottomWearShalwar,
		Collar:          15,
		Shoulder:        18,
		Chest:           40,
		Sleeves:         24,
		KameezLength:    42,
		Shalwar:         &models.ShalwarMeasurements{Length: 38},
	}
}

// seedCart stores the two-line cart of the pricing example: 2 × 5500 ready-made and
// 2 × 4000 custom suits.
func seedCart(t *testing.T, persister cart.Persister) {
	t.Helper()

	store, err := cart.Load(t.Context(), persister, testCartID)
	require.NoError(t, err)

	require.NoError(t, store.AddItem(t.Context(), models.LineItem{
		ID: "ready-made-1-M-Grey-1", Type: models.LineTypeReadyMade, Name: "Kurta", Price: 5500, Quantity: 2,
		Details: models.ReadyMadeDetails{Material: "Cotton", Size: "M", Color: "Grey"},
	}))
	require.NoError(t, store.AddItem(t.Context(), models.LineItem{
		ID: "custom-2-1", Type: models.LineTypeCustom, Name: "Custom Suit - Boski", Price: 3500, Quantity: 2,
		Details: models.CustomDetails{Fabric: "Boski", Material: "Boski", Color: "Standard", Meters: 3.5, Measurements: measurements()},
	}))
}

func customer() models.CustomerDetails {
	return models.CustomerDetails{
		CustomerName: "Ayesha Khan",
		Phone:        "03001234567",
		Address:      "House 12, Street 4",
		City:         "Lahore",
		State:        "Punjab",
		PostalCode:   "54000",
	}
}

func TestCheckoutService_Submit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		seedCart(t, f.persister)

		var sent *models.CreateOrderRequest
		f.api.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.CreateOrderRequest")).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*models.CreateOrderRequest) }).
			Return(&models.Order{ID: 77, Status: models.OrderStatusPending}, nil).Once()
		f.receipts.On("CreateReceipt", mock.Anything, mock.MatchedBy(func(r *models.Receipt) bool {
			return r.OrderID == 77 && r.CartID == testCartID && r.ItemCount == 4 && r.Total == 25200
		})).Return(nil).Once()
		f.email.On("Send", mock.Anything, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
			return r.To == "orders@darven.test"
		})).Return(nil).Once()

		// Act
		result, err := f.svc.Submit(context.Background(), testCartID, customer())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(77), result.Order.ID)
		assert.Equal(t, 5, result.RedirectAfter)
		assert.Equal(t, models.PriceSummary{
			Subtotal:              18000,
			StitchingCost:         7000,
			DeliveryCharges:       200,
			Total:                 25200,
			FreeDeliveryThreshold: 10000,
			FreeDeliveryEligible:  true,
		}, result.Summary)

		require.NotNil(t, sent)
		assert.Len(t, sent.Items, 2)
		assert.Equal(t, models.Amount(18000), sent.Subtotal)
		assert.Equal(t, models.Amount(7000), sent.StitchingCost)
		assert.Equal(t, models.Amount(25200), sent.Total)
		assert.Equal(t, "Ayesha Khan", sent.CustomerName)

		_, err = f.persister.Load(context.Background(), testCartID)
		assert.ErrorIs(t, err, cart.ErrNotFound, "cart must be cleared after a successful order")
	})

	t.Run("Empty cart", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)

		// Act
		result, err := f.svc.Submit(context.Background(), testCartID, customer())

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})

	t.Run("Shop API failure leaves the cart untouched", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		seedCart(t, f.persister)
		f.api.On("CreateOrder", mock.Anything, mock.Anything).
			Return(nil, &shopapi.APIError{StatusCode: http.StatusInternalServerError, Detail: "database is locked"}).Once()

		// Act
		result, err := f.svc.Submit(context.Background(), testCartID, customer())

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
		assert.Equal(t, []string{"database is locked"}, appErr.Details)

		doc, err := f.persister.Load(context.Background(), testCartID)
		require.NoError(t, err)
		assert.Len(t, doc.Items, 2)
		f.receipts.AssertNotCalled(t, "CreateReceipt", mock.Anything, mock.Anything)
		f.email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Submission already in flight", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		seedCart(t, f.persister)
		held, err := f.locks.SetNX(context.Background(), cache.Key(cache.CheckoutLockKeyPrefix, testCartID), 1, time.Minute)
		require.NoError(t, err)
		require.True(t, held)

		// Act
		result, err := f.svc.Submit(context.Background(), testCartID, customer())

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	})

	t.Run("Markup is stripped and emptied fields are rejected", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		seedCart(t, f.persister)
		details := customer()
		details.City = "<script>alert(1)</script>"

		// Act
		result, err := f.svc.Submit(context.Background(), testCartID, details)

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, []string{"Field city is required"}, appErr.Details)
	})

	t.Run("Receipt and email failures do not fail the order", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		seedCart(t, f.persister)
		details := customer()
		details.Address = "<b>House 12</b> & Sons"

		f.api.On("CreateOrder", mock.Anything, mock.MatchedBy(func(r *models.CreateOrderRequest) bool {
			return r.Address == "House 12 & Sons"
		})).Return(&models.Order{ID: 78}, nil).Once()
		f.receipts.On("CreateReceipt", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
		f.email.On("Send", mock.Anything, mock.Anything).Return(errors.New("sendgrid down")).Once()

		// Act
		result, err := f.svc.Submit(context.Background(), testCartID, details)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(78), result.Order.ID)
	})

	t.Run("Slow submission keeps a lock taken by a later one", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)
		seedCart(t, f.persister)
		lockKey := cache.Key(cache.CheckoutLockKeyPrefix, testCartID)

		f.api.On("CreateOrder", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				// the first lock lapsed and another submission took it
				require.NoError(t, f.locks.Delete(context.Background(), lockKey))
				acquired, err := f.locks.SetNX(context.Background(), lockKey, "later-submission", time.Minute)
				require.NoError(t, err)
				require.True(t, acquired)
			}).
			Return(&models.Order{ID: 79}, nil).Once()
		f.receipts.On("CreateReceipt", mock.Anything, mock.Anything).Return(nil).Once()
		f.email.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		result, err := f.svc.Submit(context.Background(), testCartID, customer())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(79), result.Order.ID)

		var holder string
		found, err := f.locks.Get(context.Background(), lockKey, &holder)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "later-submission", holder)
	})

	t.Run("Lock is released after a submission", func(t *testing.T) {
		// Arrange
		f := setupCheckoutTest(t)

		// Act
		_, err := f.svc.Submit(context.Background(), testCartID, customer())
		require.Error(t, err)
		acquired, lockErr := f.locks.SetNX(context.Background(), cache.Key(cache.CheckoutLockKeyPrefix, testCartID), 1, time.Minute)

		// Assert
		require.NoError(t, lockErr)
		assert.True(t, acquired)
	})
}
