package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/shopdarven/storefront/internal/api/middleware"
	"github.com/shopdarven/storefront/internal/cache"
	"github.com/shopdarven/storefront/internal/cart"
	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/metrics"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/internal/pricing"
	"github.com/shopdarven/storefront/pkg/sendgrid"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

type CheckoutService interface {
	Submit(ctx context.Context, cartID string, customer models.CustomerDetails) (*models.CheckoutResult, error)
}

type CheckoutConfig struct {
	RedirectAfter time.Duration
	LockTTL       time.Duration
	// ShopInbox receives the new-order notice. Empty disables it.
	ShopInbox string
}

type checkoutService struct {
	persister cart.Persister
	locks     cache.Cache
	orders    OrderAPI
	receipts  ReceiptRepository
	email     sendgrid.EmailService
	composer  *pricing.Composer
	policy    *bluemonday.Policy
	cfg       CheckoutConfig
}

// NewCheckoutService wires order submission. receipts and email may be nil.
func NewCheckoutService(persister cart.Persister, locks cache.Cache, orders OrderAPI, receipts ReceiptRepository, email sendgrid.EmailService, composer *pricing.Composer, cfg CheckoutConfig) CheckoutService {
	return &checkoutService{
		persister: persister,
		locks:     locks,
		orders:    orders,
		receipts:  receipts,
		email:     email,
		composer:  composer,
		policy:    bluemonday.StrictPolicy(),
		cfg:       cfg,
	}
}

// Submit turns the cart into one order. The cart is cleared only after the shop API
// accepted the order; on any earlier failure it is left exactly as it was.
func (s *checkoutService) Submit(ctx context.Context, cartID string, customer models.CustomerDetails) (*models.CheckoutResult, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("cartId", cartID))

	lockKey := cache.Key(cache.CheckoutLockKeyPrefix, cartID)

	// The token ties the lock to this call; a submission that outlived LockTTL must not
	// release a lock a later submission has taken.
	token := uuid.NewString()

	acquired, err := s.locks.SetNX(ctx, lockKey, token, s.cfg.LockTTL)
	if err != nil {
		metrics.RecordCheckoutFailure("lock")
		return nil, appErrors.CacheError("Failed to start checkout").WithError(err)
	}

	if !acquired {
		metrics.RecordCheckoutFailure("in_progress")
		return nil, appErrors.ConflictError("Order submission already in progress")
	}

	defer func() {
		released, err := s.locks.DeleteIfValue(context.WithoutCancel(ctx), lockKey, token)
		if err != nil {
			logger.Warn("Failed to release checkout lock", slog.String("error", err.Error()))
			return
		}

		if !released {
			logger.Warn("Checkout lock expired before the submission finished", slog.Duration("lockTTL", s.cfg.LockTTL))
		}
	}()

	store, err := cart.Load(ctx, s.persister, cartID)
	if err != nil {
		metrics.RecordCheckoutFailure("cart_load")
		return nil, appErrors.CacheError("Failed to load cart").WithError(err)
	}

	if store.Len() == 0 {
		metrics.RecordCheckoutFailure("empty_cart")
		return nil, appErrors.BadRequestError("Cannot place an order with an empty cart")
	}

	customer = s.sanitize(customer)
	if err := requireCustomer(customer); err != nil {
		metrics.RecordCheckoutFailure("validation")
		return nil, err
	}

	// snapshot by value: nothing below may observe a later cart mutation
	items := store.Items()
	summary := s.composer.Compose(items)

	req := &models.CreateOrderRequest{
		CustomerDetails: customer,
		Items:           items,
		Subtotal:        summary.Subtotal,
		StitchingCost:   summary.StitchingCost,
		DeliveryCharges: summary.DeliveryCharges,
		Total:           summary.Total,
	}

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		metrics.RecordCheckoutFailure("shop_api")
		logger.Error("Order submission failed", slog.String("error", err.Error()))

		appErr := appErrors.ThirdPartyError("Failed to place order").WithError(err)

		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			appErr.WithDetail(apiErr.Detail)
		}

		return nil, appErr
	}

	logger = logger.With(slog.Int64("orderId", order.ID))
	logger.Info("Order submitted", slog.Int64("total", int64(summary.Total)), slog.Int("lines", len(items)))

	metrics.RecordOrderSubmitted(float64(summary.Total))

	// The order exists from here on. Failures below are logged, never returned.
	if err := store.Clear(ctx); err != nil {
		logger.Error("Failed to clear cart after order", slog.String("error", err.Error()))
	}

	s.recordReceipt(ctx, logger, cartID, order.ID, items, summary)
	s.notifyShop(ctx, logger, order, req)

	return &models.CheckoutResult{
		Order:         order,
		Summary:       summary,
		Items:         items,
		RedirectAfter: int(s.cfg.RedirectAfter.Seconds()),
	}, nil
}

func (s *checkoutService) sanitize(c models.CustomerDetails) models.CustomerDetails {
	clean := func(v string) string { return sanitizeText(s.policy, v) }

	return models.CustomerDetails{
		CustomerName: clean(c.CustomerName),
		Phone:        clean(c.Phone),
		Address:      clean(c.Address),
		City:         clean(c.City),
		State:        clean(c.State),
		PostalCode:   clean(c.PostalCode),
		Landmark:     clean(c.Landmark),
	}
}

// sanitizeText strips markup. The policy escapes entities, which are turned back into
// plain text because the result is never rendered as HTML by this service.
func sanitizeText(policy *bluemonday.Policy, v string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(v)))
}

// requireCustomer rejects details whose required fields were emptied by sanitizing.
func requireCustomer(c models.CustomerDetails) error {
	fields := []struct{ name, value string }{
		{"customer_name", c.CustomerName},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"state", c.State},
		{"postal_code", c.PostalCode},
	}

	appErr := appErrors.ValidationError("Validation failed")

	for _, f := range fields {
		if f.value == "" {
			appErr.WithDetail(fmt.Sprintf("Field %s is required", f.name))
		}
	}

	if len(appErr.Details) > 0 {
		return appErr
	}

	return nil
}

func (s *checkoutService) recordReceipt(ctx context.Context, logger *slog.Logger, cartID string, orderID int64, items []models.LineItem, summary models.PriceSummary) {
	if s.receipts == nil {
		return
	}

	receipt := &models.Receipt{
		CartID:          cartID,
		OrderID:         orderID,
		ItemCount:       itemCount(items),
		Subtotal:        summary.Subtotal,
		StitchingCost:   summary.StitchingCost,
		DeliveryCharges: summary.DeliveryCharges,
		Total:           summary.Total,
	}

	if err := s.receipts.CreateReceipt(ctx, receipt); err != nil {
		logger.Error("Failed to record receipt", slog.String("error", err.Error()))
	}
}

func (s *checkoutService) notifyShop(ctx context.Context, logger *slog.Logger, order *models.Order, req *models.CreateOrderRequest) {
	if s.email == nil || s.cfg.ShopInbox == "" {
		return
	}

	notice := &models.EmailNotificationRequest{
		To:      s.cfg.ShopInbox,
		Subject: fmt.Sprintf("New order #%d from %s", order.ID, req.CustomerName),
		Content: orderNotice(order.ID, req),
	}

	if err := s.email.Send(ctx, notice); err != nil {
		logger.Warn("Failed to send order notification", slog.String("error", err.Error()))
	}
}

func orderNotice(orderID int64, req *models.CreateOrderRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order #%d\n\n", orderID)
	fmt.Fprintf(&b, "Customer: %s\nPhone: %s\n", req.CustomerName, req.Phone)
	fmt.Fprintf(&b, "Address: %s, %s, %s %s\n", req.Address, req.City, req.State, req.PostalCode)

	if req.Landmark != "" {
		fmt.Fprintf(&b, "Landmark: %s\n", req.Landmark)
	}

	b.WriteString("\nItems:\n")

	for _, item := range req.Items {
		fmt.Fprintf(&b, "- %s (%s) x%d @ Rs. %d\n", item.Name, item.Type, item.Quantity, item.Price)
	}

	fmt.Fprintf(&b, "\nSubtotal: Rs. %d\n", req.Subtotal)

	if req.StitchingCost > 0 {
		fmt.Fprintf(&b, "Stitching: Rs. %d\n", req.StitchingCost)
	}

	fmt.Fprintf(&b, "Delivery: Rs. %d\nTotal: Rs. %d\n", req.DeliveryCharges, req.Total)

	return b.String()
}
