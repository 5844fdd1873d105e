package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopdarven/storefront/internal/api/middleware"
	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/metrics"
	"github.com/shopdarven/storefront/internal/models"
	repository "github.com/shopdarven/storefront/internal/repositories"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

type AdminService interface {
	Login(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminLoginResponse, error)
	Verify(ctx context.Context) (*models.AdminIdentity, error)
	Revenue(ctx context.Context) (*models.Revenue, error)

	ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error

	CreateReadyMade(ctx context.Context, form *models.ProductForm, images []shopapi.Upload) (*models.ReadyMadeProduct, error)
	UpdateReadyMade(ctx context.Context, id int64, form *models.ProductForm, images []shopapi.Upload) (*models.ReadyMadeProduct, error)
	DeleteReadyMade(ctx context.Context, id int64) error

	CreateFabric(ctx context.Context, form *models.ProductForm, images []shopapi.Upload) (*models.Fabric, error)
	UpdateFabric(ctx context.Context, id int64, form *models.ProductForm, images []shopapi.Upload) (*models.Fabric, error)
	DeleteFabric(ctx context.Context, id int64) error

	CreateCustomFabric(ctx context.Context, form *models.ProductForm, image shopapi.Upload) (*models.CustomFabric, error)
	UpdateCustomFabric(ctx context.Context, id int64, form *models.ProductForm, image *shopapi.Upload) (*models.CustomFabric, error)
	DeleteCustomFabric(ctx context.Context, id int64) error

	UpdateLandingImage(ctx context.Context, category string, image shopapi.Upload) (*models.LandingImage, error)
	UpdateLandingPortrait(ctx context.Context, category string, id int64, image shopapi.Upload) (*models.LandingImage, error)
	DeleteLandingImage(ctx context.Context, id int64) error
}

type adminService struct {
	api     AdminAPI
	catalog CatalogService
	limiter repository.RateLimitRepository
}

// NewAdminService forwards admin calls to the shop API. limiter may be nil, which
// disables login throttling.
func NewAdminService(api AdminAPI, catalog CatalogService, limiter repository.RateLimitRepository) AdminService {
	return &adminService{api: api, catalog: catalog, limiter: limiter}
}

func (s *adminService) Login(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	if s.limiter != nil {
		allowed, _, retryAfter, err := s.limiter.CheckLoginRateLimit(ctx, req.Username)
		if err != nil {
			return nil, appErrors.CacheError("Rate limit check failed").WithError(err)
		}

		if !allowed {
			metrics.RecordAdminLogin("throttled")
			return nil, appErrors.TooManyRequestsError("Too many login attempts. Please try again later.").
				WithDetail(fmt.Sprintf("Retry after %d seconds", retryAfter))
		}
	}

	token, err := s.api.Login(ctx, req)
	if err != nil {
		if shopapi.IsUnauthorized(err) {
			metrics.RecordAdminLogin("rejected")
			logger.Warn("Admin login rejected", slog.String("username", req.Username))

			return nil, appErrors.UnauthorizedError("Invalid username or password").WithError(err)
		}

		return nil, upstreamError("Admin", err)
	}

	if s.limiter != nil {
		if err := s.limiter.ResetLoginAttempts(ctx, req.Username); err != nil {
			logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
		}
	}

	metrics.RecordAdminLogin("success")
	logger.Info("Admin logged in", slog.String("username", req.Username))

	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}

	return &models.AdminLoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   tokenType,
		ExpiresIn:   expiresIn(token.AccessToken, time.Now()),
	}, nil
}

// expiresIn reads the exp claim without verifying the signature; the token came
// straight from the shop API.
func expiresIn(token string, now time.Time) int {
	claims := &jwt.RegisteredClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil || claims.ExpiresAt == nil {
		return 0
	}

	return max(int(claims.ExpiresAt.Sub(now).Seconds()), 0)
}

func (s *adminService) Verify(ctx context.Context) (*models.AdminIdentity, error) {
	identity, err := s.api.Verify(ctx)
	if err != nil {
		return nil, upstreamError("Admin", err)
	}

	return identity, nil
}

func (s *adminService) Revenue(ctx context.Context) (*models.Revenue, error) {
	revenue, err := s.api.Revenue(ctx)
	if err != nil {
		return nil, upstreamError("Revenue", err)
	}

	return revenue, nil
}

// ListOrders lists orders, optionally only those in one status.
func (s *adminService) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, upstreamError("Orders", err)
	}

	if status == "" {
		return orders, nil
	}

	return slices.DeleteFunc(orders, func(o models.Order) bool { return o.Status != status }), nil
}

func (s *adminService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.api.GetOrder(ctx, id)
	if err != nil {
		return nil, upstreamError("Order", err)
	}

	return order, nil
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	order, err := s.api.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, upstreamError("Order", err)
	}

	middleware.LoggerFromContext(ctx).Info("Order status updated", slog.Int64("orderId", id), slog.String("status", string(status)))

	return order, nil
}

func (s *adminService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.api.DeleteOrder(ctx, id); err != nil {
		return upstreamError("Order", err)
	}

	middleware.LoggerFromContext(ctx).Info("Order deleted", slog.Int64("orderId", id))

	return nil
}

// invalidate drops cached catalog reads after a mutation. A failure only means
// visitors see the old catalog until the entries expire.
func (s *adminService) invalidate(ctx context.Context) {
	if err := s.catalog.Invalidate(ctx); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog invalidation failed", slog.String("error", err.Error()))
	}
}

// mutated forwards the result of a catalog mutation, invalidating the cache on success.
func mutated[T any](ctx context.Context, s *adminService, resource string, value T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, upstreamError(resource, err)
	}

	s.invalidate(ctx)

	return value, nil
}

func (s *adminService) CreateReadyMade(ctx context.Context, form *models.ProductForm, images []shopapi.Upload) (*models.ReadyMadeProduct, error) {
	product, err := s.api.CreateReadyMade(ctx, form, images)
	return mutated(ctx, s, "Product", product, err)
}

func (s *adminService) UpdateReadyMade(ctx context.Context, id int64, form *models.ProductForm, images []shopapi.Upload) (*models.ReadyMadeProduct, error) {
	product, err := s.api.UpdateReadyMade(ctx, id, form, images)
	return mutated(ctx, s, "Product", product, err)
}

func (s *adminService) DeleteReadyMade(ctx context.Context, id int64) error {
	_, err := mutated(ctx, s, "Product", struct{}{}, s.api.DeleteReadyMade(ctx, id))
	return err
}

func (s *adminService) CreateFabric(ctx context.Context, form *models.ProductForm, images []shopapi.Upload) (*models.Fabric, error) {
	fabric, err := s.api.CreateFabric(ctx, form, images)
	return mutated(ctx, s, "Fabric", fabric, err)
}

func (s *adminService) UpdateFabric(ctx context.Context, id int64, form *models.ProductForm, images []shopapi.Upload) (*models.Fabric, error) {
	fabric, err := s.api.UpdateFabric(ctx, id, form, images)
	return mutated(ctx, s, "Fabric", fabric, err)
}

func (s *adminService) DeleteFabric(ctx context.Context, id int64) error {
	_, err := mutated(ctx, s, "Fabric", struct{}{}, s.api.DeleteFabric(ctx, id))
	return err
}

func (s *adminService) CreateCustomFabric(ctx context.Context, form *models.ProductForm, image shopapi.Upload) (*models.CustomFabric, error) {
	fabric, err := s.api.CreateCustomFabric(ctx, form, image)
	return mutated(ctx, s, "Custom fabric", fabric, err)
}

func (s *adminService) UpdateCustomFabric(ctx context.Context, id int64, form *models.ProductForm, image *shopapi.Upload) (*models.CustomFabric, error) {
	fabric, err := s.api.UpdateCustomFabric(ctx, id, form, image)
	return mutated(ctx, s, "Custom fabric", fabric, err)
}

func (s *adminService) DeleteCustomFabric(ctx context.Context, id int64) error {
	_, err := mutated(ctx, s, "Custom fabric", struct{}{}, s.api.DeleteCustomFabric(ctx, id))
	return err
}

func (s *adminService) UpdateLandingImage(ctx context.Context, category string, image shopapi.Upload) (*models.LandingImage, error) {
	if err := checkLandingCategory(category); err != nil {
		return nil, err
	}

	img, err := s.api.UpdateLandingImage(ctx, category, image)
	return mutated(ctx, s, "Landing image", img, err)
}

func (s *adminService) UpdateLandingPortrait(ctx context.Context, category string, id int64, image shopapi.Upload) (*models.LandingImage, error) {
	if err := checkLandingCategory(category); err != nil {
		return nil, err
	}

	img, err := s.api.UpdateLandingPortrait(ctx, category, id, image)
	return mutated(ctx, s, "Landing image", img, err)
}

func (s *adminService) DeleteLandingImage(ctx context.Context, id int64) error {
	_, err := mutated(ctx, s, "Landing image", struct{}{}, s.api.DeleteLandingImage(ctx, id))
	return err
}

func checkLandingCategory(category string) error {
	if !slices.Contains(models.LandingCategories, category) {
		return appErrors.AddValidationError("category", fmt.Sprintf("must be one of %v", models.LandingCategories))
	}

	return nil
}
