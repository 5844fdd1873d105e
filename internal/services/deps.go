package service

import (
	"context"
	"errors"

	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

// CatalogAPI is the read side of the shop API.
type CatalogAPI interface {
	ListReadyMade(ctx context.Context) ([]models.ReadyMadeProduct, error)
	GetReadyMade(ctx context.Context, id int64) (*models.ReadyMadeProduct, error)
	ListFabrics(ctx context.Context) ([]models.Fabric, error)
	GetFabric(ctx context.Context, id int64) (*models.Fabric, error)
	ListCustomFabrics(ctx context.Context) ([]models.CustomFabric, error)
	ListLandingImages(ctx context.Context) ([]models.LandingImage, error)
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
}

// AdminAPI is every call that needs the admin bearer token.
type AdminAPI interface {
	Login(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminToken, error)
	Verify(ctx context.Context) (*models.AdminIdentity, error)
	Revenue(ctx context.Context) (*models.Revenue, error)

	ListOrders(ctx context.Context) ([]models.Order, error)
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

type ReceiptRepository interface {
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error
}

// upstreamError maps a shop API failure onto the error the handlers report.
// resource names the thing looked up, e.g. "Fabric".
func upstreamError(resource string, err error) error {
	switch {
	case shopapi.IsNotFound(err):
		return appErrors.NotFoundError(resource + " not found").WithError(err)
	case shopapi.IsUnauthorized(err):
		return appErrors.UnauthorizedError("Admin session is invalid or expired").WithError(err)
	}

	var apiErr *shopapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		appErr := appErrors.BadRequestError("Shop API rejected the request").WithError(err)
		if apiErr.Detail != "" {
			appErr.WithDetail(apiErr.Detail)
		}

		return appErr
	}

	return appErrors.ThirdPartyError("Shop API request failed").WithError(err)
}
