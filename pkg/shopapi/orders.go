package shopapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopdarven/storefront/internal/models"
)

const ordersPath = "/orders"

// CreateOrder submits a checkout. It is the only call the storefront makes per order and is never retried.
func (c *Client) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.sendJSON(ctx, http.MethodPost, ordersPath, req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, ordersPath, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.getJSON(ctx, idPath(ordersPath, id), &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrderStatus moves an order to status. The API reads the status from the query string.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	query := url.Values{"status": {string(status)}}

	var order models.Order
	if err := c.sendJSON(ctx, http.MethodPatch, idPath(ordersPath, id)+"?"+query.Encode(), nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.delete(ctx, idPath(ordersPath, id))
}
