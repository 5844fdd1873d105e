package shopapi

import (
	"context"
	"net/http"

	"github.com/shopdarven/storefront/internal/models"
)

func (c *Client) Login(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminToken, error) {
	var token models.AdminToken
	if err := c.sendJSON(ctx, http.MethodPost, "/admin/login", req, &token); err != nil {
		return nil, err
	}

	return &token, nil
}

// Verify asks the API who the token in ctx belongs to.
func (c *Client) Verify(ctx context.Context) (*models.AdminIdentity, error) {
	var identity models.AdminIdentity
	if err := c.getJSON(ctx, "/admin/verify", &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

func (c *Client) Revenue(ctx context.Context) (*models.Revenue, error) {
	var revenue models.Revenue
	if err := c.getJSON(ctx, "/admin/revenue", &revenue); err != nil {
		return nil, err
	}

	return &revenue, nil
}
