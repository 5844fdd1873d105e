package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/shopdarven/storefront/internal/api/middleware"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateCartRequest builds a request already bound to cartID, as CartSession would leave it.
func CreateCartRequest(method, target string, body io.Reader, cartID string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	ctx := middleware.WithLogger(req.Context(), discardLogger())
	ctx = middleware.WithCartID(ctx, cartID)

	return req.WithContext(ctx)
}

// CreateAdminRequest builds a request carrying an admin token, as AdminAuth would leave it.
func CreateAdminRequest(method, target string, body io.Reader, token string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	ctx := context.WithValue(req.Context(), middleware.LoggerKey, discardLogger())
	ctx = shopapi.WithToken(ctx, token)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	ctx := context.WithValue(req.Context(), middleware.LoggerKey, discardLogger())

	return req.WithContext(ctx)
}
