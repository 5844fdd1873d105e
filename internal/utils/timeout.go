package utils

import (
	"context"
	"time"
)

// Receipts are written on the checkout path.
const DefaultDBTimeout = 3 * time.Second

// WithDBTimeout bounds a single database call. An earlier deadline on ctx still wins.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}
