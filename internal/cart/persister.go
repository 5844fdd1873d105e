package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopdarven/storefront/internal/cache"
	"github.com/shopdarven/storefront/internal/models"
)

var ErrNotFound = errors.New("cart not found")

// Persister is the persistence boundary of a cart session: the whole document is
// loaded once and written back after every mutation.
type Persister interface {
	Load(ctx context.Context, id string) (*models.CartDocument, error)
	Save(ctx context.Context, doc *models.CartDocument) error
	Delete(ctx context.Context, id string) error
}

type cachePersister struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewPersister stores cart documents under cart:<id>. Every save refreshes the TTL,
// so an abandoned cart expires ttl after its last change.
func NewPersister(c cache.Cache, ttl time.Duration) Persister {
	return &cachePersister{cache: c, ttl: ttl}
}

func (p *cachePersister) Load(ctx context.Context, id string) (*models.CartDocument, error) {
	var doc models.CartDocument

	found, err := p.cache.Get(ctx, cache.Key(cache.CartKeyPrefix, id), &doc)
	if err != nil {
		return nil, fmt.Errorf("loading cart %s: %w", id, err)
	}

	if !found {
		return nil, ErrNotFound
	}

	return &doc, nil
}

func (p *cachePersister) Save(ctx context.Context, doc *models.CartDocument) error {
	if err := p.cache.Set(ctx, cache.Key(cache.CartKeyPrefix, doc.ID), doc, p.ttl); err != nil {
		return fmt.Errorf("saving cart %s: %w", doc.ID, err)
	}

	return nil
}

func (p *cachePersister) Delete(ctx context.Context, id string) error {
	if err := p.cache.Delete(ctx, cache.Key(cache.CartKeyPrefix, id)); err != nil {
		return fmt.Errorf("deleting cart %s: %w", id, err)
	}

	return nil
}
