// Package cart holds the line items of one cart session.
package cart

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopdarven/storefront/internal/models"
)

var (
	// ErrInvalidItem wraps a line item that fails its own checks.
	ErrInvalidItem = errors.New("invalid line item")
	// ErrQuantityLimit is returned when a line would exceed models.MaxLineQuantity.
	ErrQuantityLimit = fmt.Errorf("line quantity is limited to %d", models.MaxLineQuantity)
)

// Store is the owned state of one cart session. A Store is not safe for concurrent use;
// each request loads its own.
type Store struct {
	id        string
	items     []models.LineItem
	updatedAt time.Time
	persister Persister
	now       func() time.Time
}

// Load reads the persisted cart for id. A session without a saved cart starts empty.
func Load(ctx context.Context, persister Persister, id string) (*Store, error) {
	store := &Store{
		id:        id,
		persister: persister,
		now:       time.Now,
	}

	doc, err := persister.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return store, nil
		}

		return nil, err
	}

	store.items = doc.Items
	store.updatedAt = doc.UpdatedAt

	return store, nil
}

func (s *Store) ID() string {
	return s.id
}

func (s *Store) UpdatedAt() time.Time {
	return s.updatedAt
}

// Items returns a deep copy of the line items in insertion order.
func (s *Store) Items() []models.LineItem {
	out := make([]models.LineItem, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}

	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

// AddItem appends item. An item whose id is already in the cart has its quantity added
// to the existing line instead, up to models.MaxLineQuantity.
func (s *Store) AddItem(ctx context.Context, item models.LineItem) error {
	if err := item.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	next := s.Items()

	if i := s.index(item.ID); i >= 0 {
		if next[i].Quantity > models.MaxLineQuantity-item.Quantity {
			return ErrQuantityLimit
		}

		next[i].Quantity += item.Quantity
	} else {
		next = append(next, item.Clone())
	}

	return s.commit(ctx, next)
}

// RemoveItem deletes the line with the given id. Removing an absent id is a no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}

	return s.commit(ctx, slices.Delete(s.Items(), i, i+1))
}

// UpdateQuantity sets the quantity of a line; quantity below 1 removes it.
// An absent id is a no-op. Quantities above models.MaxLineQuantity are rejected.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, id)
	}

	if quantity > models.MaxLineQuantity {
		return ErrQuantityLimit
	}

	i := s.index(id)
	if i < 0 {
		return nil
	}

	next := s.Items()
	next[i].Quantity = quantity

	return s.commit(ctx, next)
}

// TotalPrice is Σ price × quantity over the current lines.
func (s *Store) TotalPrice() models.Amount {
	var total models.Amount

	for _, item := range s.items {
		total += item.LineTotal()
	}

	return total
}

// Clear empties the cart and drops its persisted document.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.persister.Delete(ctx, s.id); err != nil {
		return err
	}

	s.items = nil
	s.updatedAt = s.now()

	return nil
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(item models.LineItem) bool {
		return item.ID == id
	})
}

// commit persists next and only then makes it the current state, so a failed save
// leaves the cart as it was.
func (s *Store) commit(ctx context.Context, next []models.LineItem) error {
	updatedAt := s.now()

	doc := &models.CartDocument{
		ID:        s.id,
		Items:     next,
		UpdatedAt: updatedAt,
	}

	if err := s.persister.Save(ctx, doc); err != nil {
		return err
	}

	s.items = next
	s.updatedAt = updatedAt

	return nil
}
