package cart_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdarven/storefront/internal/cache"
	"github.com/shopdarven/storefront/internal/cart"
	"github.com/shopdarven/storefront/internal/config"
	"github.com/shopdarven/storefront/internal/models"
)

func setupRedisPersister(t *testing.T) (cart.Persister, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	c := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute})

	return cart.NewPersister(c, 720*time.Hour), mock
}

func TestRedisPersister(t *testing.T) {
	ctx := t.Context()
	key := "cart:" + cartID
	doc := &models.CartDocument{
		ID:        cartID,
		Items:     []models.LineItem{readyMadeItem("rm-1", 5000, 1), customItem("custom-1", 3000, 2)},
		UpdatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	t.Run("Save writes the whole document with the cart TTL", func(t *testing.T) {
		// Arrange
		persister, mock := setupRedisPersister(t)
		mock.ExpectSet(key, data, 720*time.Hour).SetVal("OK")

		// Act
		err := persister.Save(ctx, doc)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Load decodes the tagged details", func(t *testing.T) {
		// Arrange
		persister, mock := setupRedisPersister(t)
		mock.ExpectGet(key).SetVal(string(data))

		// Act
		got, err := persister.Load(ctx, cartID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, doc.Items, got.Items)
		assert.True(t, doc.UpdatedAt.Equal(got.UpdatedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Load reports a missing cart", func(t *testing.T) {
		persister, mock := setupRedisPersister(t)
		mock.ExpectGet(key).RedisNil()

		got, err := persister.Load(ctx, cartID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, cart.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Load wraps redis failures", func(t *testing.T) {
		persister, mock := setupRedisPersister(t)
		expectedErr := errors.New("connection refused")
		mock.ExpectGet(key).SetErr(expectedErr)

		_, err := persister.Load(ctx, cartID)

		assert.ErrorIs(t, err, expectedErr)
		assert.NotErrorIs(t, err, cart.ErrNotFound)
	})

	t.Run("Delete removes the key", func(t *testing.T) {
		persister, mock := setupRedisPersister(t)
		mock.ExpectDel(key).SetVal(1)

		require.NoError(t, persister.Delete(ctx, cartID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
