package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"events-marketplace/internal/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisEventCache_GetListing(t *testing.T) {
	ctx := context.Background()
	key := "events:published:20:0"
	listing := &EventListing{
		Events: []*models.Event{{ID: 1, Title: "Rock Fest", Status: models.StatusPublished}},
		Total:  25,
	}
	payload, err := json.Marshal(listing)
	require.NoError(t, err)

	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewRedisEventCache(client, quietLogger())

		mock.ExpectGet(key).SetVal(string(payload))

		got, ok := cache.GetListing(ctx, key)
		require.True(t, ok)
		require.Len(t, got.Events, 1)
		assert.Equal(t, "Rock Fest", got.Events[0].Title)
		assert.Equal(t, 25, got.Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewRedisEventCache(client, quietLogger())

		mock.ExpectGet(key).RedisNil()

		_, ok := cache.GetListing(ctx, key)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt payload is dropped", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewRedisEventCache(client, quietLogger())

		mock.ExpectGet(key).SetVal("{not json")
		mock.ExpectDel(key).SetVal(1)

		_, ok := cache.GetListing(ctx, key)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisEventCache_SetListing(t *testing.T) {
	ctx := context.Background()
	key := "events:published:20:0"
	listing := &EventListing{
		Events: []*models.Event{{ID: 1, Title: "Rock Fest", Status: models.StatusPublished}},
		Total:  25,
	}
	payload, err := json.Marshal(listing)
	require.NoError(t, err)

	client, mock := redismock.NewClientMock()
	cache := NewRedisEventCache(client, quietLogger())

	mock.ExpectSet(key, payload, 2*time.Minute).SetVal("OK")

	cache.SetListing(ctx, key, listing, 2*time.Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisEventCache_Invalidate(t *testing.T) {
	ctx := context.Background()

	client, mock := redismock.NewClientMock()
	cache := NewRedisEventCache(client, quietLogger())

	keys := []string{"events:published:20:0", "events:published:20:20"}
	mock.ExpectScan(0, listingKeyPrefix+"*", 0).SetVal(keys, 0)
	mock.ExpectDel(keys[0]).SetVal(1)
	mock.ExpectDel(keys[1]).SetVal(1)

	cache.Invalidate(ctx)
	assert.NoError(t, mock.ExpectationsWereMet())
}
