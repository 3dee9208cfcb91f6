package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCache_Get(t *testing.T) {
	t.Run("Hit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := NewRedisCache(db, "engine:")

		mock.ExpectGet("engine:schedule:abc").SetVal(`{"ok":true}`)

		val, err := cache.Get(context.Background(), "schedule:abc")

		assert.NoError(t, err)
		assert.Equal(t, []byte(`{"ok":true}`), val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := NewRedisCache(db, "engine:")

		mock.ExpectGet("engine:schedule:abc").RedisNil()

		val, err := cache.Get(context.Background(), "schedule:abc")

		assert.ErrorIs(t, err, ErrCacheMiss)
		assert.Nil(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := NewRedisCache(db, "engine:")

		mock.ExpectGet("engine:schedule:abc").SetErr(errors.New("connection refused"))

		_, err := cache.Get(context.Background(), "schedule:abc")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCache_Set(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := NewRedisCache(db, "engine:")
		value := []byte(`[1,2,3]`)

		mock.ExpectSet("engine:projection:xyz", value, 10*time.Minute).SetVal("OK")

		err := cache.Set(context.Background(), "projection:xyz", value, 10*time.Minute)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := NewRedisCache(db, "engine:")
		value := []byte(`[1,2,3]`)

		mock.ExpectSet("engine:projection:xyz", value, time.Minute).SetErr(errors.New("READONLY"))

		err := cache.Set(context.Background(), "projection:xyz", value, time.Minute)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCache_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCache(db, "")

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, cache.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
