package session

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_SaveLoadDelete(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepository(client, "test:session:")

	ctx := context.Background()
	rec := &Record{
		UserJSON:     `{"id":"u-1","role":"vendor"}`,
		Token:        "access-1",
		RefreshToken: "refresh-1",
	}

	require.NoError(t, repo.Save(ctx, "sid-1", rec, 5*time.Second))

	got, err := repo.Load(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, rec.Token, got.Token)
	require.Equal(t, rec.RefreshToken, got.RefreshToken)
	require.Equal(t, rec.UserJSON, got.UserJSON)

	require.NoError(t, repo.Delete(ctx, "sid-1"))
	got2, err := repo.Load(ctx, "sid-1")
	require.NoError(t, err)
	require.Nil(t, got2)
}

func TestRedisRepository_TTLExpiry(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepository(client, "test:session:")

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, "sid-2", &Record{Token: "a"}, time.Second))

	got, err := repo.Load(ctx, "sid-2")
	require.NoError(t, err)
	require.NotNil(t, got)

	m.FastForward(2 * time.Second)

	got2, err := repo.Load(ctx, "sid-2")
	require.NoError(t, err)
	require.Nil(t, got2)
}
