package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	assert.Error(t, Init("not-a-redis-url", ""))

	srv := miniredis.RunT(t)
	assert.NoError(t, Init("redis://"+srv.Addr(), ""))
	assert.NotNil(t, GetClient())
}

func TestClientHelpers(t *testing.T) {
	srv := miniredis.RunT(t)
	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	SetClient(cli)
	defer cli.Close()

	ctx := context.Background()

	assert.NoError(t, Set(ctx, "k", "v", time.Minute))

	got, err := Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", got)

	ok, err := SetNX(ctx, "k", "other", time.Minute)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = SetNX(ctx, "fresh", "v2", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, Del(ctx, "k"))
	_, err = Get(ctx, "k")
	assert.ErrorIs(t, err, goredis.Nil)
}
