package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSetCache(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := NewRedisClient(ctx, mr.Addr(), "", 0)
	require.NoError(t, err)
	defer client.Close()

	c := NewRedisSetCache(client, "svc:")

	require.NoError(t, c.SAdd(ctx, "emails", "a@x.io"))
	ok, err := c.SIsMember(ctx, "emails", "a@x.io")
	require.NoError(t, err)
	assert.True(t, ok)

	members, err := mr.Members("svc:emails")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.io"}, members)

	require.NoError(t, c.SRem(ctx, "emails", "a@x.io"))
	ok, err = c.SIsMember(ctx, "emails", "a@x.io")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSetCacheUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := NewRedisClient(ctx, mr.Addr(), "", 0)
	require.NoError(t, err)
	defer client.Close()
	c := NewRedisSetCache(client, "")

	mr.Close()
	_, err = c.SIsMember(ctx, "emails", "a@x.io")
	assert.Error(t, err)
}
