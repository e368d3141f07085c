package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	_, err = NewRedisClient(context.Background(), mr.Addr(), "", 0)
	assert.Error(t, err)
}

func TestHealthMonitor_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHealthMonitor(nil, client, time.Hour)
	h.Start(ctx)

	status := h.Status()
	require.NotNil(t, status.Redis)
	assert.True(t, *status.Redis)
	assert.False(t, status.Mongo)
	assert.False(t, h.Healthy())
	assert.False(t, status.CheckedAt.IsZero())
}

func TestHealthMonitor_RedisOptional(t *testing.T) {
	h := NewHealthMonitor(nil, nil, time.Hour)
	h.check(context.Background())
	assert.Nil(t, h.Status().Redis)
}
