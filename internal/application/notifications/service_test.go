package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotifications(t *testing.T) (*Service, *time.Time) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	svc := &Service{Rdb: rdb, Now: func() time.Time { return now }}
	return svc, &now
}

func TestShowAndList(t *testing.T) {
	svc, _ := setupNotifications(t)
	ctx := context.Background()

	require.NoError(t, svc.Show(ctx, "u1", "Added \"MacBook\" to wishlist ❤️", KindSuccess))
	require.NoError(t, svc.Show(ctx, "u1", "Removed from wishlist", KindInfo))

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Added \"MacBook\" to wishlist ❤️", got[0].Message)
	assert.Equal(t, KindSuccess, got[0].Kind)
	assert.Equal(t, "Removed from wishlist", got[1].Message)
	assert.Equal(t, KindInfo, got[1].Kind)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestList_OtherUserSeesNothing(t *testing.T) {
	svc, _ := setupNotifications(t)
	ctx := context.Background()

	require.NoError(t, svc.Show(ctx, "u1", "hello", KindInfo))
	got, err := svc.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_ExpiresAfterTTL(t *testing.T) {
	svc, now := setupNotifications(t)
	ctx := context.Background()

	require.NoError(t, svc.Show(ctx, "u1", "first", KindSuccess))
	*now = now.Add(2 * time.Second)
	require.NoError(t, svc.Show(ctx, "u1", "second", KindSuccess))

	// 3.5s after the first: only the second survives
	*now = now.Add(1500 * time.Millisecond)
	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Message)

	// and independently, the second expires too
	*now = now.Add(2 * time.Second)
	got, err = svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDismiss(t *testing.T) {
	svc, _ := setupNotifications(t)
	ctx := context.Background()

	require.NoError(t, svc.Show(ctx, "u1", "to dismiss", KindWarning))
	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, svc.Dismiss(ctx, "u1", got[0].ID))
	got, err = svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDismiss_UnknownID(t *testing.T) {
	svc, _ := setupNotifications(t)
	err := svc.Dismiss(context.Background(), "u1", "nope")
	assert.Equal(t, ErrNotFound, err)
}

func TestShow_UnknownKindDefaultsToSuccess(t *testing.T) {
	svc, _ := setupNotifications(t)
	ctx := context.Background()

	require.NoError(t, svc.Show(ctx, "u1", "msg", "shouting"))
	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, KindSuccess, got[0].Kind)
}
