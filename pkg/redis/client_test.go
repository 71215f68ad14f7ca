package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	srv := miniredis.RunT(t)
	client := NewFromAddr(srv.Addr())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestJSONCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	type doc struct {
		Title string `json:"title"`
		Beds  int    `json:"beds"`
	}

	key := client.CacheKey("properties", "all")
	require.NoError(t, client.SetJSON(ctx, key, []doc{{Title: "Villa Aurelia", Beds: 6}}, time.Minute))

	var out []doc
	require.NoError(t, client.GetJSON(ctx, key, &out))
	require.Len(t, out, 1)
	require.Equal(t, "Villa Aurelia", out[0].Title)

	require.NoError(t, client.Del(ctx, key))
	err := client.GetJSON(ctx, key, &out)
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestPublishSubscribe(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	channel := client.TicketRepliesChannel("ticket-1")
	sub, err := client.Subscribe(ctx, channel)
	require.NoError(t, err)
	defer sub.Close()

	// Wait for the subscription before publishing.
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Publish(ctx, channel, `{"message":"hello"}`))

	select {
	case msg := <-sub.Channel():
		require.Equal(t, channel, msg.Channel)
		require.Equal(t, `{"message":"hello"}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestSetNX(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	key := client.IdempotencyKey("notifications", "event-1")
	ok, err := client.SetNX(ctx, key, "1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = client.SetNX(ctx, key, "1", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.IdempotencyKey("scope", "id"); got != "lx:idempotency:scope:id" {
		t.Fatalf("unexpected idempotency key %s", got)
	}
	if got := client.CacheKey("properties", "all"); got != "lx:cache:properties:all" {
		t.Fatalf("unexpected cache key %s", got)
	}
	if got := client.TicketRepliesChannel("abc"); got != "lx:tickets:abc:replies" {
		t.Fatalf("unexpected channel %s", got)
	}
}
