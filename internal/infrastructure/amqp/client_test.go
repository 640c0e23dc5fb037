package amqp

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

// unreachableURL points at a port that was listening a moment ago and is now
// closed, so dials fail fast with a refusal instead of hanging.
func unreachableURL(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return "amqp://guest:guest@" + addr + "/"
}

func TestChannel_BrokerUnreachable_FailsWithinTimeout(t *testing.T) {
	client := NewClient(unreachableURL(t), time.Second)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	_, err := client.Channel(ctx)
	elapsed := time.Since(start)

	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "dial", connErr.Op)
	assert.Less(t, elapsed, 5*time.Second)
}

func TestChannel_AfterClose(t *testing.T) {
	client := NewClient(unreachableURL(t), time.Second)
	require.NoError(t, client.Close())

	_, err := client.Channel(context.Background())

	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestNextBackoff_GrowthAndCap(t *testing.T) {
	backoff := initialBackoff
	var observed []time.Duration
	for i := 0; i < 6; i++ {
		backoff = nextBackoff(backoff)
		observed = append(observed, backoff)
	}

	assert.Equal(t, []time.Duration{
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
		maxBackoff,
		maxBackoff,
	}, observed)
}

func TestChannel_WaiterHonorsOwnTimeout(t *testing.T) {
	client := NewClient(unreachableURL(t), time.Second)
	defer client.Close()

	// First acquirer becomes the dialer and keeps retrying for two seconds.
	dialerDone := make(chan struct{})
	go func() {
		defer close(dialerDone)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := client.Channel(ctx)
		assert.Error(t, err)
	}()

	// Give the dialer time to claim the dial before the waiter arrives.
	time.Sleep(50 * time.Millisecond)

	waiterCtx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Channel(waiterCtx)
	elapsed := time.Since(start)

	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Less(t, elapsed, time.Second, "waiter must not be pinned to the dialer's deadline")

	<-dialerDone
}

func TestClose_DoesNotWaitForInflightDial(t *testing.T) {
	client := NewClient(unreachableURL(t), time.Second)

	dialerDone := make(chan struct{})
	go func() {
		defer close(dialerDone)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := client.Channel(ctx)
		assert.Error(t, err)
	}()

	time.Sleep(50 * time.Millisecond)

	start := time.Now()
	require.NoError(t, client.Close())
	assert.Less(t, time.Since(start), time.Second)

	<-dialerDone
}

func TestRetryable(t *testing.T) {
	assert.False(t, retryable(&amqp.Error{Code: amqp.AccessRefused, Reason: "ACCESS_REFUSED"}))
	assert.False(t, retryable(&amqp.Error{Code: amqp.NotAllowed, Reason: "NOT_ALLOWED"}))
	assert.True(t, retryable(&amqp.Error{Code: amqp.ConnectionForced, Reason: "CONNECTION_FORCED"}))
	assert.True(t, retryable(errors.New("dial tcp: connection refused")))
}

func TestConnectionError_NeverExposesCredentials(t *testing.T) {
	client := NewClient(unreachableURL(t), time.Second)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := client.Channel(ctx)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "guest:guest")
}
