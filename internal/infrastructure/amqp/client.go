package amqp

import (
	"context"
	"errors"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

const (
	initialBackoff = 100 * time.Millisecond
	maxBackoff     = 2 * time.Second
)

var errClientClosed = errors.New("client is closed")

// Client manages the single shared RabbitMQ connection. The connection is
// dialed lazily and redialed when a publish discovers it dead. Reconnection
// is single-flight: one goroutine dials while the others wait on its result,
// each bounded by its own context.
type Client struct {
	url         string
	dialTimeout time.Duration

	mu      sync.Mutex
	conn    *amqp.Connection
	dialing chan struct{}
	closed  bool
}

// NewClient creates a client without touching the network. The first Channel
// call establishes the connection.
func NewClient(url string, dialTimeout time.Duration) *Client {
	return &Client{
		url:         url,
		dialTimeout: dialTimeout,
	}
}

// Channel returns a fresh channel over the shared connection, dialing or
// redialing if needed. The caller's context bounds the whole acquisition;
// every failure is a *domain.ConnectionError.
func (c *Client) Channel(ctx context.Context) (*amqp.Channel, error) {
	// Acquisition must never block indefinitely, even for callers that pass
	// a background context.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.dialTimeout)
		defer cancel()
	}

	conn, err := c.connection(ctx)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, &domain.ConnectionError{Op: "channel", Err: err}
	}
	return ch, nil
}

// connection returns the live connection, electing one dialer when none
// exists. Waiters block on the dialer's result or their own context,
// whichever comes first; the mutex is never held across network I/O.
func (c *Client) connection(ctx context.Context) (*amqp.Connection, error) {
	for {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return nil, &domain.ConnectionError{Op: "dial", Err: errClientClosed}
		}
		if c.conn != nil && !c.conn.IsClosed() {
			conn := c.conn
			c.mu.Unlock()
			return conn, nil
		}
		if c.dialing != nil {
			done := c.dialing
			c.mu.Unlock()
			select {
			case <-done:
				continue
			case <-ctx.Done():
				return nil, &domain.ConnectionError{Op: "dial", Err: ctx.Err()}
			}
		}
		done := make(chan struct{})
		c.dialing = done
		c.mu.Unlock()

		conn, err := c.dial(ctx)

		c.mu.Lock()
		c.dialing = nil
		if err == nil {
			if c.closed {
				conn.Close()
				err = &domain.ConnectionError{Op: "dial", Err: errClientClosed}
			} else {
				c.conn = conn
				go c.watchClose(conn)
				log.Info("AMQP connection established")
			}
		}
		c.mu.Unlock()
		close(done)

		if err != nil {
			return nil, err
		}
		return conn, nil
	}
}

// dial attempts connection establishment with bounded exponential backoff
// until the context expires or the error is not worth retrying.
func (c *Client) dial(ctx context.Context) (*amqp.Connection, error) {
	backoff := initialBackoff
	for {
		conn, err := amqp.DialConfig(c.url, amqp.Config{
			Dial: amqp.DefaultDial(c.dialTimeout),
		})
		if err == nil {
			return conn, nil
		}

		log.WithError(err).Warn("AMQP dial failed")
		if ctx.Err() != nil || !retryable(err) {
			return nil, &domain.ConnectionError{Op: "dial", Err: err}
		}

		select {
		case <-ctx.Done():
			return nil, &domain.ConnectionError{Op: "dial", Err: ctx.Err()}
		case <-time.After(backoff):
		}
		backoff = nextBackoff(backoff)
	}
}

// nextBackoff doubles the wait between dial attempts up to maxBackoff.
func nextBackoff(backoff time.Duration) time.Duration {
	backoff *= 2
	if backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}

// retryable reports whether a dial error is worth another attempt within the
// caller's deadline. Credential rejection will not fix itself by retrying.
func retryable(err error) bool {
	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		return amqpErr.Code != amqp.AccessRefused && amqpErr.Code != amqp.NotAllowed
	}
	return true
}

// watchClose logs the close reason and lets the next acquisition redial.
func (c *Client) watchClose(conn *amqp.Connection) {
	err := <-conn.NotifyClose(make(chan *amqp.Error, 1))
	if err != nil {
		log.WithError(err).Error("AMQP connection closed")
	}
}

// Close shuts the connection down for good; subsequent acquisitions fail and
// an in-flight dial is discarded when it completes.
func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil || conn.IsClosed() {
		return nil
	}
	if err := conn.Close(); err != nil {
		return err
	}
	log.Info("AMQP client closed")
	return nil
}
