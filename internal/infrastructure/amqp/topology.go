package amqp

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

// GatewayQueues are the queues the gateway publishes to. They are declared
// up front so consumers can bind before the first request arrives, and again
// on every publish, which is a no-op once they exist.
var GatewayQueues = []string{
	domain.QueueDeleteFile,
	domain.QueueNotifications,
	domain.QueueAuthenticateFile,
}

// TopologyManager declares the gateway's queues at startup.
type TopologyManager struct {
	client *Client
}

func NewTopologyManager(client *Client) *TopologyManager {
	return &TopologyManager{
		client: client,
	}
}

// Setup declares every gateway queue durable. Redeclaration with identical
// parameters never fails and never alters queued messages.
func (t *TopologyManager) Setup(ctx context.Context) error {
	ch, err := t.client.Channel(ctx)
	if err != nil {
		return err
	}
	defer ch.Close()

	for _, queue := range GatewayQueues {
		if err := declareQueue(ch, queue); err != nil {
			return err
		}
	}

	log.Info("AMQP topology setup completed")
	return nil
}

// declareQueue declares a durable queue.
func declareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return &domain.ConnectionError{Op: "declare", Err: fmt.Errorf("queue %q: %w", name, err)}
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}
