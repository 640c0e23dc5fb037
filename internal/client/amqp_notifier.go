package client

import (
	"context"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, queue string, message any) error
}

// AMQPNotifier maps each document action onto its queue. The mapping is
// static: deleteFile goes to delete_file, sendFile to notifications,
// authenticateFile to authenticate_file.
type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyFileDeletion(ctx context.Context, message *domain.DeleteFileMessage) error {
	return n.publisher.Publish(ctx, domain.QueueDeleteFile, message)
}

func (n *AMQPNotifier) NotifyFileSend(ctx context.Context, message *domain.SendFileMessage) error {
	return n.publisher.Publish(ctx, domain.QueueNotifications, message)
}

func (n *AMQPNotifier) NotifyFileAuthentication(ctx context.Context, message *domain.AuthenticateFileMessage) error {
	return n.publisher.Publish(ctx, domain.QueueAuthenticateFile, message)
}
