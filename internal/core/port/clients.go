package port

import (
	"context"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

type EventNotifier interface {
	NotifyFileDeletion(ctx context.Context, message *domain.DeleteFileMessage) error
	NotifyFileSend(ctx context.Context, message *domain.SendFileMessage) error
	NotifyFileAuthentication(ctx context.Context, message *domain.AuthenticateFileMessage) error
}
