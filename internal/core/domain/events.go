package domain

// Queue names the gateway publishes to. Downstream consumers own the
// processing side; the gateway only guarantees the message reached the broker.
const (
	QueueDeleteFile       = "delete_file"
	QueueNotifications    = "notifications"
	QueueAuthenticateFile = "authenticate_file"
)

const ActionSendFile = "sendFile"

// DeleteFileMessage asks downstream to remove a user's file from the bucket.
type DeleteFileMessage struct {
	UserID   string `json:"user_id" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
}

// SendFileMessage asks the notification consumer to mail a file to a recipient.
type SendFileMessage struct {
	Action   string `json:"action" validate:"required"`
	ToEmail  string `json:"to_email" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
}

// AuthenticateFileMessage asks downstream to run document authentication
// against the uploaded file at URLDocument.
type AuthenticateFileMessage struct {
	UserID      string `json:"user_id" validate:"required"`
	URLDocument string `json:"url_document" validate:"required"`
	FileName    string `json:"file_name" validate:"required"`
}
