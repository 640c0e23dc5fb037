package service

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/port"
)

// EventService builds the canonical message for each document action and
// publishes it exactly once. A failed publish is reported to the caller; the
// client retries the whole request if it wants another attempt.
type EventService struct {
	notifier port.EventNotifier
	validate *validator.Validate
}

func NewEventService(notifier port.EventNotifier) *EventService {
	validate := validator.New()
	// Report fields under their wire names so input errors match the form
	// fields the client actually sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &EventService{
		notifier: notifier,
		validate: validate,
	}
}

func (s *EventService) DeleteFile(ctx context.Context, identity *domain.Identity, fileName string) error {
	message := &domain.DeleteFileMessage{
		UserID:   identity.UserID,
		FileName: fileName,
	}
	if err := s.checkFields(message); err != nil {
		return err
	}

	if err := s.notifier.NotifyFileDeletion(ctx, message); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"user_id":   identity.UserID,
		"file_name": fileName,
	}).Info("File deletion event published")
	return nil
}

func (s *EventService) SendFile(ctx context.Context, identity *domain.Identity, fileName, toEmail string) error {
	message := &domain.SendFileMessage{
		Action:   domain.ActionSendFile,
		ToEmail:  toEmail,
		UserID:   identity.UserID,
		FileName: fileName,
	}
	if err := s.checkFields(message); err != nil {
		return err
	}

	if err := s.notifier.NotifyFileSend(ctx, message); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"user_id":   identity.UserID,
		"file_name": fileName,
		"to_email":  toEmail,
	}).Info("File send event published")
	return nil
}

func (s *EventService) AuthenticateFile(ctx context.Context, identity *domain.Identity, urlDocument, fileName string) error {
	message := &domain.AuthenticateFileMessage{
		UserID:      identity.UserID,
		URLDocument: urlDocument,
		FileName:    fileName,
	}
	if err := s.checkFields(message); err != nil {
		return err
	}

	if err := s.notifier.NotifyFileAuthentication(ctx, message); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"user_id":   identity.UserID,
		"file_name": fileName,
	}).Info("File authentication event published")
	return nil
}

// checkFields turns a validation failure into a client input error naming the
// first missing field.
func (s *EventService) checkFields(message any) error {
	err := s.validate.Struct(message)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &domain.MissingFieldError{Field: verrs[0].Field()}
	}
	return err
}
