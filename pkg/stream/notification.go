package stream

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=notification.go -package=stream -destination=mock_notification.go

type Notifiable interface {
	NotificationKey() string
	NotificationType() string
	Payload() any
}

type Notifier interface {
	Notify(ctx context.Context, notifiable Notifiable) error
	Close()
}

type Envelope struct {
	Name      string          `json:"name"`
	EmittedAt strfmt.DateTime `json:"emitted_at"`
	Payload   interface{}     `json:"payload"`
	Metadata  interface{}     `json:"metadata,omitempty"`
}

type NotificationStream struct {
	metadata interface{}
	writer   EventStreamWriter
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewNotificationStream accepts a nil writer, in which case notifications are dropped
func NewNotificationStream(writer EventStreamWriter, logger logrus.FieldLogger, metadata interface{}) *NotificationStream {
	return &NotificationStream{
		writer:   writer,
		metadata: metadata,
		log:      logger,
		now:      time.Now,
	}
}

func (s *NotificationStream) Notify(ctx context.Context, notifiable Notifiable) error {
	if s.writer == nil {
		return nil
	}
	if notifiable == nil || reflect.ValueOf(notifiable).IsNil() {
		return fmt.Errorf("trying to notify on nil notifiable")
	}
	key := notifiable.NotificationKey()
	envelope := &Envelope{
		Name:      notifiable.NotificationType(),
		EmittedAt: strfmt.DateTime(s.now().UTC()),
		Payload:   notifiable.Payload(),
		Metadata:  s.metadata,
	}

	if err := s.writer.Write(ctx, []byte(key), envelope); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"type": notifiable.NotificationType(),
			"key":  key,
		}).Warn("failed to stream notification")
		return err
	}
	return nil
}

func (s *NotificationStream) Close() {
	if s.writer != nil {
		s.writer.Close()
	}
}
