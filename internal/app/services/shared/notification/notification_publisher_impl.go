package notification

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type notificationPublisher struct {
	Channel Channel
	Queue   string
	Log     *zap.Logger
}

func NewNotificationPublisher(channel Channel, queue string, logger *zap.Logger) contracts.NotificationPublisher {
	return &notificationPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *notificationPublisher) PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentNotification) error {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("notificationPublisher.PublishAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("notificationPublisher.PublishAppointmentEvent error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"event_type":   event.Type,
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("notificationPublisher.PublishAppointmentEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("notificationPublisher.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
	)
	return nil
}
