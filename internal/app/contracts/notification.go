package contracts

import (
	"carepulse-service/internal/pkg/dto/requests"
	"context"
)

type NotificationPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentNotification) error
}
