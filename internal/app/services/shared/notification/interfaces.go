package notification

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp091.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}
