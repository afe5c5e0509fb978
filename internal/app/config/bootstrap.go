package config

import (
	"carepulse-service/internal/pkg/utils"
	"context"
	"errors"

	"go.uber.org/zap"
)

// Shutdown closes every driver client even when an earlier one fails.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var errs []error
	if b.MongoDB != nil {
		errs = append(errs, utils.LogOperation(logger, "mongodb.disconnect", "", func() error {
			return b.MongoDB.Disconnect(ctx)
		}))
	}
	if b.Redis != nil {
		errs = append(errs, utils.LogOperation(logger, "redis.close", "", b.Redis.Close))
	}
	if b.RabbitMQ != nil {
		errs = append(errs, utils.LogOperation(logger, "rabbitmq.close", "", b.RabbitMQ.Close))
	}

	if b.Logger != nil {
		// Sync on stdout/stderr returns EINVAL on some platforms.
		_ = b.Logger.Sync()
	}
	return errors.Join(errs...)
}
