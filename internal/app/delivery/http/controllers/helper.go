package controllers

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func requestContext(r *http.Request, timeoutInSeconds int) (context.Context, context.CancelFunc) {
	timeout := time.Duration(timeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// logUsecaseError logs caller mistakes at warn level and everything else at error level.
func logUsecaseError(log *zap.Logger, message, requestID string, err error) {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	}
	switch {
	case exceptions.IsValidationError(err), exceptions.IsNotFoundError(err), exceptions.IsConflictError(err):
		log.Warn(message, fields...)
	default:
		log.Error(message, fields...)
	}
}
