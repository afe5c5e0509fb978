package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestLogOperation(t *testing.T) {
	err := LogOperation(zap.NewNop(), "redis.close", "req-1", func() error { return nil })
	assert.NoError(t, err)

	closeErr := errors.New("connection reset")
	err = LogOperation(zap.NewNop(), "redis.close", "req-1", func() error { return closeErr })
	assert.ErrorIs(t, err, closeErr)
}
