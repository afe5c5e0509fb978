package contracts

import (
	"context"
	"io"
)

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	DeleteObject(ctx context.Context, bucketName, objectName string) error
	BuildObjectURL(bucketName, objectName string) string
}
