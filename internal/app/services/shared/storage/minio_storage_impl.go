package storage

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient    *minio.Client
	PublicEndpoint string
	ProjectID      string
	Log            *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, publicEndpoint, projectID string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient:    minioClient,
		PublicEndpoint: strings.TrimRight(publicEndpoint, "/"),
		ProjectID:      projectID,
		Log:            logger,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	info, err := m.MinioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadObject error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	m.Log.Info("minioStorage.UploadObject succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, info.Key),
	)
	return info.Key, nil
}

func (m *minioStorage) DeleteObject(ctx context.Context, bucketName, objectName string) error {
	err := m.MinioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioDeleteObject(err, bucketName)
	}
	return nil
}

// BuildObjectURL returns {endpoint}/{bucket}/{object}?project={projectID}.
func (m *minioStorage) BuildObjectURL(bucketName, objectName string) string {
	return BuildObjectURL(m.PublicEndpoint, m.ProjectID, bucketName, objectName)
}

func BuildObjectURL(publicEndpoint, projectID, bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s?project=%s",
		strings.TrimRight(publicEndpoint, "/"),
		url.PathEscape(bucketName),
		url.PathEscape(objectName),
		url.QueryEscape(projectID),
	)
}
