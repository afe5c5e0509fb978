package storage

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	log.Println("Successfully connected to minio")
	return minioClient
}

// EnsureBucket creates bucketName when it does not exist yet. It reports whether a bucket was created.
func EnsureBucket(ctx context.Context, minioClient *minio.Client, bucketName string) (bool, error) {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	if exists {
		return false, nil
	}

	err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return false, exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	return true, nil
}
