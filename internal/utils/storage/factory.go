package storage

import (
	"FoodBridge/internal/utils"
	"context"
	"fmt"
)

// New picks the backend named by STORAGE_DRIVER. An empty driver yields (nil, nil):
// callers skip uploads.
func New(ctx context.Context, cfg utils.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "":
		return nil, nil
	case "s3":
		return NewAwsS3(ctx, S3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
	case "minio":
		return NewMinio(MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
