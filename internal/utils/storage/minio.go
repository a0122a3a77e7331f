package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type (
	MinioConfig struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
	}

	minioAPI interface {
		PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
		RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	}

	minioStorage struct {
		client   minioAPI
		endpoint string
		bucket   string
		useSSL   bool
	}
)

func NewMinio(cfg MinioConfig) (Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &minioStorage{
		client:   client,
		endpoint: cfg.Endpoint,
		bucket:   cfg.Bucket,
		useSSL:   cfg.UseSSL,
	}, nil
}

func (m *minioStorage) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	key, err := objectKey(fileName, file, folder, allowed)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = m.client.PutObject(ctx, m.bucket, key, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType(file),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}

func (m *minioStorage) DeleteFile(ctx context.Context, objectKey string) error {
	return m.client.RemoveObject(ctx, m.bucket, objectKey, minio.RemoveObjectOptions{})
}

func (m *minioStorage) GetPublicLinkKey(objectKey string) string {
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, m.bucket, objectKey)
}
