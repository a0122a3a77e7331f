package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrStorageDisabled    = errors.New("object storage is not configured")
)

// Storage keeps uploaded files (food photos) in an object store.
type Storage interface {
	UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error)
	DeleteFile(ctx context.Context, objectKey string) error
	GetPublicLinkKey(objectKey string) string
}

// objectKey validates the extension and builds folder/fileName.ext.
func objectKey(fileName string, file *multipart.FileHeader, folder string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(allowed) > 0 && !isAllowed(ext, allowed) {
		return "", fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, ext)
	}
	key := fileName + ext
	if folder != "" {
		key = folder + "/" + key
	}
	return key, nil
}

func isAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if a == ext {
			return true
		}
	}
	return false
}

func contentType(file *multipart.FileHeader) string {
	if ct := file.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
