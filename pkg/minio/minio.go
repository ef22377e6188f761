package minio

import (
	"context"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// EnsureBucket creates bucketName if it does not exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if bucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return handleMinIOError(err, "bucket_exists")
	}
	if exists {
		return nil
	}
	return handleMinIOError(
		m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}),
		"make_bucket",
	)
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}
	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}
	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
		Metadata:     req.Metadata,
	}, nil
}

func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if req.BucketName == "" || req.ObjectName == "" {
		return nil, NewInvalidInputError("bucket name and object name are required")
	}
	expiry := req.Expiry
	if expiry <= 0 {
		expiry = DefaultPresignedExpiry
	}
	if expiry > MaxPresignedExpiry {
		expiry = MaxPresignedExpiry
	}

	u, err := m.client.PresignedGetObject(ctx, req.BucketName, req.ObjectName, expiry, nil)
	if err != nil {
		return nil, handleMinIOError(err, "presign_get")
	}
	return &PresignedURLResponse{URL: u.String(), ExpiresAt: time.Now().Add(expiry)}, nil
}

func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	return handleMinIOError(
		m.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}),
		"delete_file",
	)
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	_, err := m.client.ListBuckets(ctx)
	return handleMinIOError(err, "health_check")
}

func validateUploadRequest(req *UploadRequest) error {
	switch {
	case req == nil:
		return NewInvalidInputError("request is required")
	case req.BucketName == "":
		return NewInvalidInputError("bucket name is required")
	case req.ObjectName == "":
		return NewInvalidInputError("object name is required")
	case req.Reader == nil:
		return NewInvalidInputError("reader is required")
	case req.Size <= 0:
		return NewInvalidInputError("size must be positive")
	case strings.HasPrefix(req.ObjectName, "/") || strings.HasSuffix(req.ObjectName, "/"):
		return NewInvalidInputError("object name cannot start or end with '/'")
	}
	if req.ContentType == "" {
		req.ContentType = "application/octet-stream"
	}
	return nil
}
