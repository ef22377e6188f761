package minio

import "time"

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second

	// DefaultEndpointPort is appended to an endpoint without a port.
	DefaultEndpointPort = ":9000"
	// MaxPresignedExpiry is the longest expiry S3 accepts for presigned URLs.
	MaxPresignedExpiry = 7 * 24 * time.Hour
	// DefaultPresignedExpiry is used when a request leaves Expiry unset.
	DefaultPresignedExpiry = time.Hour
)
