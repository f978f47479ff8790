package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client defines the interface for storage operations.
type Client interface {
	// StatObject returns metadata of an object, failing if it does not exist.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	// PresignedGetObject returns a time-limited GET URL for an object.
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Connections are lazy; the first stat or presign is what reaches the endpoint.

	return &minioClientWrapper{Client: minioClient}, nil
}

type minioClientWrapper struct {
	*minio.Client
}

// PresignExpiry returns the configured presign lifetime, falling back to one hour.
func (c Config) PresignExpiry() time.Duration {
	if c.PresignExpirySeconds <= 0 {
		return time.Hour
	}
	return time.Duration(c.PresignExpirySeconds) * time.Second
}

// ObjectRef names one object in a bucket.
type ObjectRef struct {
	Bucket string
	Key    string
}

// ParseObjectURL splits an s3://bucket/key URL. The boolean reports whether raw uses the
// s3 scheme at all; the error is set when it does but bucket or key is missing.
func ParseObjectURL(raw string) (ObjectRef, bool, error) {
	u, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(u.Scheme, "s3") {
		return ObjectRef{}, false, nil
	}
	ref := ObjectRef{Bucket: u.Host, Key: strings.TrimPrefix(u.Path, "/")}
	if ref.Bucket == "" || ref.Key == "" {
		return ObjectRef{}, true, fmt.Errorf("malformed object url %q: expected s3://bucket/key", raw)
	}
	return ref, true, nil
}
