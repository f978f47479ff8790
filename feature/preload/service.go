package preload

import (
	"context"
	"fmt"
	"time"

	"audiomass-server/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service resolves the configured preload URL into the address handed to the editor.
type Service struct {
	target  string
	client  storage.Client
	object  storage.ObjectRef
	presign bool
	expiry  time.Duration
	logger  *zap.Logger
}

// NewService creates a new preload service. client may be nil, in which case the target
// is always forwarded verbatim. With a client, a well-formed s3://bucket/key target is
// presigned on every resolve.
func NewService(target string, client storage.Client, expiry time.Duration, logger *zap.Logger) *Service {
	s := &Service{
		target: target,
		client: client,
		expiry: expiry,
		logger: logger,
	}
	if client != nil {
		if ref, isObject, err := storage.ParseObjectURL(target); isObject && err == nil {
			s.object = ref
			s.presign = true
		}
	}
	return s
}

// Enabled reports whether a preload URL is configured.
func (s *Service) Enabled() bool {
	return s.target != ""
}

// Target returns the configured preload URL.
func (s *Service) Target() string {
	return s.target
}

// Presigned reports whether resolves go through object storage.
func (s *Service) Presigned() bool {
	return s.presign
}

// Verify checks that a presigned target exists. Verbatim targets are not checked.
func (s *Service) Verify(ctx context.Context) error {
	if !s.presign {
		return nil
	}
	if _, err := s.client.StatObject(ctx, s.object.Bucket, s.object.Key, minio.StatObjectOptions{}); err != nil {
		return fmt.Errorf("failed to stat %s/%s: %w", s.object.Bucket, s.object.Key, err)
	}
	return nil
}

// Resolve returns the URL the editor should fetch.
func (s *Service) Resolve(ctx context.Context) (string, error) {
	if !s.presign {
		return s.target, nil
	}
	u, err := s.client.PresignedGetObject(ctx, s.object.Bucket, s.object.Key, s.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", s.object.Bucket, s.object.Key, err)
	}
	return u.String(), nil
}

// Location returns the redirect target for the root page.
func (s *Service) Location(ctx context.Context) (string, error) {
	target, err := s.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return RedirectLocation(target), nil
}
