// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that audio kept in a private AWS S3 or MinIO bucket can
// be preloaded by the editor: an s3://bucket/key preload URL is turned into a presigned
// HTTPS URL the browser can fetch directly.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - StatObject: Verifies that an object exists and is readable.
//   - PresignedGetObject: Produces a time-limited GET URL for an object.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	ref, ok, err := storage.ParseObjectURL("s3://audio/takes/a.mp3")
//	u, err := client.PresignedGetObject(ctx, ref.Bucket, ref.Key, cfg.Storage.PresignExpiry(), nil)
package storage
