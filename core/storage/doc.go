// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface used by the snapshot feature to
// write and read restaurant trees. It works against AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider so snapshot tests can use
// the testify mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the snapshot bucket is present before an export.
//   - PutObject: upload a snapshot document.
//   - GetObject: read a snapshot document back as a stream.
//   - ListObjects: enumerate snapshots under the configured prefix.
//   - RemoveObject: delete a snapshot.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
