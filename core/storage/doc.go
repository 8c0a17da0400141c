// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so that the
// listing image store and the storage integrity check can be tested with the
// mock in core/storage/mocks. Both AWS S3 and self-hosted MinIO are supported.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
