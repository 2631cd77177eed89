// Package storage wraps the MinIO Go client behind a small interface.
//
// The gateway only needs a handful of object operations to archive inbound
// payloads and to read them back for replay, so Client exposes just those.
// Tests use the testify mock in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
