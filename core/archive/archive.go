package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"sync-gateway/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrInvalidKey is returned for object keys outside the archive layout.
var ErrInvalidKey = errors.New("invalid archive key")

// UnknownKind is the key segment used for kind labels that cannot be a
// single path segment.
const UnknownKind = "_unknown"

// Entry describes one archived batch.
type Entry struct {
	Key          string    `json:"key"`
	Kind         string    `json:"kind"`
	BatchID      string    `json:"batch_id"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Archiver writes and reads archived payloads in a single bucket.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
}

// New creates an archiver. An empty prefix stores keys at the bucket root.
func New(client storage.Client, bucket, prefix string) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Bucket returns the target bucket name.
func (a *Archiver) Bucket() string {
	return a.bucket
}

// Key builds the object key of a batch received at the given time.
func (a *Archiver) Key(kind, batchID string, at time.Time) string {
	at = at.UTC()
	return path.Join(a.prefix, segment(kind),
		fmt.Sprintf("%04d", at.Year()),
		fmt.Sprintf("%02d", int(at.Month())),
		fmt.Sprintf("%02d", at.Day()),
		batchID+".json")
}

// segment maps a kind label onto one safe key segment.
func segment(kind string) string {
	if kind == "" || kind == "." || kind == ".." || strings.ContainsAny(kind, "/\\") {
		return UnknownKind
	}
	return kind
}

// ParseKey extracts the kind and batch ID from an object key.
func (a *Archiver) ParseKey(key string) (kind, batchID string, err error) {
	rel := strings.TrimPrefix(key, a.prefix+"/")
	if a.prefix == "" {
		rel = key
	}
	parts := strings.Split(rel, "/")
	if len(parts) != 5 || !strings.HasSuffix(parts[4], ".json") || parts[0] == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	return parts[0], strings.TrimSuffix(parts[4], ".json"), nil
}

// Archive uploads payload and returns its key.
func (a *Archiver) Archive(ctx context.Context, kind, batchID string, at time.Time, payload []byte) (string, error) {
	key := a.Key(kind, batchID, at)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
		UserMetadata: map[string]string{
			"kind":     kind,
			"batch-id": batchID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive %s batch %s: %w", kind, batchID, err)
	}
	return key, nil
}

// Fetch downloads an archived payload.
func (a *Archiver) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// List returns archived batches, newest first. An empty kind lists all kinds.
// limit <= 0 means no limit.
func (a *Archiver) List(ctx context.Context, kind string, limit int) ([]Entry, error) {
	prefix := a.prefix
	if kind != "" {
		prefix = path.Join(prefix, segment(kind))
	}
	if prefix != "" {
		prefix += "/"
	}

	var entries []Entry
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archive: %w", obj.Err)
		}
		objKind, batchID, err := a.ParseKey(obj.Key)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Key:          obj.Key,
			Kind:         objKind,
			BatchID:      batchID,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastModified.After(entries[j].LastModified)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// EnsureBucket creates the bucket when it does not exist.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}
