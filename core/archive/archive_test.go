package archive

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"sync-gateway/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	a := New(nil, "bucket", "/sync/")
	at := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("X", -2*3600))

	assert.Equal(t, "sync/Remain/2024/03/10/b-1.json", a.Key("Remain", "b-1", at))
	assert.Equal(t, "Remain/2024/03/10/b-1.json", New(nil, "bucket", "").Key("Remain", "b-1", at))
}

func TestKey_UnsafeKind(t *testing.T) {
	a := New(nil, "bucket", "sync")
	at := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	for _, kind := range []string{"../../other/x", "..", ".", "", "a/b", `a\b`} {
		key := a.Key(kind, "id", at)
		assert.Equal(t, "sync/_unknown/2026/10/16/id.json", key, kind)

		parsed, _, err := a.ParseKey(key)
		require.NoError(t, err)
		assert.Equal(t, UnknownKind, parsed)
	}
}

func TestParseKey(t *testing.T) {
	a := New(nil, "bucket", "sync")

	kind, batch, err := a.ParseKey("sync/Order/2024/01/02/abc.json")
	require.NoError(t, err)
	assert.Equal(t, "Order", kind)
	assert.Equal(t, "abc", batch)

	for _, key := range []string{"sync/Order/abc.json", "other/Order/2024/01/02/abc.json", "sync/Order/2024/01/02/abc.txt"} {
		_, _, err := a.ParseKey(key)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestArchive(t *testing.T) {
	client := new(mocks.Client)
	a := New(client, "sync-archive", "sync")
	at := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	payload := []byte(`[{"Ref":"a"}]`)

	client.On("PutObject", mock.Anything, "sync-archive", "sync/Product/2024/03/09/batch.json",
		mock.Anything, int64(len(payload)), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "application/json" && opts.UserMetadata["kind"] == "Product"
		})).Return(minio.UploadInfo{}, nil)

	key, err := a.Archive(context.Background(), "Product", "batch", at, payload)

	require.NoError(t, err)
	assert.Equal(t, "sync/Product/2024/03/09/batch.json", key)
	client.AssertExpectations(t)
}

func TestArchive_Error(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := New(client, "b", "sync").Archive(context.Background(), "Shop", "x", time.Now(), []byte(`[]`))

	assert.ErrorContains(t, err, "access denied")
}

func TestFetch(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "b", "sync/Shop/2024/01/01/x.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`[{"Ref":"s"}]`)), nil)

	data, err := New(client, "b", "sync").Fetch(context.Background(), "sync/Shop/2024/01/01/x.json")

	require.NoError(t, err)
	assert.Equal(t, `[{"Ref":"s"}]`, string(data))
}

func TestList(t *testing.T) {
	client := new(mocks.Client)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "sync/Price/2024/01/01/a.json", Size: 10, LastModified: older}
	ch <- minio.ObjectInfo{Key: "sync/Price/2024/01/01/b.json", Size: 20, LastModified: newer}
	ch <- minio.ObjectInfo{Key: "sync/Price/readme.txt"}
	close(ch)
	client.On("ListObjects", mock.Anything, "b", minio.ListObjectsOptions{Prefix: "sync/Price/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))

	entries, err := New(client, "b", "sync").List(context.Background(), "Price", 0)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].BatchID)
	assert.Equal(t, "Price", entries[0].Kind)
	assert.Equal(t, int64(10), entries[1].Size)
}

func TestEnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)

		require.NoError(t, New(client, "b", "").EnsureBucket(context.Background()))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "b", mock.Anything).Return(nil)

		require.NoError(t, New(client, "b", "").EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})
}
