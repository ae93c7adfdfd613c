package minio

import (
	"io"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fasthash/source"
)

// newTestStore connects to the server named by MINIO_ENDPOINT or skips.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "fasthash-test"
	}

	s, err := New(endpoint, os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), false, bucket, t.Name())
	require.NoError(t, err)

	ctx := t.Context()
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		t.Skipf("minio not reachable: %v", err)
	}
	if !exists {
		require.NoError(t, s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}
	return s
}

func TestStore(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()

	require.NoError(t, s.Put(ctx, "a.bin", []byte("hello world")))
	require.NoError(t, s.Put(ctx, "empty.bin", nil))
	t.Cleanup(func() {
		_ = s.Delete(ctx, "a.bin")
		_ = s.Delete(ctx, "empty.bin")
	})

	b, err := s.Open(ctx, "a.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(11), b.Size())

	rc, err := b.ReadRange(ctx, 0, b.Size())
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello world", string(got))

	e, err := s.Open(ctx, "empty.bin")
	require.NoError(t, err)
	rc, err = e.ReadRange(ctx, 0, 0)
	require.NoError(t, err)
	got, err = io.ReadAll(rc)
	require.NoError(t, err)
	assert.Empty(t, got)

	names, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.bin", "empty.bin"}, names)

	_, err = s.Open(ctx, "missing.bin")
	assert.ErrorIs(t, err, source.ErrNotFound)
}
