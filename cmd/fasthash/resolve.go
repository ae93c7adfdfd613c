package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hupe1980/fasthash/source"
	miniosrc "github.com/hupe1980/fasthash/source/minio"
	s3src "github.com/hupe1980/fasthash/source/s3"
)

const (
	schemeS3    = "s3"
	schemeMinio = "minio"
)

// resolver is a source.Store whose names are local paths or object URIs.
type resolver struct {
	local *source.LocalStore

	mu      sync.Mutex
	buckets map[string]source.Store

	// newRemote builds the store for a scheme and bucket.
	newRemote func(ctx context.Context, scheme, bucket string) (source.Store, error)
}

func newResolver() *resolver {
	return &resolver{
		local:     source.NewLocalStore(""),
		buckets:   make(map[string]source.Store),
		newRemote: dialRemote,
	}
}

func dialRemote(ctx context.Context, scheme, bucket string) (source.Store, error) {
	switch scheme {
	case schemeS3:
		return s3src.New(ctx, bucket)
	case schemeMinio:
		endpoint := os.Getenv("MINIO_ENDPOINT")
		if endpoint == "" {
			return nil, fmt.Errorf("minio://%s: MINIO_ENDPOINT not set", bucket)
		}
		return miniosrc.New(endpoint,
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			os.Getenv("MINIO_SECURE") == "true",
			bucket, "")
	}
	return nil, fmt.Errorf("unsupported scheme %q", scheme)
}

// splitURI splits scheme://bucket/key. ok is false for local paths.
func splitURI(name string) (scheme, bucket, key string, ok bool) {
	scheme, rest, found := strings.Cut(name, "://")
	if !found || (scheme != schemeS3 && scheme != schemeMinio) {
		return "", "", "", false
	}
	bucket, key, _ = strings.Cut(rest, "/")
	return scheme, bucket, key, true
}

func (r *resolver) remote(ctx context.Context, scheme, bucket string) (source.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := scheme + "://" + bucket
	if s, ok := r.buckets[id]; ok {
		return s, nil
	}
	s, err := r.newRemote(ctx, scheme, bucket)
	if err != nil {
		return nil, err
	}
	r.buckets[id] = s
	return s, nil
}

// Open implements source.Store.
func (r *resolver) Open(ctx context.Context, name string) (source.Blob, error) {
	scheme, bucket, key, ok := splitURI(name)
	if !ok {
		return r.local.Open(ctx, name)
	}
	s, err := r.remote(ctx, scheme, bucket)
	if err != nil {
		return nil, err
	}
	return s.Open(ctx, key)
}

// List implements source.Store. prefix is a directory path or a URI
// prefix; the returned names are openable by Open.
func (r *resolver) List(ctx context.Context, prefix string) ([]string, error) {
	scheme, bucket, key, ok := splitURI(prefix)
	if !ok {
		names, err := source.NewLocalStore(prefix).List(ctx, "")
		if err != nil {
			return nil, err
		}
		for i, n := range names {
			names[i] = filepath.Join(prefix, filepath.FromSlash(n))
		}
		return names, nil
	}

	s, err := r.remote(ctx, scheme, bucket)
	if err != nil {
		return nil, err
	}
	keys, err := s.List(ctx, key)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		keys[i] = scheme + "://" + path.Join(bucket, k)
	}
	return keys, nil
}

// expand turns command line arguments into openable names. Directories and
// URIs that end in '/' (or name a bare bucket) are listed.
func (r *resolver) expand(ctx context.Context, args []string) ([]string, error) {
	var names []string
	for _, arg := range args {
		if _, _, key, ok := splitURI(arg); ok {
			if key == "" || strings.HasSuffix(key, "/") {
				listed, err := r.List(ctx, arg)
				if err != nil {
					return nil, err
				}
				names = append(names, listed...)
				continue
			}
			names = append(names, arg)
			continue
		}

		fi, err := os.Stat(arg)
		if err == nil && fi.IsDir() {
			listed, err := r.List(ctx, arg)
			if err != nil {
				return nil, err
			}
			names = append(names, listed...)
			continue
		}
		names = append(names, arg)
	}
	return names, nil
}
