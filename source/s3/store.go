package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/fasthash/internal/conv"
	"github.com/hupe1980/fasthash/source"
)

// API is the subset of the S3 client the store uses.
type API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type options struct {
	prefix      string
	region      string
	partSize    int64
	concurrency int
}

// Option configures New.
type Option func(*options)

// WithPrefix scopes the store to keys below prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithRegion overrides the region from the default AWS configuration.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithDownloadPartSize sets the ranged-GET size used by Download.
func WithDownloadPartSize(n int64) Option {
	return func(o *options) { o.partSize = n }
}

// WithDownloadConcurrency sets the parallel GETs used by Download.
func WithDownloadConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// Store implements source.Store for S3.
type Store struct {
	client     API
	bucket     string
	prefix     string
	downloader *manager.Downloader
}

// New loads the default AWS configuration (environment, shared config,
// instance role) and returns a store for bucket.
func New(ctx context.Context, bucket string, optFns ...Option) (*Store, error) {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}

	var cfgOpts []func(*config.LoadOptions) error
	if o.region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(o.region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, optFns...), nil
}

// NewStore wraps an existing client.
func NewStore(client API, bucket string, optFns ...Option) *Store {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	return &Store{
		client: client,
		bucket: bucket,
		prefix: o.prefix,
		downloader: manager.NewDownloader(client, func(d *manager.Downloader) {
			if o.partSize > 0 {
				d.PartSize = o.partSize
			}
			if o.concurrency > 0 {
				d.Concurrency = o.concurrency
			}
		}),
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open stats the object and returns a blob handle. No data is read yet.
func (s *Store) Open(ctx context.Context, name string) (source.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, source.ErrNotFound)
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, source.ErrNotFound)
		}
		return nil, err
	}

	return &blob{
		store: s,
		key:   key,
		size:  aws.ToInt64(head.ContentLength),
	}, nil
}

// List returns object names below prefix, relative to the store prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)
	if strings.HasSuffix(prefix, "/") && !strings.HasSuffix(fullPrefix, "/") {
		fullPrefix += "/"
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			rel := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			rel = strings.TrimPrefix(rel, "/")
			if rel != "" && !strings.HasSuffix(rel, "/") {
				keys = append(keys, rel)
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}

type blob struct {
	store *Store
	key   string
	size  int64
}

func (b *blob) Close() error { return nil }

func (b *blob) Size() int64 { return b.size }

// ReadRange issues a ranged GET.
func (b *blob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off >= b.size || length <= 0 {
		return io.NopCloser(strings.NewReader("")), nil
	}
	end := off + length - 1
	if end >= b.size {
		end = b.size - 1
	}

	resp, err := b.store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.store.bucket),
		Key:    aws.String(b.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, end)),
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Download fetches the whole object with parallel ranged GETs.
func (b *blob) Download(ctx context.Context) ([]byte, error) {
	size, err := conv.Int64ToInt(b.size)
	if err != nil {
		return nil, fmt.Errorf("s3: download %s: %w", b.key, err)
	}
	buf := manager.NewWriteAtBuffer(make([]byte, 0, size))
	n, err := b.store.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(b.store.bucket),
		Key:    aws.String(b.key),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes()[:n], nil
}
