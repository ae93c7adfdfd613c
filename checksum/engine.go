package checksum

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fasthash"
	"github.com/hupe1980/fasthash/internal/resource"
	"github.com/hupe1980/fasthash/registry"
	"github.com/hupe1980/fasthash/source"
)

const readBufferSize = 64 << 10

// Result is the outcome of hashing one source.
type Result struct {
	Name string
	// Size is the number of bytes hashed, after decoding.
	Size   int64
	Digest fasthash.Digest
	Codec  source.Codec
	// Duplicate is set when an earlier source in the same Run had the same
	// digest. Only populated with WithDedup.
	Duplicate bool
	Err       error
}

// Engine hashes sources with one configured algorithm and seed.
// It is safe for concurrent use.
type Engine struct {
	opts   options
	alg    fasthash.Algorithm
	k0, k1 uint64
	rc     *resource.Controller
	logger *fasthash.Logger
}

// New creates an engine. It fails if the configured seed does not fit the
// algorithm.
func New(optFns ...Option) (*Engine, error) {
	o := applyOptions(optFns)

	alg := o.alg
	if alg == nil {
		alg = registry.Default.Algorithm()
	}
	if o.seed != nil {
		if _, err := alg.NewHasherWithSeed(o.seed); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		opts: o,
		alg:  alg,
		k0:   o.k0,
		k1:   o.k1,
		rc: resource.NewController(resource.Config{
			MaxWorkers:         int64(o.concurrency),
			MemoryLimitBytes:   o.memoryLimit,
			IOLimitBytesPerSec: o.ioLimit,
		}),
		logger: o.logger.WithAlgorithm(alg.Name()),
	}
	if o.keyMode == keysRandom {
		e.k0, e.k1 = fasthash.RandomKeys()
	}
	return e, nil
}

// Algorithm returns the configured algorithm.
func (e *Engine) Algorithm() fasthash.Algorithm { return e.alg }

// NewHasher returns a fresh streaming state with the engine's seed.
func (e *Engine) NewHasher() fasthash.Hasher {
	switch {
	case e.opts.keyMode != keysNone:
		return e.alg.NewHasherWithKeys(e.k0, e.k1)
	case e.opts.seed != nil:
		// Validated by New.
		h, _ := e.alg.NewHasherWithSeed(e.opts.seed)
		return h
	}
	return e.alg.NewHasher()
}

// Sum hashes everything r yields. name only labels the result.
func (e *Engine) Sum(ctx context.Context, name string, r io.Reader) Result {
	start := time.Now()
	res := e.sumReader(ctx, name, r)
	e.record(ctx, start, res)
	return res
}

// SumBlob hashes one blob, in place when it is Mappable and downloaded
// under a memory reservation when it is Downloadable.
func (e *Engine) SumBlob(ctx context.Context, name string, b source.Blob) Result {
	start := time.Now()
	res := e.sumBlob(ctx, name, b)
	e.record(ctx, start, res)
	return res
}

// SumNamed opens name in store and hashes it.
func (e *Engine) SumNamed(ctx context.Context, store source.Store, name string) Result {
	start := time.Now()
	res := e.sumNamed(ctx, store, name)
	e.record(ctx, start, res)
	return res
}

func (e *Engine) record(ctx context.Context, start time.Time, res Result) {
	e.opts.metricsCollector.RecordSum(res.Size, time.Since(start), res.Err)
	e.logger.LogSum(ctx, res.Name, res.Size, res.Digest, res.Err)
}

// Run hashes names concurrently and returns one result per name, in input
// order. Failures of single sources are reported in their Result; the
// returned error is only set when ctx ends before every source was hashed.
func (e *Engine) Run(ctx context.Context, store source.Store, names []string) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(names))

	var g errgroup.Group
	scheduled := 0
	for i, name := range names {
		if err := e.rc.AcquireWorker(ctx); err != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			defer e.rc.ReleaseWorker()
			results[i] = e.SumNamed(ctx, store, name)
			return nil
		})
	}
	_ = g.Wait()

	for i := scheduled; i < len(names); i++ {
		results[i] = Result{Name: names[i], Err: context.Cause(ctx)}
	}

	failed, duplicates := 0, 0
	var seen *Dedup
	if e.opts.dedup {
		seen = NewDedup()
	}
	for i := range results {
		if results[i].Err != nil {
			failed++
			continue
		}
		if seen != nil && seen.Add(results[i].Digest) {
			results[i].Duplicate = true
			duplicates++
		}
	}

	e.opts.metricsCollector.RecordBatch(len(names), failed, duplicates, time.Since(start))
	e.logger.LogBatch(ctx, len(names), failed, duplicates)

	return results, ctx.Err()
}

// RunPrefix hashes every blob the store lists under prefix.
func (e *Engine) RunPrefix(ctx context.Context, store source.Store, prefix string) ([]Result, error) {
	names, err := store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, store, names)
}

func (e *Engine) sumNamed(ctx context.Context, store source.Store, name string) Result {
	b, err := store.Open(ctx, name)
	if err != nil {
		return Result{Name: name, Err: err}
	}
	defer b.Close()
	return e.sumBlob(ctx, name, b)
}

func (e *Engine) sumBlob(ctx context.Context, name string, b source.Blob) Result {
	if m, ok := b.(source.Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return Result{Name: name, Err: err}
		}
		return e.sumBytes(ctx, name, data)
	}

	if d, ok := b.(source.Downloadable); ok && e.fitsMemory(b.Size()) {
		size := b.Size()
		if err := e.rc.AcquireMemory(ctx, size); err != nil {
			return Result{Name: name, Err: err}
		}
		defer e.rc.ReleaseMemory(size)

		data, err := d.Download(ctx)
		if err != nil {
			return Result{Name: name, Err: err}
		}
		return e.sumBytes(ctx, name, data)
	}

	rc, err := source.Reader(ctx, b)
	if err != nil {
		return Result{Name: name, Err: err}
	}
	defer rc.Close()
	return e.sumReader(ctx, name, rc)
}

func (e *Engine) fitsMemory(size int64) bool {
	return e.opts.memoryLimit <= 0 || size <= e.opts.memoryLimit
}

func (e *Engine) sumBytes(ctx context.Context, name string, data []byte) Result {
	res := Result{Name: name, Codec: e.opts.codec}
	if err := e.rc.AcquireIO(ctx, len(data)); err != nil {
		res.Err = err
		return res
	}
	if e.opts.autoDecompress {
		res.Codec = source.Sniff(data)
	}

	if res.Codec == source.CodecNone {
		h := e.NewHasher()
		_, _ = h.Write(data)
		res.Size = int64(len(data))
		res.Digest = h.Digest()
		return res
	}

	res.Size, res.Digest, res.Err = e.decode(bytes.NewReader(data), res.Codec)
	return res
}

func (e *Engine) sumReader(ctx context.Context, name string, r io.Reader) Result {
	res := Result{Name: name, Codec: e.opts.codec}
	br := bufio.NewReaderSize(e.rc.Reader(ctx, r), readBufferSize)
	if e.opts.autoDecompress {
		// Short inputs return fewer bytes and an error; they sniff as none.
		prefix, _ := br.Peek(4)
		res.Codec = source.Sniff(prefix)
	}
	res.Size, res.Digest, res.Err = e.decode(br, res.Codec)
	return res
}

func (e *Engine) decode(r io.Reader, codec source.Codec) (int64, fasthash.Digest, error) {
	dr, err := source.Decompress(codec, r)
	if err != nil {
		return 0, nil, err
	}
	defer dr.Close()

	h := e.NewHasher()
	n, err := h.ReadFrom(dr)
	if err != nil {
		return n, nil, err
	}
	return n, h.Digest(), nil
}
