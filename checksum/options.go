package checksum

import (
	"log/slog"

	"github.com/hupe1980/fasthash"
	"github.com/hupe1980/fasthash/source"
)

type keyMode int

const (
	keysNone keyMode = iota
	keysFixed
	keysRandom
)

type options struct {
	alg              fasthash.Algorithm
	seed             []uint64
	keyMode          keyMode
	k0, k1           uint64
	concurrency      int
	ioLimit          int64
	memoryLimit      int64
	codec            source.Codec
	autoDecompress   bool
	dedup            bool
	metricsCollector MetricsCollector
	logger           *fasthash.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithAlgorithm selects the hash algorithm. If nil is passed, the registry
// default is used.
func WithAlgorithm(alg fasthash.Algorithm) Option {
	return func(o *options) {
		o.alg = alg
	}
}

// WithSeed hashes every source under the given seed lanes. The lane count
// must match the algorithm; New reports a mismatch.
func WithSeed(lanes ...uint64) Option {
	return func(o *options) {
		o.seed = lanes
		o.keyMode = keysNone
	}
}

// WithKeys derives the seed from a fixed key pair, the same way a
// fasthash.Factory does. Unseeded algorithms ignore the keys.
func WithKeys(k0, k1 uint64) Option {
	return func(o *options) {
		o.seed = nil
		o.keyMode = keysFixed
		o.k0, o.k1 = k0, k1
	}
}

// WithRandomKeys draws one key pair from the process-wide seed source when
// the engine is created. Digests are then only comparable within that
// engine.
func WithRandomKeys() Option {
	return func(o *options) {
		o.seed = nil
		o.keyMode = keysRandom
	}
}

// WithConcurrency sets how many sources are hashed at once.
// Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithIOLimit throttles source reads to bytesPerSec. Zero disables it.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

// WithMemoryLimit caps the bytes of remote objects downloaded at the same
// time. Objects larger than the limit are streamed instead.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithCodec decodes every source with c before hashing.
func WithCodec(c source.Codec) Option {
	return func(o *options) {
		o.codec = c
		o.autoDecompress = false
	}
}

// WithAutoDecompress detects the codec of each source from its magic bytes.
func WithAutoDecompress() Option {
	return func(o *options) {
		o.codec = source.CodecNone
		o.autoDecompress = true
	}
}

// WithDedup marks results whose digest was already seen in the same Run.
func WithDedup() Option {
	return func(o *options) {
		o.dedup = true
	}
}

// WithMetricsCollector configures a metrics collector. Pass nil to disable
// metrics collection.
//
//	metrics := &checksum.BasicMetricsCollector{}
//	eng, _ := checksum.New(checksum.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *fasthash.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel is a convenience wrapper for WithLogger(fasthash.NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = fasthash.NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		concurrency:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           fasthash.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = fasthash.NoopLogger()
	}
	return o
}
