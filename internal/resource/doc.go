// Package resource bounds what a batch hash run may consume.
//
//   - Workers: a weighted semaphore caps concurrently hashed sources
//   - Memory: sources that must be buffered (remote objects, decompressed
//     streams) reserve their size first; Acquire blocks until it fits
//   - IO: a token bucket throttles bytes read from sources
//
// A nil *Controller imposes no limits.
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers:         8,
//	    MemoryLimitBytes:   1 << 30,
//	    IOLimitBytesPerSec: 200 << 20,
//	})
//	r := rc.Reader(ctx, src)
package resource
