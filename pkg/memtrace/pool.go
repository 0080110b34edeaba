// Package memtrace provides a buffer pool that writes one log record per
// acquisition and release, for chasing buffer churn and leaks in signal
// pipelines.
//
// Tracing is an opt-in decorator on the caller's side; the logger itself
// knows nothing about it. With the threshold below DebugLevel each pool
// event costs a single atomic load.
package memtrace

import (
	"fmt"
	"sync"

	"github.com/acomms-io/modemlog"
)

const (
	// DefaultBufferSize is the base capacity used when NewPool receives a
	// non-positive size.
	DefaultBufferSize = 1024

	// poolCallDepth makes trace records report the Get/Put call site
	// rather than this file.
	poolCallDepth = 2
)

// Pool hands out byte buffers of a shared base capacity and logs a
// MEM:GET record for every acquisition and a MEM:PUT record for every
// release, at debug level. All methods are safe for concurrent use.
type Pool struct {
	size int
	log  *modemlog.Logger
	pool sync.Pool
}

// NewPool returns a tracing pool whose buffers start at capacity size.
// A nil logger falls back to the package default logger.
func NewPool(size int, logger *modemlog.Logger) *Pool {
	if size <= 0 {
		size = DefaultBufferSize
	}

	if logger == nil {
		logger = modemlog.Default()
	}

	tracked := &Pool{
		size: size,
		log:  logger,
	}
	tracked.pool = sync.Pool{
		New: func() any {
			buf := make([]byte, 0, size)

			return &buf
		},
	}

	return tracked
}

// Get returns an empty buffer with at least the pool's base capacity.
// The recorded size is the buffer's usable capacity, which exceeds the
// base for recycled buffers that grew in a previous use.
func (p *Pool) Get() []byte {
	buf := *(p.pool.Get().(*[]byte)) //nolint:forcetypeassert // The pool only ever stores *[]byte.
	buf = buf[:0]

	_ = p.log.Output(poolCallDepth, modemlog.DebugLevel,
		fmt.Sprintf("MEM:GET %p (%d bytes)", buf, cap(buf)))

	return buf
}

// Put records the release of buf and returns it to the pool for reuse.
func (p *Pool) Put(buf []byte) {
	_ = p.log.Output(poolCallDepth, modemlog.DebugLevel,
		fmt.Sprintf("MEM:PUT %p", buf))

	p.pool.Put(&buf)
}

// Size reports the pool's base buffer capacity.
func (p *Pool) Size() int {
	return p.size
}
