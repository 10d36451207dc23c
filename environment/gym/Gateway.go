package gym

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// defaultGateway is shared by all Envs in the process which are not
// given their own Gateway
var defaultGateway = NewGateway()

// Gateway serialises all access to an external environment runtime.
// Each call to Do acquires the Gateway for the duration of the call
// only, so calls issued from many goroutines and many Envs interleave
// safely but never run in parallel.
//
// The calling goroutine is locked to its OS thread while it holds the
// Gateway, since some runtimes (e.g. an embedded Python interpreter)
// are thread-affine. The Gateway is reentrant: a runtime which itself
// steps another Env on the same Gateway re-enters it from the holding
// thread instead of deadlocking.
type Gateway struct {
	mu     sync.Mutex
	holder int64 // thread id of the holder, 0 when free
	depth  int   // nested Do calls by the holder
}

// NewGateway returns a new Gateway
func NewGateway() *Gateway {
	return &Gateway{}
}

// DefaultGateway returns the process-wide Gateway
func DefaultGateway() *Gateway {
	return defaultGateway
}

// Do runs f while holding the Gateway. The Gateway is released on every
// exit path. If f panics, the panic is recovered and returned as an
// error.
//
// f may call Do on the same Gateway; the nested call runs immediately
// on the holding thread.
func (g *Gateway) Do(f func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tid := threadID()
	if atomic.LoadInt64(&g.holder) == tid {
		g.depth++
		defer func() { g.depth-- }()
		return call(f)
	}

	g.mu.Lock()
	atomic.StoreInt64(&g.holder, tid)
	g.depth = 1
	defer func() {
		g.depth = 0
		atomic.StoreInt64(&g.holder, 0)
		g.mu.Unlock()
	}()

	return call(f)
}

// call runs f, converting a panic into an error
func call(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("runtime panicked: %v", r)
		}
	}()
	return f()
}
