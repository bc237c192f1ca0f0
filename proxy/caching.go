package proxy

import (
	"context"
	"sync"

	"github.com/go-kata/patterns/decorator"
)

type cacheOptions struct {
	maxEntries int
}

// CacheOption configures a caching proxy.
type CacheOption func(*cacheOptions)

// CacheSize bounds the number of responses the proxy retains. When the bound
// is reached the cache is flushed before the new response is stored. A size
// of zero or less means unbounded.
func CacheSize(n int) CacheOption {
	return func(o *cacheOptions) {
		o.maxEntries = n
	}
}

// Caching returns a proxy that remembers responses per request and skips the
// real service on repeats. Errors are not cached.
func Caching[Req comparable, Resp any](opts ...CacheOption) decorator.Decorator[Service[Req, Resp]] {
	var o cacheOptions
	for _, opt := range opts {
		opt(&o)
	}
	return decorator.Func[Service[Req, Resp]](func(svc Service[Req, Resp]) Service[Req, Resp] {
		return &cachingService[Req, Resp]{
			svc:        svc,
			responses:  make(map[Req]Resp),
			maxEntries: o.maxEntries,
		}
	})
}

type cachingService[Req comparable, Resp any] struct {
	svc        Service[Req, Resp]
	mu         sync.RWMutex
	responses  map[Req]Resp
	maxEntries int
}

func (c *cachingService[Req, Resp]) Invoke(ctx context.Context, req Req) (Resp, error) {
	c.mu.RLock()
	resp, ok := c.responses[req]
	c.mu.RUnlock()
	if ok {
		return resp, nil
	}
	resp, err := c.svc.Invoke(ctx, req)
	if err != nil {
		return resp, err
	}
	c.mu.Lock()
	if c.maxEntries > 0 && len(c.responses) >= c.maxEntries {
		c.responses = make(map[Req]Resp, c.maxEntries)
	}
	c.responses[req] = resp
	c.mu.Unlock()
	return resp, nil
}
