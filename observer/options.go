package observer

import (
	"github.com/go-leo/gox/syncx/gopher"
	"github.com/go-leo/gox/syncx/gopher/sample"
)

type options struct {
	Pool       gopher.Gopher
	MaxBackoff int
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = sample.Gopher{}
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = 16
	}
	return o
}

type Option func(*options)

// Pool sets the goroutine pool used by AsyncNotify.
func Pool(pool gopher.Gopher) Option {
	return func(o *options) {
		o.Pool = pool
	}
}

// MaxBackoff caps the spin backoff used when attach and detach race.
func MaxBackoff(n int) Option {
	return func(o *options) {
		o.MaxBackoff = n
	}
}
