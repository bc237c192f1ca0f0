package proxy

import (
	"context"

	"github.com/go-kata/patterns/decorator"
)

// Service is the subject interface shared by real services and their
// proxies, so a proxy is substitutable anywhere the real service is.
type Service[Req any, Resp any] interface {
	Invoke(ctx context.Context, req Req) (Resp, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Service.
// If f is a function with the appropriate signature, Func(f) is a Service that calls f.
type Func[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Invoke calls f(ctx, req).
func (f Func[Req, Resp]) Invoke(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

// Noop is a Service that does nothing and returns a nil error.
type Noop[Req any, Resp any] struct{}

func (Noop[Req, Resp]) Invoke(context.Context, Req) (Resp, error) {
	var resp Resp
	return resp, nil
}

// Chain layers proxies around svc, first proxy outermost.
func Chain[Req any, Resp any](svc Service[Req, Resp], proxies ...decorator.Decorator[Service[Req, Resp]]) Service[Req, Resp] {
	return decorator.Chain(svc, proxies...)
}
