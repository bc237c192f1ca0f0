package middleware

import "context"

// Handler is the terminal operation a middleware chain eventually calls.
type Handler[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Middleware intercepts a call on its way to the handler. It may mutate the
// request, short-circuit by not calling next, or inspect the response on the
// way back.
type Middleware[Req any, Resp any] func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error)

// Chain folds the middlewares into a single Middleware that executes them in
// the given order.
func Chain[Req any, Resp any](middlewares ...Middleware[Req, Resp]) Middleware[Req, Resp] {
	switch len(middlewares) {
	case 0:
		return func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
			return next(ctx, req)
		}
	case 1:
		return middlewares[0]
	default:
		return func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
			return middlewares[0](ctx, req, chainNext(middlewares, 0, next))
		}
	}
}

// Apply wraps handler with the middlewares, first middleware outermost.
func Apply[Req any, Resp any](handler Handler[Req, Resp], middlewares ...Middleware[Req, Resp]) Handler[Req, Resp] {
	mdw := Chain(middlewares...)
	return func(ctx context.Context, req Req) (Resp, error) {
		return mdw(ctx, req, handler)
	}
}

func chainNext[Req any, Resp any](middlewares []Middleware[Req, Resp], curr int, final Handler[Req, Resp]) Handler[Req, Resp] {
	if curr == len(middlewares)-1 {
		return final
	}
	return func(ctx context.Context, req Req) (Resp, error) {
		return middlewares[curr+1](ctx, req, chainNext(middlewares, curr+1, final))
	}
}
