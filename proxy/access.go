package proxy

import (
	"context"
	"errors"

	"github.com/go-kata/patterns/decorator"
)

// ErrAccessDenied is returned by a protection proxy for requests its policy
// rejects; the real service never sees them.
var ErrAccessDenied = errors.New("proxy: access denied")

// Protecting returns a proxy that forwards only requests allow approves.
func Protecting[Req any, Resp any](allow func(ctx context.Context, req Req) bool) decorator.Decorator[Service[Req, Resp]] {
	return decorator.Func[Service[Req, Resp]](func(svc Service[Req, Resp]) Service[Req, Resp] {
		return Func[Req, Resp](func(ctx context.Context, req Req) (Resp, error) {
			if !allow(ctx, req) {
				var zero Resp
				return zero, ErrAccessDenied
			}
			return svc.Invoke(ctx, req)
		})
	})
}
