package xcontext

import (
	"context"
	"net/http"
)

type requestKey struct{}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

// HTTPRequest returns the request being handled, or nil outside of a
// request scope. Only handlers that consume non-JSON bodies (multipart
// uploads) should need it.
func HTTPRequest(ctx context.Context) *http.Request {
	if r, ok := ctx.Value(requestKey{}).(*http.Request); ok {
		return r
	}

	return nil
}
