package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

// HandlerFunc is the shape of every endpoint. The request is bound from
// the query string on GET and from the JSON body on POST before the
// handler runs.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// Router wraps gin and carries the base context whose values (database,
// configs, logger) are injected into every request scope.
type Router struct {
	Inner gin.IRouter
	ctx   context.Context
}

func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{Inner: gin.New(), ctx: ctx}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Use(middleware gin.HandlerFunc) {
	r.Inner.Use(middleware)
}

func (r *Router) Group(pattern string) *Router {
	return &Router{Inner: r.Inner.Group(pattern), ctx: r.ctx}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		ctx := xcontext.WithHTTPRequest(router.ctx, ginCtx.Request)

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = ginCtx.ShouldBindQuery(&req)
		case http.MethodPost:
			// Multipart endpoints read the request from the context
			// themselves and declare an empty request type.
			if ginCtx.ContentType() == gin.MIMEJSON {
				err = ginCtx.ShouldBindJSON(&req)
			}
		}

		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			writeError(ginCtx, badRequest(err))
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(ginCtx, err)
			return
		}

		ginCtx.JSON(http.StatusOK, newResponse(resp))
	}
}
