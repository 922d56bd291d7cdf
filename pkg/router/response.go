package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zogakzip-lab/backend/pkg/errorx"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{Code: 0, Data: data}
}

func badRequest(err error) error {
	return errorx.New(errorx.BadRequest, "Invalid request: %v", err)
}

// httpStatus maps application error codes onto HTTP statuses. Clients
// are expected to branch on the envelope code, the status is a courtesy.
func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ginCtx *gin.Context, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	ginCtx.JSON(httpStatus(errx.Code), response{
		Code:  int64(errx.Code),
		Error: errx.Message,
	})
}
