package errorx

import "fmt"

// Error is the only error type crossing the domain boundary. The router
// translates it to the client response envelope; any other error is mapped
// to Unknown before it reaches the client.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
