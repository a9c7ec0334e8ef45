package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	gw "authgate/internal/gateway"
	"authgate/internal/gateway/rejection"
)

// PanicError carries a recovered panic value and the stack at recovery.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recovery turns panics from downstream handlers into unknown rejections.
// When the handler had already started its response the panic is only
// reported. http.ErrAbortHandler is re-raised so the server can abort the
// connection.
func Recovery(rejections *rejection.Handler) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &gw.StatusWriter{ResponseWriter: w}
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				rej := rejection.Unknown(&PanicError{Value: v, Stack: debug.Stack()})
				if sw.Code != 0 {
					rejections.Report(r, rej)
					return
				}
				rejections.Reply(w, r, rej)
			}()
			next.ServeHTTP(sw, r)
		})
	}
}
