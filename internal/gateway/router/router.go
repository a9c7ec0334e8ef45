package router

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"authgate/internal/gateway"
	"authgate/internal/gateway/rejection"
)

// HandlerFunc handles a request and returns an error to reject it.
// A returned error is answered through the rejection handler; the handler
// must not have written a response in that case.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Router dispatches by path pattern and method. Unmatched paths and methods
// are answered as rejections rather than plain-text errors.
type Router struct {
	mux        *http.ServeMux
	rejections *rejection.Handler
	routes     map[string]*route
}

type route struct {
	pattern  string
	handlers map[string]http.Handler
}

// New creates a Router that replies to failures through rejections.
func New(rejections *rejection.Handler) *Router {
	rt := &Router{
		mux:        http.NewServeMux(),
		rejections: rejections,
		routes:     make(map[string]*route),
	}
	rt.mux.Handle("/", rejections.NotFoundHandler())
	return rt
}

// Handle registers h for method and path. path uses http.ServeMux pattern
// syntax without a method prefix; "/" matches only the root.
// Registering the same method and path twice panics.
func (rt *Router) Handle(method, path string, h HandlerFunc) {
	rt.Mount(method, path, rt.adapt(h))
}

// Mount registers a plain http.Handler, for wrapping with middleware.
func (rt *Router) Mount(method, path string, h http.Handler) {
	pattern := path
	if pattern == "/" {
		pattern = "/{$}"
	}
	method = strings.ToUpper(method)

	rte, ok := rt.routes[pattern]
	if !ok {
		rte = &route{pattern: pattern, handlers: make(map[string]http.Handler)}
		rt.routes[pattern] = rte
		rt.mux.Handle(pattern, rt.dispatch(rte))
	}
	if _, dup := rte.handlers[method]; dup {
		panic(fmt.Sprintf("router: duplicate route %s %s", method, path))
	}
	rte.handlers[method] = h
}

// Get registers h for GET requests on path.
func (rt *Router) Get(path string, h HandlerFunc) { rt.Handle(http.MethodGet, path, h) }

// Post registers h for POST requests on path.
func (rt *Router) Post(path string, h HandlerFunc) { rt.Handle(http.MethodPost, path, h) }

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

func (rt *Router) adapt(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			rt.rejections.ReplyError(w, r, err)
		}
	})
}

func (rt *Router) dispatch(rte *route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gateway.SetRoute(r.Context(), rte.pattern)

		h, ok := rte.handlers[r.Method]
		if !ok && r.Method == http.MethodHead {
			h, ok = rte.handlers[http.MethodGet]
		}
		if !ok {
			w.Header().Set("Allow", rte.allow())
			rt.rejections.Reply(w, r, rejection.MethodNotAllowed())
			return
		}
		h.ServeHTTP(w, r)
	})
}

func (rte *route) allow() string {
	methods := make([]string, 0, len(rte.handlers)+1)
	for m := range rte.handlers {
		methods = append(methods, m)
	}
	if _, ok := rte.handlers[http.MethodGet]; ok {
		if _, ok := rte.handlers[http.MethodHead]; !ok {
			methods = append(methods, http.MethodHead)
		}
	}
	slices.Sort(methods)
	return strings.Join(methods, ", ")
}
