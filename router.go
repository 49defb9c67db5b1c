package apidoc

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/mohae/deepcopy"
)

// Router is an http.Handler that records an EndpointDescription for every
// route it serves. It implements EndpointSource.
type Router struct {
	mux        *http.ServeMux
	middleware []Middleware
	routes     []route

	mu sync.RWMutex
}

// New creates an empty Router.
func New() *Router {
	return &Router{
		mux: http.NewServeMux(),
	}
}

// Use adds middleware to the router. Middleware is applied in the order added.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := http.Handler(r.mux)
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}
	handler.ServeHTTP(w, req)
}

// ListenAndServe starts an HTTP server on the given address.
// It blocks until the context is cancelled, then shuts down gracefully.
func (r *Router) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Endpoints returns a snapshot of every registered endpoint, skipping
// endpoints excluded from description. Response shapes are deep-copied;
// metadata items themselves are shared and treated as immutable.
func (r *Router) Endpoints() []EndpointDescription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]EndpointDescription, 0, len(r.routes))
	for i := range r.routes {
		if r.routes[i].desc.excluded() {
			continue
		}
		desc := r.routes[i].desc
		desc.Responses = deepcopy.Copy(desc.Responses).([]ResponseShape)
		desc.Metadata = slices.Clone(desc.Metadata)
		out = append(out, desc)
	}
	return out
}

// addRoute mounts rt on the mux and stores it for discovery.
func (r *Router) addRoute(rt route) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mux.Handle(rt.desc.Method+" "+rt.desc.Route, rt.handler)
	r.routes = append(r.routes, rt)
}
