package apidoc

import "net/http"

// Registrar is the interface accepted by the registration functions.
// Both *Router and *Group implement it.
type Registrar interface {
	addRoute(rt route)
	routeMiddleware() []Middleware
}

func (r *Router) routeMiddleware() []Middleware { return nil }

// Handle registers h for method and pattern. The pattern uses
// http.ServeMux syntax without the method, e.g. "/users/{id}".
func Handle(reg Registrar, method, pattern string, h http.Handler, opts ...RouteOption) {
	desc := EndpointDescription{
		Method: method,
		Route:  pattern,
	}
	for _, opt := range opts {
		opt(&desc)
	}

	// Group middleware is baked into the handler; router middleware runs
	// in ServeHTTP.
	routeMW := reg.routeMiddleware()
	for i := len(routeMW) - 1; i >= 0; i-- {
		h = routeMW[i](h)
	}

	reg.addRoute(route{desc: desc, handler: h})
}

// Get registers a GET handler.
func Get(reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	Handle(reg, http.MethodGet, pattern, h, opts...)
}

// Post registers a POST handler.
func Post(reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	Handle(reg, http.MethodPost, pattern, h, opts...)
}

// Put registers a PUT handler.
func Put(reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	Handle(reg, http.MethodPut, pattern, h, opts...)
}

// Patch registers a PATCH handler.
func Patch(reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	Handle(reg, http.MethodPatch, pattern, h, opts...)
}

// Delete registers a DELETE handler.
func Delete(reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	Handle(reg, http.MethodDelete, pattern, h, opts...)
}
