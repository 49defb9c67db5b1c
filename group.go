package apidoc

import "slices"

// Group is a collection of routes under a shared prefix with shared
// middleware and documentation defaults.
type Group struct {
	router     *Router
	prefix     string
	middleware []Middleware

	resource  string
	groupName string
	metadata  []any
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithGroupTags tags every route in the group. A route's own WithTags
// replaces them.
func WithGroupTags(tags ...string) GroupOption {
	return func(g *Group) {
		g.metadata = append(g.metadata, TagsItem{Names: tags})
	}
}

// WithGroupMetadata prepends metadata to every route in the group.
func WithGroupMetadata(items ...any) GroupOption {
	return func(g *Group) {
		g.metadata = append(g.metadata, items...)
	}
}

// WithGroupResource sets the default owning resource of the group's routes.
func WithGroupResource(name string) GroupOption {
	return func(g *Group) {
		g.resource = name
	}
}

// WithGroupDocument assigns the group's routes to a named document.
func WithGroupDocument(document string) GroupOption {
	return func(g *Group) {
		g.groupName = document
	}
}

// WithGroupMiddleware adds middleware to the group.
func WithGroupMiddleware(mw ...Middleware) GroupOption {
	return func(g *Group) {
		g.middleware = append(g.middleware, mw...)
	}
}

// Group creates a new route group with the given prefix and options.
func (r *Router) Group(prefix string, opts ...GroupOption) *Group {
	g := &Group{
		router: r,
		prefix: prefix,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// addRoute implements Registrar for Group. Group metadata goes first so
// route-level metadata overrides it.
func (g *Group) addRoute(rt route) {
	rt.desc.Route = g.prefix + rt.desc.Route
	rt.desc.Metadata = append(slices.Clone(g.metadata), rt.desc.Metadata...)
	if rt.desc.Resource == "" {
		rt.desc.Resource = g.resource
	}
	if rt.desc.GroupName == "" {
		rt.desc.GroupName = g.groupName
	}
	g.router.addRoute(rt)
}

func (g *Group) routeMiddleware() []Middleware { return g.middleware }
