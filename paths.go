package apidoc

import "strings"

// PathNormalizer maps a route template to a document path key.
type PathNormalizer func(route string) string

// pathGroup is the set of endpoints sharing one normalized path.
type pathGroup struct {
	path      string
	endpoints []*EndpointDescription
}

// groupByPath groups endpoints by normalized path. Groups are returned in
// first-seen order and keep their members in source order.
func groupByPath(endpoints []EndpointDescription, normalize PathNormalizer) ([]pathGroup, error) {
	index := make(map[string]int)
	var groups []pathGroup

	for i := range endpoints {
		ep := &endpoints[i]
		if ep.Method == "" {
			return nil, &ContractError{Method: ep.Method, Route: ep.Route, Err: ErrEmptyMethod}
		}

		path := normalize(ep.Route)
		if path == "" {
			return nil, &ContractError{Method: ep.Method, Route: ep.Route, Err: ErrEmptyPath}
		}

		g, ok := index[path]
		if !ok {
			g = len(groups)
			index[path] = g
			groups = append(groups, pathGroup{path: path})
		}
		groups[g].endpoints = append(groups[g].endpoints, ep)
	}

	return groups, nil
}

// NormalizePath converts a route template to an OpenAPI path key.
//
// Go mux patterns ("/files/{path...}", "/{$}") and route templates with
// constraints, defaults, optional markers, or catch-alls ("/users/{id:int}",
// "/page/{n=1}", "/items/{id?}", "/files/{*path}") all reduce to plain
// "{name}" placeholders. An empty route returns "".
func NormalizePath(route string) string {
	route = strings.TrimSpace(route)
	if route == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(route) + 1)
	if !strings.HasPrefix(route, "/") {
		b.WriteByte('/')
	}

	for route != "" {
		open := strings.IndexByte(route, '{')
		if open < 0 {
			b.WriteString(route)
			break
		}
		b.WriteString(route[:open])
		route = route[open:]

		end := strings.IndexByte(route, '}')
		if end < 0 {
			b.WriteString(route)
			break
		}
		name := parameterName(route[1:end])
		route = route[end+1:]

		if name == "$" {
			continue
		}
		b.WriteByte('{')
		b.WriteString(name)
		b.WriteByte('}')
	}

	return b.String()
}

// parameterName strips decorations from the inside of a route parameter.
func parameterName(param string) string {
	param = strings.TrimLeft(param, "*")
	param = strings.TrimSuffix(param, "...")
	if i := strings.IndexAny(param, ":=?"); i >= 0 {
		param = param[:i]
	}
	return param
}
