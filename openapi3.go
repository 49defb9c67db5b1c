package apidoc

import (
	"net/http"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/samber/lo"
)

// openAPI3Methods are the verbs an OpenAPI 3.0 path item can hold.
var openAPI3Methods = []string{
	http.MethodConnect,
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
	http.MethodTrace,
}

// OpenAPI3 converts d to the kin-openapi model. Operations under verbs
// that OpenAPI 3.0 cannot express are dropped.
func (d *Document) OpenAPI3() *openapi3.T {
	t := &openapi3.T{
		OpenAPI: d.OpenAPI,
		Info: &openapi3.Info{
			Title:   d.Info.Title,
			Version: d.Info.Version,
		},
		Paths: openapi3.NewPathsWithCapacity(len(d.Paths)),
		Tags: lo.Map(d.Tags, func(tag Tag, _ int) *openapi3.Tag {
			return &openapi3.Tag{Name: tag.Name, Description: tag.Description}
		}),
	}

	for p, item := range d.Paths {
		pi := &openapi3.PathItem{}
		for _, name := range pathParameters(p) {
			pi.Parameters = append(pi.Parameters, &openapi3.ParameterRef{
				Value: openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()),
			})
		}
		for verb, op := range item {
			method := strings.ToUpper(verb)
			if !slices.Contains(openAPI3Methods, method) {
				continue
			}
			pi.SetOperation(method, op.openAPI3())
		}
		t.Paths.Set(p, pi)
	}

	return t
}

// pathParameters returns the placeholder names of a normalized path in
// template order.
func pathParameters(p string) []string {
	var names []string
	for {
		start := strings.IndexByte(p, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(p[start:], '}')
		if end < 0 {
			return names
		}
		if name := p[start+1 : start+end]; name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
		p = p[start+end+1:]
	}
}

func (op Operation) openAPI3() *openapi3.Operation {
	out := &openapi3.Operation{
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Responses:   openapi3.NewResponsesWithCapacity(len(op.Responses)),
	}

	for code, resp := range op.Responses {
		r := openapi3.NewResponse().WithDescription(resp.Description)
		if len(resp.Content) > 0 {
			r.Content = make(openapi3.Content, len(resp.Content))
			for mt := range resp.Content {
				r.Content[mt] = &openapi3.MediaType{}
			}
		}
		out.Responses.Set(code, &openapi3.ResponseRef{Value: r})
	}

	return out
}
