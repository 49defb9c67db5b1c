package apidoc

// Test-only exports for internal functions.
var (
	ParameterName = parameterName
	ErrorStatus   = errorStatus
)

// BuildResponses runs the response assembler with the standard reason phrases.
func BuildResponses(ep EndpointDescription) Responses {
	return buildResponses(&ep, defaultReasonPhrase)
}

// BuildPathItem runs the operation assembler for endpoints sharing a path.
func BuildPathItem(appName string, tags *TagCollector, endpoints ...EndpointDescription) PathItem {
	b := &operationBuilder{
		appName: appName,
		reason:  defaultReasonPhrase,
		tags:    tags,
	}
	ptrs := make([]*EndpointDescription, len(endpoints))
	for i := range endpoints {
		ptrs[i] = &endpoints[i]
	}
	return b.buildPathItem(ptrs)
}

// PathGroup mirrors pathGroup for external tests.
type PathGroup struct {
	Path      string
	Endpoints []EndpointDescription
}

// GroupByPath runs the path grouper.
func GroupByPath(endpoints []EndpointDescription, normalize PathNormalizer) ([]PathGroup, error) {
	groups, err := groupByPath(endpoints, normalize)
	if err != nil {
		return nil, err
	}
	out := make([]PathGroup, len(groups))
	for i, g := range groups {
		out[i].Path = g.path
		for _, ep := range g.endpoints {
			out[i].Endpoints = append(out[i].Endpoints, *ep)
		}
	}
	return out, nil
}
