package apidoc

import (
	"net/http"
	"strconv"

	"github.com/samber/lo"
)

// ReasonPhraseFunc maps a status code to its reason phrase.
type ReasonPhraseFunc func(code int) string

// defaultReasonPhrase uses the standard library's status text table.
func defaultReasonPhrase(code int) string {
	return http.StatusText(code)
}

// buildResponses creates one Response per effective status code of ep.
// When two shapes share a status code, the later shape wins.
func buildResponses(ep *EndpointDescription, reason ReasonPhraseFunc) Responses {
	shapes := ep.Responses
	if len(shapes) == 0 {
		shapes = []ResponseShape{{StatusCode: http.StatusOK}}
	}

	// Produces metadata applies to every response of the endpoint.
	var produces []string
	for _, item := range ep.Metadata {
		if p, ok := item.(ProducesMetadata); ok {
			produces = append(produces, p.Produces()...)
		}
	}

	responses := make(Responses, len(shapes))
	for _, shape := range shapes {
		status := shape.StatusCode
		if shape.IsDefault {
			status = http.StatusOK
		}

		resp := Response{Description: reason(status)}
		mediaTypes := lo.Uniq(append(lo.Compact(produces), lo.Compact(shape.MediaTypes)...))
		if len(mediaTypes) > 0 {
			resp.Content = make(map[string]MediaType, len(mediaTypes))
			for _, mt := range mediaTypes {
				resp.Content[mt] = MediaType{}
			}
		}

		responses[strconv.Itoa(status)] = resp
	}

	return responses
}
