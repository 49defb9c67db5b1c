package apidoc

import "net/http"

// route holds a registered endpoint and its handler.
type route struct {
	desc    EndpointDescription
	handler http.Handler
}

// RouteOption configures an endpoint at registration time. Options that
// attach metadata append it in the order given, so later options win where
// a single value is selected.
type RouteOption func(*EndpointDescription)

// WithSummary sets the operation summary.
func WithSummary(s string) RouteOption {
	return WithMetadata(SummaryItem{Text: s})
}

// WithDescription sets the operation description.
func WithDescription(d string) RouteOption {
	return WithMetadata(DescriptionItem{Text: d})
}

// WithTags sets the operation tags, replacing tags from earlier metadata.
func WithTags(tags ...string) RouteOption {
	return WithMetadata(TagsItem{Names: tags})
}

// WithProduces adds content types produced by every response of the route.
func WithProduces(contentTypes ...string) RouteOption {
	return WithMetadata(ProducesItem{ContentTypes: contentTypes})
}

// WithName sets the operationId.
func WithName(name string) RouteOption {
	return WithMetadata(NameItem{Name: name})
}

// WithExcludeFromDescription hides the route from generated documents.
func WithExcludeFromDescription() RouteOption {
	return WithMetadata(ExcludeItem{})
}

// WithMetadata appends arbitrary metadata items.
func WithMetadata(items ...any) RouteOption {
	return func(d *EndpointDescription) {
		d.Metadata = append(d.Metadata, items...)
	}
}

// WithResponse declares a response with the given status and media types.
func WithResponse(status int, mediaTypes ...string) RouteOption {
	return func(d *EndpointDescription) {
		d.Responses = append(d.Responses, ResponseShape{
			StatusCode: status,
			MediaTypes: mediaTypes,
		})
	}
}

// WithDefaultResponse declares the default response. It is documented
// under status 200.
func WithDefaultResponse(mediaTypes ...string) RouteOption {
	return func(d *EndpointDescription) {
		d.Responses = append(d.Responses, ResponseShape{
			IsDefault:  true,
			MediaTypes: mediaTypes,
		})
	}
}

// WithGroupName assigns the route to a named document.
func WithGroupName(document string) RouteOption {
	return func(d *EndpointDescription) {
		d.GroupName = document
	}
}

// WithResource sets the owning resource, used as the fallback tag.
func WithResource(name string) RouteOption {
	return func(d *EndpointDescription) {
		d.Resource = name
	}
}
