package apidoc

// EndpointDescription describes one reachable operation: its route, verb,
// declared responses, and the metadata attached at registration time.
//
// Descriptions are read-only input to document assembly. Metadata is an
// ordered list; later items override earlier ones where a single value is
// selected (summary, description, tags, name).
type EndpointDescription struct {
	// Method is the HTTP verb, e.g. "GET".
	Method string

	// Route is the relative route template, e.g. "/users/{id}".
	Route string

	// Resource identifies the owning resource or group. It names the
	// fallback tag when no tag metadata is present.
	Resource string

	// GroupName assigns the endpoint to a named document. Empty means the
	// endpoint belongs to every document.
	GroupName string

	Responses []ResponseShape
	Metadata  []any
}

// ResponseShape is one declared response of an endpoint.
type ResponseShape struct {
	StatusCode int
	IsDefault  bool
	MediaTypes []string
}

// SummaryMetadata supplies an operation summary.
type SummaryMetadata interface {
	Summary() string
}

// DescriptionMetadata supplies an operation description.
type DescriptionMetadata interface {
	Description() string
}

// TagsMetadata supplies the tag names of an operation.
type TagsMetadata interface {
	Tags() []string
}

// ProducesMetadata supplies content types produced by every response of an
// endpoint.
type ProducesMetadata interface {
	Produces() []string
}

// NameMetadata supplies the operationId.
type NameMetadata interface {
	EndpointName() string
}

// ExcludeMetadata hides an endpoint from discovery.
type ExcludeMetadata interface {
	ExcludeFromDescription() bool
}

// SummaryItem is the SummaryMetadata attached by WithSummary.
type SummaryItem struct{ Text string }

func (m SummaryItem) Summary() string { return m.Text }

// DescriptionItem is the DescriptionMetadata attached by WithDescription.
type DescriptionItem struct{ Text string }

func (m DescriptionItem) Description() string { return m.Text }

// TagsItem is the TagsMetadata attached by WithTags.
type TagsItem struct{ Names []string }

func (m TagsItem) Tags() []string { return m.Names }

// ProducesItem is the ProducesMetadata attached by WithProduces.
type ProducesItem struct{ ContentTypes []string }

func (m ProducesItem) Produces() []string { return m.ContentTypes }

// NameItem is the NameMetadata attached by WithName.
type NameItem struct{ Name string }

func (m NameItem) EndpointName() string { return m.Name }

// ExcludeItem is the ExcludeMetadata attached by WithExcludeFromDescription.
type ExcludeItem struct{}

func (ExcludeItem) ExcludeFromDescription() bool { return true }

// lastMetadata returns the last item in md implementing T.
func lastMetadata[T any](md []any) (T, bool) {
	var (
		found T
		ok    bool
	)
	for _, item := range md {
		if v, match := item.(T); match {
			found = v
			ok = true
		}
	}
	return found, ok
}

// excluded reports whether the endpoint opted out of discovery.
func (d *EndpointDescription) excluded() bool {
	m, ok := lastMetadata[ExcludeMetadata](d.Metadata)
	return ok && m.ExcludeFromDescription()
}
