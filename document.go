package apidoc

const (
	// OpenAPIVersion is the format version written to every document.
	OpenAPIVersion = "3.0.3"

	// DefaultDocumentVersion is the info.version of every document.
	DefaultDocumentVersion = "1.0.0"

	// DefaultDocumentName is the document registered when none is configured.
	DefaultDocumentName = "v1"
)

// Document is an assembled API description.
type Document struct {
	OpenAPI string `json:"openapi" yaml:"openapi"`
	Info    Info   `json:"info" yaml:"info"`
	Paths   Paths  `json:"paths" yaml:"paths"`
	Tags    []Tag  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Info holds document metadata.
type Info struct {
	Title   string `json:"title" yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

// Paths maps normalized path keys to path items.
type Paths map[string]PathItem

// PathItem maps lowercased HTTP verbs to operations.
type PathItem map[string]Operation

// Operation describes a single (path, verb) pair.
type Operation struct {
	OperationID string    `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string    `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Responses   Responses `json:"responses" yaml:"responses"`
}

// Responses maps status code strings to responses.
type Responses map[string]Response

// Response describes one response of an operation.
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType is the content descriptor for one media type. Schemas are not
// generated, so it is always empty.
type MediaType struct{}

// ContentTypes returns the media types of r.
func (r Response) ContentTypes() []string {
	types := make([]string, 0, len(r.Content))
	for mt := range r.Content {
		types = append(types, mt)
	}
	return types
}
