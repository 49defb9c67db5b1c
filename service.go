package apidoc

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// EndpointSource supplies the endpoint descriptions to document. The
// returned slice is owned by the caller.
type EndpointSource interface {
	Endpoints() []EndpointDescription
}

// StaticEndpoints is an EndpointSource over a fixed list.
type StaticEndpoints []EndpointDescription

// Endpoints returns a copy of the list.
func (s StaticEndpoints) Endpoints() []EndpointDescription {
	return slices.Clone(s)
}

// Service builds API documents from an EndpointSource.
//
// A Service holds no per-build state; Generate may be called concurrently
// as long as the source is safe for concurrent use.
type Service struct {
	source    EndpointSource
	appName   string
	documents map[string]*documentConfig
	normalize PathNormalizer
	reason    ReasonPhraseFunc
	logger    *slog.Logger
}

// NewService creates a Service reading endpoints from src. Without any
// WithDocument option a single DefaultDocumentName document is registered.
func NewService(src EndpointSource, opts ...ServiceOption) *Service {
	s := &Service{
		source:    src,
		documents: make(map[string]*documentConfig),
		normalize: NormalizePath,
		reason:    defaultReasonPhrase,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.documents) == 0 {
		WithDocument(DefaultDocumentName)(s)
	}
	return s
}

// DocumentNames returns the registered document names in sorted order.
func (s *Service) DocumentNames() []string {
	return slices.Sorted(maps.Keys(s.documents))
}

// Generate builds a fresh document for the named document.
//
// It returns ErrDocumentNotFound for an unregistered name and a
// *ContractError when an endpoint has no method or normalizes to an empty
// path. No partial document is returned on error.
func (s *Service) Generate(ctx context.Context, documentName string) (*Document, error) {
	cfg, ok := s.documents[documentName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, documentName)
	}

	endpoints := lo.Filter(s.source.Endpoints(), func(ep EndpointDescription, _ int) bool {
		return cfg.include(ep)
	})

	groups, err := groupByPath(endpoints, s.normalize)
	if err != nil {
		return nil, err
	}

	builder := &operationBuilder{
		appName:  s.appName,
		tagDescs: cfg.tagDescs,
		reason:   s.reason,
		tags:     NewTagCollector(),
	}

	doc := &Document{
		OpenAPI: OpenAPIVersion,
		Info: Info{
			Title:   s.appName + " | " + documentName,
			Version: DefaultDocumentVersion,
		},
		Paths: make(Paths, len(groups)),
	}
	for _, g := range groups {
		doc.Paths[g.path] = builder.buildPathItem(g.endpoints)
	}
	doc.Tags = builder.tags.Tags()

	s.logger.DebugContext(ctx, "document generated",
		"document", documentName,
		"endpoints", len(endpoints),
		"paths", len(doc.Paths),
		"tags", len(doc.Tags),
	)

	return doc, nil
}
