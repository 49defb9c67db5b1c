package apidoc

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDocumentPattern is where MapOpenAPI serves documents by default.
// "/openapi/v1.json" serves the "v1" document as JSON, "/openapi/v1.yaml"
// as YAML.
const DefaultDocumentPattern = "/openapi/{documentName}"

type serveConfig struct {
	pattern    string
	middleware []Middleware
}

// ServeOption configures MapOpenAPI.
type ServeOption func(*serveConfig)

// WithDocumentPattern sets the route pattern. It must contain the
// {documentName} wildcard.
func WithDocumentPattern(pattern string) ServeOption {
	return func(c *serveConfig) {
		c.pattern = pattern
	}
}

// WithDocumentRateLimit rate limits the document endpoint. Every request
// builds a fresh document.
func WithDocumentRateLimit(cfg RateLimitConfig) ServeOption {
	return func(c *serveConfig) {
		c.middleware = append(c.middleware, RateLimit(cfg))
	}
}

// WithDocumentMiddleware wraps the document endpoint with mw.
func WithDocumentMiddleware(mw ...Middleware) ServeOption {
	return func(c *serveConfig) {
		c.middleware = append(c.middleware, mw...)
	}
}

// MapOpenAPI registers a GET endpoint serving svc's documents. The
// endpoint is excluded from the documents it serves. Responses carry an
// ETag so unchanged documents are answered with 304.
func (r *Router) MapOpenAPI(svc *Service, opts ...ServeOption) {
	cfg := &serveConfig{pattern: DefaultDocumentPattern}
	for _, opt := range opts {
		opt(cfg)
	}

	h := ETag()(svc)
	for i := len(cfg.middleware) - 1; i >= 0; i-- {
		h = cfg.middleware[i](h)
	}

	Handle(r, http.MethodGet, cfg.pattern, h, WithExcludeFromDescription())
}

// ServeHTTP serves the document named by the {documentName} path value.
// A ".yaml" or ".yml" suffix selects YAML; anything else is JSON.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("documentName")
	asYAML := false
	switch path.Ext(name) {
	case ".json":
		name = strings.TrimSuffix(name, ".json")
	case ".yaml", ".yml":
		name = strings.TrimSuffix(name, path.Ext(name))
		asYAML = true
	}

	doc, err := s.Generate(r.Context(), name)
	if err != nil {
		status := errorStatus(err)
		if status >= http.StatusInternalServerError {
			s.logger.ErrorContext(r.Context(), "document generation failed",
				"document", name,
				"err", err,
			)
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	if asYAML {
		w.Header().Set("Content-Type", "application/yaml")
		if err := WriteYAML(w, doc); err != nil {
			s.logger.WarnContext(r.Context(), "write document", "document", name, "err", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		s.logger.WarnContext(r.Context(), "write document", "document", name, "err", err)
	}
}

// WriteJSON writes doc as indented JSON to w.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteYAML writes doc as YAML to w.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// errorStatus maps a Generate error to an HTTP status.
func errorStatus(err error) int {
	if errors.Is(err, ErrDocumentNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
