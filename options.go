package apidoc

import "log/slog"

// IncludeFunc decides whether an endpoint belongs to a document.
type IncludeFunc func(ep EndpointDescription) bool

// documentConfig holds per-document settings.
type documentConfig struct {
	name     string
	include  IncludeFunc
	tagDescs map[string]string
}

// DocumentOption configures a single named document.
type DocumentOption func(*documentConfig)

// WithInclude replaces the document's inclusion predicate.
func WithInclude(fn IncludeFunc) DocumentOption {
	return func(c *documentConfig) {
		c.include = fn
	}
}

// WithTagDescriptions sets descriptions for tags that appear in the document.
func WithTagDescriptions(descs map[string]string) DocumentOption {
	return func(c *documentConfig) {
		c.tagDescs = descs
	}
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithApplicationName sets the application name used in document titles and
// as the fallback tag for endpoints without a resource.
func WithApplicationName(name string) ServiceOption {
	return func(s *Service) {
		s.appName = name
	}
}

// WithDocument registers a named document. Registering the same name twice
// replaces the earlier configuration.
func WithDocument(name string, opts ...DocumentOption) ServiceOption {
	return func(s *Service) {
		cfg := &documentConfig{name: name}
		for _, opt := range opts {
			opt(cfg)
		}
		if cfg.include == nil {
			cfg.include = groupNameIncluder(name)
		}
		s.documents[name] = cfg
	}
}

// WithPathNormalizer replaces NormalizePath.
func WithPathNormalizer(fn PathNormalizer) ServiceOption {
	return func(s *Service) {
		s.normalize = fn
	}
}

// WithReasonPhrases replaces the status code to reason phrase lookup.
func WithReasonPhrases(fn ReasonPhraseFunc) ServiceOption {
	return func(s *Service) {
		s.reason = fn
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// groupNameIncluder includes endpoints that have no group name or whose
// group name matches the document.
func groupNameIncluder(document string) IncludeFunc {
	return func(ep EndpointDescription) bool {
		return ep.GroupName == "" || ep.GroupName == document
	}
}
