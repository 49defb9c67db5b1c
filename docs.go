package apidoc

import (
	"html/template"
	"net/http"
	"slices"
	"strings"
)

// DefaultDocsPattern is where MapDocs serves the viewer by default.
const DefaultDocsPattern = "/docs/{documentName}"

type docsConfig struct {
	pattern         string
	documentPattern string
}

// DocsOption configures MapDocs.
type DocsOption func(*docsConfig)

// WithDocsPattern sets the viewer route. It must contain the
// {documentName} wildcard.
func WithDocsPattern(pattern string) DocsOption {
	return func(c *docsConfig) {
		c.pattern = pattern
	}
}

// WithDocsDocumentPattern tells the viewer where MapOpenAPI serves
// documents. Use it when MapOpenAPI was given WithDocumentPattern.
func WithDocsDocumentPattern(pattern string) DocsOption {
	return func(c *docsConfig) {
		c.documentPattern = pattern
	}
}

var docsTemplate = template.Must(template.New("docs").Parse(docsHTML))

// docsPage is the data rendered into docsHTML.
type docsPage struct {
	Title       string
	DocumentURL string
}

// MapDocs registers an HTML page that renders one of svc's documents with
// Stoplight Elements. Unknown document names get 404. The page itself is
// excluded from the documents.
func (r *Router) MapDocs(svc *Service, opts ...DocsOption) {
	cfg := &docsConfig{
		pattern:         DefaultDocsPattern,
		documentPattern: DefaultDocumentPattern,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	h := func(w http.ResponseWriter, req *http.Request) {
		name := req.PathValue("documentName")
		if !slices.Contains(svc.DocumentNames(), name) {
			http.NotFound(w, req)
			return
		}

		page := docsPage{
			Title:       svc.appName + " | " + name,
			DocumentURL: strings.Replace(cfg.documentPattern, "{documentName}", name+".json", 1),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := docsTemplate.Execute(w, page); err != nil {
			svc.logger.WarnContext(req.Context(), "render docs", "document", name, "err", err)
		}
	}

	Get(r, cfg.pattern, h, WithExcludeFromDescription())
}

const docsHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
  <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
</head>
<body>
  <elements-api
    apiDescriptionUrl="{{.DocumentURL}}"
    router="hash"
    layout="sidebar"
  />
</body>
</html>`
