package apidoc

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// compressibleTypes are the content types Compress will gzip.
var compressibleTypes = []string{"application/json", "application/yaml", "text/"}

// CompressConfig configures the Compress middleware.
type CompressConfig struct {
	Level   int // gzip level (1-9, default: gzip.DefaultCompression)
	MinSize int // minimum first write to compress (default: 1024)
}

// Compress returns middleware that gzips JSON, YAML and text responses for
// clients that accept it. Responses whose first write is smaller than
// MinSize are sent as is.
func Compress(cfg ...CompressConfig) Middleware {
	c := CompressConfig{
		Level:   gzip.DefaultCompression,
		MinSize: 1024,
	}
	if len(cfg) > 0 {
		if cfg[0].Level != 0 {
			c.Level = cfg[0].Level
		}
		if cfg[0].MinSize > 0 {
			c.MinSize = cfg[0].MinSize
		}
	}

	pool := &sync.Pool{
		New: func() any {
			gz, err := gzip.NewWriterLevel(io.Discard, c.Level)
			if err != nil {
				gz = gzip.NewWriter(io.Discard)
			}
			return gz
		},
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gz := pool.Get().(*gzip.Writer) //nolint:errcheck,forcetypeassert // pool.New always returns *gzip.Writer
			gz.Reset(w)

			gw := &gzipResponseWriter{ResponseWriter: w, gz: gz, minSize: c.MinSize}
			w.Header().Add("Vary", "Accept-Encoding")
			next.ServeHTTP(gw, r)
			gw.finish()

			gz.Reset(io.Discard)
			pool.Put(gz)
		})
	}
}

// gzipResponseWriter delays the status line until the first write so the
// encoding headers can still be set.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz      *gzip.Writer
	minSize int
	status  int
	decided bool
	active  bool
}

func (g *gzipResponseWriter) WriteHeader(code int) {
	if g.status == 0 {
		g.status = code
	}
}

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
	if !g.decided {
		g.decided = true
		if g.compressible() && len(b) >= g.minSize {
			g.active = true
			g.Header().Set("Content-Encoding", "gzip")
			g.Header().Del("Content-Length")
		}
		g.ResponseWriter.WriteHeader(g.statusCode())
	}

	if g.active {
		return g.gz.Write(b)
	}
	return g.ResponseWriter.Write(b)
}

// finish flushes a status that was never followed by a body and closes the
// gzip stream when one was started.
func (g *gzipResponseWriter) finish() {
	if !g.decided {
		if g.status != 0 {
			g.ResponseWriter.WriteHeader(g.status)
		}
		return
	}
	if g.active {
		//nolint:errcheck,gosec // best-effort flush
		g.gz.Close()
	}
}

func (g *gzipResponseWriter) statusCode() int {
	if g.status == 0 {
		return http.StatusOK
	}
	return g.status
}

func (g *gzipResponseWriter) compressible() bool {
	status := g.statusCode()
	if status < 200 || status >= 300 || status == http.StatusNoContent {
		return false
	}
	if g.Header().Get("Content-Encoding") != "" {
		return false
	}
	ct := g.Header().Get("Content-Type")
	for _, t := range compressibleTypes {
		if strings.HasPrefix(ct, t) {
			return true
		}
	}
	return false
}

// Unwrap supports http.ResponseController.
func (g *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return g.ResponseWriter
}
