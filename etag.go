package apidoc

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// ETag returns middleware that tags successful GET and HEAD responses with
// a strong entity tag derived from the body. A request whose If-None-Match
// lists that tag gets 304 Not Modified and no body.
//
// Generated documents are deterministic for a given endpoint set, so
// clients polling a document only download it when it changed.
func ETag() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			rec := &bufferedResponse{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status >= 200 && rec.status < 300 {
				tag := entityTag(rec.body.Bytes())
				w.Header().Set("ETag", tag)
				if etagMatches(r.Header.Get("If-None-Match"), tag) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}

			w.WriteHeader(rec.status)
			//nolint:errcheck,gosec // best-effort write
			w.Write(rec.body.Bytes())
		})
	}
}

func entityTag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}

// etagMatches applies the weak comparison used by If-None-Match.
func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == tag {
			return true
		}
	}
	return false
}

// bufferedResponse holds the status and body until the handler returns.
type bufferedResponse struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.status = code
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	return b.body.Write(p)
}
