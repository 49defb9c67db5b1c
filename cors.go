package apidoc

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	AllowOrigins []string // default: "*"
	AllowHeaders []string // default: "Accept", "If-None-Match"
	MaxAge       int      // seconds
}

// CORS returns middleware that lets browser-hosted viewers on other origins
// fetch documents. Only GET, HEAD and OPTIONS are allowed, and preflight
// requests are answered with 204 without reaching the router's routes.
func CORS(cfg ...CORSConfig) Middleware {
	c := CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"Accept", "If-None-Match"},
	}
	if len(cfg) > 0 {
		if len(cfg[0].AllowOrigins) > 0 {
			c.AllowOrigins = cfg[0].AllowOrigins
		}
		if len(cfg[0].AllowHeaders) > 0 {
			c.AllowHeaders = cfg[0].AllowHeaders
		}
		c.MaxAge = cfg[0].MaxAge
	}

	anyOrigin := slices.Contains(c.AllowOrigins, "*")
	headers := strings.Join(c.AllowHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			switch {
			case origin == "":
			case anyOrigin:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case slices.Contains(c.AllowOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", headers)
			if c.MaxAge > 0 {
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(c.MaxAge))
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
