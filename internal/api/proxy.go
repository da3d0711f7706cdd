package api

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/logging"
)

// Proxy forwards /api/* requests to the upstream portal API, swapping the
// browser's session cookie for the session's bearer token. The browser never
// sees the token itself.
type Proxy struct {
	rp *httputil.ReverseProxy
}

func NewProxy(upstreamBaseURL string) (*Proxy, error) {
	target, err := url.Parse(upstreamBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	rp := &httputil.ReverseProxy{
		Director: func(r *http.Request) {
			rest := strings.TrimPrefix(r.URL.Path, "/api")
			r.URL.Scheme = target.Scheme
			r.URL.Host = target.Host
			r.URL.Path = strings.TrimRight(target.Path, "/") + rest
			r.Host = target.Host

			// The upstream authenticates by bearer token, not by our cookie.
			r.Header.Del("Cookie")
			if token := auth.Token(r.Context()); token != "" {
				r.Header.Set("Authorization", "Bearer "+token)
			}
			if reqID := auth.RequestID(r.Context()); reqID != "" {
				r.Header.Set("X-Request-ID", reqID)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logging.Warn("upstream proxy error", "path", r.URL.Path, "error", err.Error())
			respondWithError(w, http.StatusBadGateway, "upstream unavailable")
		},
	}
	return &Proxy{rp: rp}, nil
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.rp.ServeHTTP(w, r)
}
