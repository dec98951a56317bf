// Package proxy relays inbound requests to the configured upstream origin
// without touching the body in either direction.
package proxy

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// hopHeaders are connection-level headers that must not be forwarded.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Handler forwards every request it receives to baseURL, preserving method,
// path, query and body, and copies the upstream response back verbatim.
type Handler struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the handler.
type Option func(*Handler)

// WithHTTPClient sets the HTTP client used for upstream requests. Tests use
// this to point at recorded fixtures or local upstreams.
func WithHTTPClient(client *http.Client) Option {
	return func(h *Handler) {
		h.httpClient = client
	}
}

// New creates a forwarding handler for the given upstream base URL.
func New(baseURL string, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := h.baseURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	upstreamReq, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		h.logger.Error("failed to build upstream request",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}

	copyHeaders(upstreamReq.Header, r.Header)
	upstreamReq.ContentLength = r.ContentLength

	resp, err := h.httpClient.Do(upstreamReq)
	if err != nil {
		h.logger.Error("upstream request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)

	// Stream the body through, flushing as chunks arrive so SSE responses
	// reach the client without buffering.
	if f, ok := w.(http.Flusher); ok {
		buf := make([]byte, 32*1024)
		for {
			n, readErr := resp.Body.Read(buf)
			if n > 0 {
				if _, writeErr := w.Write(buf[:n]); writeErr != nil {
					return
				}
				f.Flush()
			}
			if readErr != nil {
				return
			}
		}
	}

	io.Copy(w, resp.Body)
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if isHopHeader(key) {
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}

func isHopHeader(key string) bool {
	for _, h := range hopHeaders {
		if http.CanonicalHeaderKey(key) == h {
			return true
		}
	}
	return false
}
