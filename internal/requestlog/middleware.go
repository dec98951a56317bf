// Package requestlog classifies inbound API calls by route pattern and client
// identity, and emits one condensed log line per recognized request.
package requestlog

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Middleware logs one info line per recognized API call, in the form
// "<emoji> <model> | <client>". Paths outside the route table pass through
// silently. The request is forwarded to next exactly once either way, and the
// response is returned unmodified.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, ok := Classify(r.URL.Path, r.Header.Get("User-Agent")); ok {
				logger.Info(fmt.Sprintf("%s %s | %s", c.Mode.Emoji(), c.Model, c.Client))
			}

			next.ServeHTTP(w, r)
		})
	}
}
