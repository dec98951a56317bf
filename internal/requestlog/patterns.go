package requestlog

import "regexp"

// Mode identifies which API surface a request path belongs to.
type Mode string

const (
	ModeAntigravity Mode = "antigravity"
	ModeGeminiCLI   Mode = "geminicli"
)

// Emoji returns the glyph used for this mode in the condensed log line.
func (m Mode) Emoji() string {
	if m == ModeAntigravity {
		return "🚀"
	}
	return "✨"
}

// routeRule maps one path pattern to the API surface it belongs to. A pattern
// with a capturing group captures the model name from the path.
type routeRule struct {
	pattern *regexp.Regexp
	mode    Mode
}

// apiRoutes is tried in order against the request path; the first match wins.
var apiRoutes = []routeRule{
	// Gemini format: /antigravity/v1beta/models/{model}:streamGenerateContent
	{regexp.MustCompile(`^/antigravity/v1(?:beta)?/models/([^:]+):`), ModeAntigravity},
	// OpenAI format: /antigravity/v1/chat/completions
	{regexp.MustCompile(`^/antigravity/v1/chat/completions`), ModeAntigravity},
	// Anthropic format: /antigravity/v1/messages
	{regexp.MustCompile(`^/antigravity/v1/messages`), ModeAntigravity},
	// Gemini format without the antigravity prefix: /v1beta/models/{model}:...
	{regexp.MustCompile(`^/v1(?:beta)?/models/([^:]+):`), ModeGeminiCLI},
	{regexp.MustCompile(`^/v1/chat/completions`), ModeGeminiCLI},
	{regexp.MustCompile(`^/v1/messages`), ModeGeminiCLI},
}

// Classification describes one recognized API call. It is built per request
// and discarded after the log line is emitted.
type Classification struct {
	Mode   Mode
	Model  string
	Client string
}

// Classify matches path against the API route table and, on a hit, resolves
// the client name from userAgent. The boolean reports whether the path is a
// recognized API call; static assets, health checks and the like return false.
func Classify(path, userAgent string) (Classification, bool) {
	for _, rule := range apiRoutes {
		m := rule.pattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		model := "chat"
		if len(m) > 1 {
			model = m[1]
		}
		return Classification{
			Mode:   rule.mode,
			Model:  model,
			Client: ClientName(userAgent),
		}, true
	}
	return Classification{}, false
}
