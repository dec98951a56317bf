package requestlog

import "regexp"

const (
	clientUnknown = "Unknown"
	clientBrowser = "Browser"
)

// knownClients pairs a User-Agent pattern with the canonical client name.
// Matching is case-insensitive anywhere in the header; the canonical casing
// comes from the table, not from the input. Order matters: first match wins.
var knownClients = []struct {
	pattern *regexp.Regexp
	name    string
}{
	{regexp.MustCompile(`(?i)CherryStudio/[\d.]+`), "CherryStudio"},
	{regexp.MustCompile(`(?i)Cursor/[\d.]+`), "Cursor"},
	{regexp.MustCompile(`(?i)VSCode/[\d.]+`), "VSCode"},
	{regexp.MustCompile(`(?i)Insomnia/[\d.]+`), "Insomnia"},
	{regexp.MustCompile(`(?i)Postman/[\d.]+`), "Postman"},
	{regexp.MustCompile(`(?i)HTTPie/[\d.]+`), "HTTPie"},
	{regexp.MustCompile(`(?i)curl/[\d.]+`), "curl"},
	{regexp.MustCompile(`(?i)python-requests/[\d.]+`), "python-requests"},
	{regexp.MustCompile(`(?i)axios/[\d.]+`), "axios"},
	{regexp.MustCompile(`(?i)node-fetch/[\d.]+`), "node-fetch"},
	{regexp.MustCompile(`(?i)Electron/[\d.]+`), "Electron"},
}

// productToken matches a leading ProductName/Version token.
var productToken = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*)/`)

// ClientName derives a canonical client name from a raw User-Agent header.
// Classification is best effort and never fails: agents outside the known
// table fall back to their leading product token, then to "Browser". An
// empty header yields "Unknown".
func ClientName(userAgent string) string {
	if userAgent == "" {
		return clientUnknown
	}

	for _, c := range knownClients {
		if c.pattern.MatchString(userAgent) {
			return c.name
		}
	}

	if m := productToken.FindStringSubmatch(userAgent); m != nil {
		return m[1]
	}

	return clientBrowser
}
