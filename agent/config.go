package agent

import "strings"

// parseArgs splits a space-separated `key=value` token string into a
// map, seeded with the implicit defaults `name=unknown role=unknown`.
// Later duplicate keys overwrite earlier ones: the defaults are applied
// first, then a single left-to-right scan over the raw tokens.
func parseArgs(args string) map[string]string {
	meta := map[string]string{
		"name": "unknown",
		"role": "unknown",
	}
	for _, token := range strings.Fields(args) {
		key, value, _ := strings.Cut(token, "=")
		meta[key] = value
	}
	return meta
}
