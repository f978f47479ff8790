package preload

import (
	"net/url"
	"strings"
)

// IndexPath is the page the root request is redirected to.
const IndexPath = "/index.html"

// EscapeQueryValue percent-encodes s for use as a query value. Every byte outside
// A-Z a-z 0-9 - _ . ~ is escaped, and a space becomes %20 rather than +.
func EscapeQueryValue(s string) string {
	// QueryEscape escapes a literal '+' as %2B, so any '+' left is an encoded space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// RedirectLocation returns the Location value carrying target to the editor.
func RedirectLocation(target string) string {
	return IndexPath + "?url=" + EscapeQueryValue(target)
}
