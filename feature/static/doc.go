// Package static serves the bundled editor from a directory.
//
// Serving is delegated to Fiber's filesystem middleware over http.Dir, which opens and
// stats the file on every request: content types are inferred from file extensions, a
// directory is answered with its index file or, when browsing is enabled, an HTML listing,
// and paths that do not exist fall through to Fiber's 404.
//
// A guard runs first. It answers 403 for any request whose decoded path contains a ".."
// segment, including percent-encoded forms such as /%2e%2e/, and 404 for paths with a
// malformed escape or a trailing slash after a regular file.
package static
