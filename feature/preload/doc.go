// Package preload implements the root-page redirect that preloads audio into the editor.
//
// When a preload URL is configured, a GET whose request target is exactly "/" is answered
// with 302 Found and Location /index.html?url=<escaped URL>. The editor reads the url
// query parameter and fetches the audio itself. Every other request, including "/" with
// a query string and HEAD "/", is passed on to the next feature unchanged.
//
// # Escaping
//
// EscapeQueryValue leaves only A-Z a-z 0-9 - _ . ~ unescaped and encodes a space as %20,
// so url.QueryUnescape of the value always yields the original URL.
//
// # Object Storage
//
// With storage enabled, an s3://bucket/key preload URL is replaced by a presigned GET URL
// on every redirect, so a long-running server never hands out an expired link.
package preload
