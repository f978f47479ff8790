// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the features.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - ReqLog: Logs every request through zap with the RayID attached.
//
// Both are registered globally, RayID first, before any feature is loaded.
package middleware
