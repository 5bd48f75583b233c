// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation protecting every catalog route.
//   - rayid: a unique request id (RayID) for every incoming request, stored in the
//     context locals and echoed in the response headers for tracing.
//
// Both are registered globally in the start command, rayid first so that authentication
// failures are traceable too.
package middleware
