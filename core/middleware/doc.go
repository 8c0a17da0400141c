// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for every route except the documentation.
//   - rayid: a request id (ray id) in the context and the X-Ray-ID response
//     header, picked up by logger.WithRayID.
package middleware
