// Package pkglog contains logging helpers used across the application.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON handler with stable keys.
//   - Attaching the correlation ID (a console session ID or an HTTP request
//     ID) to each log record when present.
//
// The console owns stdout, so logs default to stderr.
package pkglog
