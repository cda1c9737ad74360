// Package pkgclock provides the time source used for transaction timestamps.
//
// Timestamps are rendered as "YYYY-MM-DD HH:MM:SS" in a configured location,
// so callers never depend on the host locale.
package pkgclock
