// Package pkguid provides helpers for generating unique identifiers.
//
// Depending on the use case you can generate:
//   - String IDs (UUIDs), used for session and ledger event IDs.
//   - Numeric IDs (Snowflake), used for transaction IDs so they sort in
//     the order they were recorded.
package pkguid
