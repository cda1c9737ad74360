// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// It keeps error handling consistent between the console and the statement
// endpoint by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing a structured Error type that carries a message, type, and code.
//     The console prints the message; HTTP handlers map the code to a status.
package pkgerror
