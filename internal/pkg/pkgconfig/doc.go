// Package pkgconfig provides a small abstraction for reading configuration values.
//
// The application expects config values to come from a concrete implementation
// (Viper). Business code depends on the Config interface so it stays easy to
// test and does not care where values come from (file, .env, environment).
//
// Only ambient settings live here. Rules such as the login attempt limit are
// compile-time constants of the packages that own them.
package pkgconfig
