// Package pkgterm holds the screen-control capability used by the console.
package pkgterm
