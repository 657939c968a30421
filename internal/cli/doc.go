// Package cli holds the user-facing output helpers shared by the roster commands
// and the interactive session.
//
// Output separates the two streams a terminal program has: tables, status lines
// and prompts go to stdout, failures go to stderr. Success, warning and error
// lines share a fixed prefix (✓, ⚠, "Error:") and are colored with go-pretty
// when color is enabled.
package cli
