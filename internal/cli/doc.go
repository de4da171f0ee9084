// Package cli implements the terminal display sink and batch progress
// spinner for the command-line interface.
package cli
