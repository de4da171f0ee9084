// Package ui provides terminal color themes shared by the CLI sinks.
package ui
