// Package cli implements the cmbcalc commands.
package cli

import "errors"

// Sentinel errors
var (
	// ErrTokenizeFailed is returned when the tokens command hit scan
	// errors; the individual errors have already been printed.
	ErrTokenizeFailed = errors.New("tokenize failed")
	// ErrInvalidPrecision is returned for an unusable precision override.
	ErrInvalidPrecision = errors.New("invalid precision")
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}
