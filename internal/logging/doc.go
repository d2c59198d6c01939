// Package logging configures structured logging for scriptcast.
//
// It wraps log/slog with typed attribute helpers, standardized field names,
// and two output handlers: a human-oriented console format and machine
// readable JSON. The console format is selected automatically when stdout is
// a terminal.
package logging
