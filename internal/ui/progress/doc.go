// Package progress renders transient progress indicators on a terminal.
//
// Indicators draw to the writer they are given (stderr in practice) so
// stdout stays clean for piping JSON. Callers decide whether the writer is
// a terminal; nothing here checks.
package progress
