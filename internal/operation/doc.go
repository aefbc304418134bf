// Package operation runs registered whole-raster mutators.
//
// An operation receives the current base raster (never the composited
// preview) and a Session handle for the active selection, integer prompts
// and user messages. It may edit the raster it is given in place, return a
// replacement, or fail.
//
// The Dispatcher works check-then-commit: the operation runs on a private
// copy of the base, a replacement must be well-formed, and only a successful
// run produces an Outcome for the caller to install. Failures, cancelled
// prompts and malformed results leave the caller's base untouched.
package operation
