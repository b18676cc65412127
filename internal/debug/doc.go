// Package debug provides optional file-based debug logging.
//
// When the BOXLAYOUT_DEBUG environment variable is set to a file path, debug
// messages (including every layout computation and warning) are appended to
// that file. Otherwise, logging is a no-op.
package debug
