// Package token provides character-level scanning support for JSON text.
//
// [Scanner] is a single-pass cursor over an input buffer with one byte of
// lookahead. It classifies the next token, scans string and number
// literals, and reports positions for error messages.
package token
