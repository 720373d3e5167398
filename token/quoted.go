package token

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Jackscalibur/json-parser/debug"
)

// ReadString scans the string literal at the current offset, decoding
// all escape sequences, and leaves the offset just past the closing
// quote. The result is a sequence of Unicode scalar values: \uXXXX
// escapes are decoded as UTF-16 code units and surrogate pairs are
// recombined; an unpaired surrogate fails with ErrBadUnicode.
func (s *Scanner) ReadString() (string, error) {
	openPos := s.Pos()
	if debug.Scan() {
		fmt.Fprintf(os.Stderr, "scan: string at %s\n", openPos)
	}
	if c, ok := s.Peek(); !ok || c != '"' {
		return "", ExpectedErr(`'"'`, openPos)
	}
	s.i++
	b := &strings.Builder{}
	for s.i < len(s.d) {
		c := s.d[s.i]
		switch {
		case c == '"':
			s.i++
			return b.String(), nil
		case c == '\\':
			if err := s.readEscape(b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", NewScanError(ErrControlInString, s.Pos())
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			s.i++
		default:
			r, sz := utf8.DecodeRune(s.d[s.i:])
			if r == utf8.RuneError && sz == 1 {
				return "", NewScanError(ErrBadUTF8, s.Pos())
			}
			b.Write(s.d[s.i : s.i+sz])
			s.i += sz
		}
	}
	return "", NewScanError(ErrUnterminated, openPos)
}

func (s *Scanner) readEscape(b *strings.Builder) error {
	pos := s.Pos()
	s.i++
	if s.i >= len(s.d) {
		return NewScanError(ErrUnterminated, pos)
	}
	c := s.d[s.i]
	s.i++
	switch c {
	case '"':
		b.WriteByte('"')
	case '\\':
		b.WriteByte('\\')
	case '/':
		b.WriteByte('/')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, err := s.readHex4(pos)
		if err != nil {
			return err
		}
		if !utf16.IsSurrogate(r) {
			b.WriteRune(r)
			return nil
		}
		// a high surrogate must be immediately followed by an
		// escaped low surrogate
		if s.i+1 >= len(s.d) || s.d[s.i] != '\\' || s.d[s.i+1] != 'u' {
			return NewScanError(ErrBadUnicode, pos)
		}
		s.i += 2
		r2, err := s.readHex4(pos)
		if err != nil {
			return err
		}
		dec := utf16.DecodeRune(r, r2)
		if dec == utf8.RuneError {
			return NewScanError(ErrBadUnicode, pos)
		}
		b.WriteRune(dec)
	default:
		return NewScanError(ErrBadEscape, pos)
	}
	return nil
}

func (s *Scanner) readHex4(pos *Pos) (rune, error) {
	if s.i+4 > len(s.d) {
		return 0, NewScanError(ErrUnterminated, pos)
	}
	if !allHex(s.d[s.i : s.i+4]) {
		return 0, NewScanError(ErrBadUnicode, pos)
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, s.d[s.i:s.i+4]); err != nil {
		return 0, NewScanError(ErrBadUnicode, pos)
	}
	s.i += 4
	return rune(dst[0])<<8 | rune(dst[1]), nil
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
