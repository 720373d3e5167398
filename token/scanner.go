package token

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// Scanner is a single-pass cursor over an input buffer. It borrows the
// buffer, never copies it, and mutates nothing but its own offset.
type Scanner struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{
		d:   d,
		doc: NewPosDoc(d),
	}
}

// Peek returns the byte at the current offset without advancing.
func (s *Scanner) Peek() (byte, bool) {
	if s.i >= len(s.d) {
		return 0, false
	}
	return s.d[s.i], true
}

// PeekRune returns the rune at the current offset without advancing,
// for use in error messages. It returns size 0 at end of input.
func (s *Scanner) PeekRune() (rune, int) {
	if s.i >= len(s.d) {
		return 0, 0
	}
	return utf8.DecodeRune(s.d[s.i:])
}

// Advance returns the byte at the current offset and moves past it.
func (s *Scanner) Advance() (byte, bool) {
	if s.i >= len(s.d) {
		return 0, false
	}
	c := s.d[s.i]
	s.i++
	return c, true
}

// SkipWhitespace moves the offset past any run of JSON whitespace
// (space, tab, newline, carriage return). A no-op when there is none.
func (s *Scanner) SkipWhitespace() {
	for s.i < len(s.d) {
		switch s.d[s.i] {
		case ' ', '\t', '\n', '\r':
			s.i++
		default:
			return
		}
	}
}

// Expect consumes the fixed token lit at the current offset, failing
// with the expected vs. actual content and the offset on a mismatch.
func (s *Scanner) Expect(lit string) error {
	if !bytes.HasPrefix(s.d[s.i:], []byte(lit)) {
		if len(s.d)-s.i < len(lit) && bytes.HasPrefix([]byte(lit), s.d[s.i:]) {
			return NewScanError(ErrUnexpectedEOF, s.Pos())
		}
		return ExpectedErr(strconv.Quote(lit), s.Pos())
	}
	s.i += len(lit)
	return nil
}

// Classify reports which grammar production the lookahead byte begins.
func (s *Scanner) Classify() Kind {
	c, ok := s.Peek()
	if !ok {
		return KindInvalid
	}
	switch c {
	case '{':
		return KindObject
	case '[':
		return KindArray
	case '"':
		return KindString
	case 't':
		return KindTrue
	case 'f':
		return KindFalse
	case 'n':
		return KindNull
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return KindNumber
	default:
		return KindInvalid
	}
}

func (s *Scanner) Offset() int {
	return s.i
}

func (s *Scanner) EOF() bool {
	return s.i >= len(s.d)
}

func (s *Scanner) Pos() *Pos {
	return s.doc.Pos(s.i)
}
