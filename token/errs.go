package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnterminated    = errors.New("unterminated string")
	ErrBadEscape       = errors.New("bad escape")
	ErrBadUnicode      = errors.New("bad unicode escape")
	ErrControlInString = errors.New("control character in string")
	ErrBadUTF8         = errors.New("bad utf8")
	ErrNumber          = errors.New("bad number")

	ErrNumberLeadingZero = fmt.Errorf("%w: leading zero", ErrNumber)
)

type ScanError struct {
	Err error
	Pos Pos
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func NewScanError(e error, p *Pos) *ScanError {
	return &ScanError{Err: e, Pos: *p}
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewScanError(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanError(fmt.Errorf("unexpected %s", what), p)
}
