package token

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Jackscalibur/json-parser/debug"
)

// ReadNumber scans the JSON number literal at the current offset and
// converts it to its float64 representation.
func (s *Scanner) ReadNumber() (float64, error) {
	pos := s.Pos()
	if debug.Scan() {
		fmt.Fprintf(os.Stderr, "scan: number at %s\n", pos)
	}
	n, err := number(s.d[s.i:])
	if err != nil {
		return 0, NewScanError(err, pos)
	}
	// an in-grammar number whose magnitude exceeds float64 range
	// saturates to ±Inf (underflow to 0) rather than being rejected
	f, err := strconv.ParseFloat(string(s.d[s.i:s.i+n]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, NewScanError(ErrNumber, pos)
	}
	s.i += n
	return f, nil
}

// number returns the length of the number literal at the start of d.
// Grammar per RFC 8259: -?int frac? exp? where int is "0" or a nonzero
// digit followed by digits.
func number(d []byte) (int, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return 0, ErrNumberLeadingZero
	}
	i += digits
	f, err := fract(d[i:])
	if err != nil {
		return 0, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return 0, err
	}
	return i + e, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 8259
		return 0, ErrNumber
	}
	return 1 + n, nil
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) {
		switch d[i] {
		case '+', '-':
			i++
		}
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0, ErrNumber
	}
	return i + n, nil
}
