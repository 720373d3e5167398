package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnexpectedEOF   = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrUnexpectedToken = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrTrailingContent = fmt.Errorf("%w: trailing content after value", ErrParse)
	ErrObjectKey       = fmt.Errorf("%w: expected object key", ErrParse)
	ErrColon           = fmt.Errorf("%w: expected ':'", ErrParse)
	ErrCommaOrBrace    = fmt.Errorf("%w: expected ',' or '}'", ErrParse)
	ErrCommaOrBracket  = fmt.Errorf("%w: expected ',' or ']'", ErrParse)
	ErrDepth           = fmt.Errorf("%w: maximum nesting depth exceeded", ErrParse)
)
