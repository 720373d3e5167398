// Package parse provides JSON parsing support.
package parse

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Jackscalibur/json-parser/debug"
	"github.com/Jackscalibur/json-parser/ir"
	"github.com/Jackscalibur/json-parser/token"
)

// Parse converts JSON text into an ir.Node tree. It accepts exactly the
// RFC 8259 grammar; the first failure aborts the whole parse and is
// returned with the offset where it was detected. There is no partial
// result: parsing is all-or-nothing.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	s := token.NewScanner(d)
	s.SkipWhitespace()
	if s.EOF() {
		return nil, fmt.Errorf("%w %s", ErrUnexpectedEOF, s.Pos())
	}
	res, err := parseValue(s, nil, 0, pOpts)
	if err != nil {
		return nil, err
	}
	s.SkipWhitespace()
	if !s.EOF() {
		return nil, fmt.Errorf("%w %s", ErrTrailingContent, s.Pos())
	}
	return res, nil
}

// ParseString is Parse on a string input.
func ParseString(v string, opts ...Option) (*ir.Node, error) {
	return Parse([]byte(v), opts...)
}

func parseValue(s *token.Scanner, p *ir.Node, depth int, opts *parseOpts) (*ir.Node, error) {
	s.SkipWhitespace()
	if debug.Parse() {
		fmt.Fprintf(os.Stderr, "parse: %s %s\n", s.Classify(), s.Pos())
	}
	switch s.Classify() {
	case token.KindObject:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w %s", ErrDepth, s.Pos())
		}
		return parseObject(s, p, depth, opts)
	case token.KindArray:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w %s", ErrDepth, s.Pos())
		}
		return parseArray(s, p, depth, opts)
	case token.KindString:
		return parseString(s, p)
	case token.KindNumber:
		return parseNumber(s, p)
	case token.KindTrue:
		b := ir.FromBool(true)
		b.Parent = p
		return parseLiteral(s, "true", b)
	case token.KindFalse:
		b := ir.FromBool(false)
		b.Parent = p
		return parseLiteral(s, "false", b)
	case token.KindNull:
		y := ir.Null()
		y.Parent = p
		return parseLiteral(s, "null", y)
	default:
		if s.EOF() {
			return nil, fmt.Errorf("%w %s", ErrUnexpectedEOF, s.Pos())
		}
		r, _ := s.PeekRune()
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedToken,
			token.UnexpectedErr(strconv.Quote(string(r)), s.Pos()))
	}
}

func parseObject(s *token.Scanner, p *ir.Node, depth int, opts *parseOpts) (*ir.Node, error) {
	s.Advance() // '{'
	obj := &ir.Node{Type: ir.ObjectType, Parent: p}
	kvs := []ir.KeyVal{}
	s.SkipWhitespace()
	if c, ok := s.Peek(); ok && c == '}' {
		s.Advance()
		return ir.FromKeyValsAt(obj, kvs), nil
	}
	for {
		s.SkipWhitespace()
		c, ok := s.Peek()
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrUnexpectedEOF, s.Pos())
		}
		if c != '"' {
			return nil, fmt.Errorf("%w %s", ErrObjectKey, s.Pos())
		}
		key, err := s.ReadString()
		if err != nil {
			return nil, err
		}
		s.SkipWhitespace()
		c, ok = s.Peek()
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrUnexpectedEOF, s.Pos())
		}
		if c != ':' {
			return nil, fmt.Errorf("%w %s", ErrColon, s.Pos())
		}
		s.Advance()
		val, err := parseValue(s, obj, depth+1, opts)
		if err != nil {
			return nil, err
		}
		kvs = putKeyVal(kvs, key, val)
		s.SkipWhitespace()
		c, ok = s.Peek()
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrUnexpectedEOF, s.Pos())
		}
		switch c {
		case ',':
			s.Advance()
		case '}':
			s.Advance()
			return ir.FromKeyValsAt(obj, kvs), nil
		default:
			return nil, fmt.Errorf("%w %s", ErrCommaOrBrace, s.Pos())
		}
	}
}

// putKeyVal inserts key→val into the member list. A later duplicate key
// silently replaces the earlier member in place: last write wins.
func putKeyVal(kvs []ir.KeyVal, key string, val *ir.Node) []ir.KeyVal {
	for i := range kvs {
		if kvs[i].Key.String == key {
			kvs[i].Val = val
			return kvs
		}
	}
	return append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
}

func parseArray(s *token.Scanner, p *ir.Node, depth int, opts *parseOpts) (*ir.Node, error) {
	s.Advance() // '['
	arr := &ir.Node{Type: ir.ArrayType, Parent: p}
	s.SkipWhitespace()
	if c, ok := s.Peek(); ok && c == ']' {
		s.Advance()
		return arr, nil
	}
	for {
		elt, err := parseValue(s, arr, depth+1, opts)
		if err != nil {
			return nil, err
		}
		elt.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, elt)
		s.SkipWhitespace()
		c, ok := s.Peek()
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrUnexpectedEOF, s.Pos())
		}
		switch c {
		case ',':
			s.Advance()
		case ']':
			s.Advance()
			return arr, nil
		default:
			return nil, fmt.Errorf("%w %s", ErrCommaOrBracket, s.Pos())
		}
	}
}

func parseString(s *token.Scanner, p *ir.Node) (*ir.Node, error) {
	v, err := s.ReadString()
	if err != nil {
		return nil, err
	}
	sy := ir.FromString(v)
	sy.Parent = p
	return sy, nil
}

func parseNumber(s *token.Scanner, p *ir.Node) (*ir.Node, error) {
	f, err := s.ReadNumber()
	if err != nil {
		return nil, err
	}
	ny := ir.FromFloat(f)
	ny.Parent = p
	return ny, nil
}

func parseLiteral(s *token.Scanner, lit string, y *ir.Node) (*ir.Node, error) {
	if err := s.Expect(lit); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedToken, err)
	}
	return y, nil
}
