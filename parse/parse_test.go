package parse

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Jackscalibur/json-parser/ir"
	"github.com/Jackscalibur/json-parser/token"
)

var treeOpts = []cmp.Option{
	cmpopts.IgnoreFields(ir.Node{}, "Parent"),
	cmpopts.EquateEmpty(),
}

type parseTest struct {
	in   string
	want *ir.Node
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   `null`,
			want: ir.Null(),
		},
		{
			in:   `true`,
			want: ir.FromBool(true),
		},
		{
			in:   `false`,
			want: ir.FromBool(false),
		},
		{
			in:   `123`,
			want: ir.FromFloat(123),
		},
		{
			in:   `-0.5e2`,
			want: ir.FromFloat(-50),
		},
		{
			in:   `1e14`,
			want: ir.FromFloat(1e14),
		},
		{
			in:   `-0`,
			want: ir.FromFloat(0),
		},
		{
			in:   `"hello"`,
			want: ir.FromString("hello"),
		},
		{
			in:   `""`,
			want: ir.FromString(""),
		},
		{
			in:   `"hello\nworld"`,
			want: ir.FromString("hello\nworld"),
		},
		{
			in:   `"\"\\\/\b\f\n\r\t"`,
			want: ir.FromString("\"\\/\b\f\n\r\t"),
		},
		{
			in:   `"\u00e9"`,
			want: ir.FromString("é"),
		},
		{
			in:   `"\uD83D\uDE00"`,
			want: ir.FromString("😀"),
		},
		{
			in:   `"é"`,
			want: ir.FromString("é"),
		},
		{
			in:   `"😀"`,
			want: ir.FromString("😀"),
		},
		{
			in:   `"héllo"`,
			want: ir.FromString("héllo"),
		},
		{
			in:   `1e999`,
			want: ir.FromFloat(math.Inf(1)),
		},
		{
			in:   `-1e999`,
			want: ir.FromFloat(math.Inf(-1)),
		},
		{
			in:   `[]`,
			want: ir.FromSlice(nil),
		},
		{
			in: `[1,2,3]`,
			want: ir.FromSlice([]*ir.Node{
				ir.FromFloat(1), ir.FromFloat(2), ir.FromFloat(3),
			}),
		},
		{
			in: `[[]]`,
			want: ir.FromSlice([]*ir.Node{
				ir.FromSlice(nil),
			}),
		},
		{
			in: `["a",["b",["c"]]]`,
			want: ir.FromSlice([]*ir.Node{
				ir.FromString("a"),
				ir.FromSlice([]*ir.Node{
					ir.FromString("b"),
					ir.FromSlice([]*ir.Node{ir.FromString("c")}),
				}),
			}),
		},
		{
			in:   `{}`,
			want: ir.FromKeyVals(nil),
		},
		{
			in: `{"a":1,"b":2}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("a"), Val: ir.FromFloat(1)},
				{Key: ir.FromString("b"), Val: ir.FromFloat(2)},
			}),
		},
		{
			in: `{"null": null}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("null"), Val: ir.Null()},
			}),
		},
		{
			in: ` { "a" : [ 1 , true ] ,
			"b" : { "c" : "d" } } `,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Node{
					ir.FromFloat(1), ir.FromBool(true),
				})},
				{Key: ir.FromString("b"), Val: ir.FromKeyVals([]ir.KeyVal{
					{Key: ir.FromString("c"), Val: ir.FromString("d")},
				})},
			}),
		},
		{
			in: `[0, {"f": 2, "g": 3}]`,
			want: ir.FromSlice([]*ir.Node{
				ir.FromFloat(0),
				ir.FromKeyVals([]ir.KeyVal{
					{Key: ir.FromString("f"), Val: ir.FromFloat(2)},
					{Key: ir.FromString("g"), Val: ir.FromFloat(3)},
				}),
			}),
		},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if d := cmp.Diff(pt.want, node, treeOpts...); d != "" {
			t.Errorf("# doc\n%s\n# diff (-want +got)\n%s", pt.in, d)
		}
		if !ir.Equal(pt.want, node) {
			t.Errorf("# doc\n%s\n# not Equal to expected tree", pt.in)
		}
	}
}

type parseErrTest struct {
	in string
	e  error
}

func TestParseErrors(t *testing.T) {
	pts := []parseErrTest{
		{in: ``, e: ErrUnexpectedEOF},
		{in: `   `, e: ErrUnexpectedEOF},
		{in: "\t\n\r ", e: ErrUnexpectedEOF},
		{in: `{"a":1`, e: ErrUnexpectedEOF},
		{in: `{`, e: ErrUnexpectedEOF},
		{in: `[1,2`, e: ErrUnexpectedEOF},
		{in: `[`, e: ErrUnexpectedEOF},
		{in: `{"a"`, e: ErrUnexpectedEOF},
		{in: `{"a":`, e: ErrUnexpectedEOF},
		{in: `{"a":1}{}`, e: ErrTrailingContent},
		{in: `null true`, e: ErrTrailingContent},
		{in: `1 2`, e: ErrTrailingContent},
		{in: `{1:2}`, e: ErrObjectKey},
		{in: `{"a":1,}`, e: ErrObjectKey},
		{in: `{"a" 1}`, e: ErrColon},
		{in: `{"a":1 "b":2}`, e: ErrCommaOrBrace},
		{in: `[1 2]`, e: ErrCommaOrBracket},
		{in: `[1,2,]`, e: ErrUnexpectedToken},
		{in: `@`, e: ErrUnexpectedToken},
		{in: `tru`, e: ErrUnexpectedToken},
		{in: `truE`, e: ErrUnexpectedToken},
		{in: `nul`, e: ErrUnexpectedToken},
		{in: `False`, e: ErrUnexpectedToken},
		{in: `01`, e: token.ErrNumber},
		{in: `01`, e: token.ErrNumberLeadingZero},
		{in: `-`, e: token.ErrNumber},
		{in: `1.`, e: token.ErrNumber},
		{in: `1e`, e: token.ErrNumber},
		{in: `1e+`, e: token.ErrNumber},
		{in: `"abc`, e: token.ErrUnterminated},
		{in: `"\`, e: token.ErrUnterminated},
		{in: `"\u12`, e: token.ErrUnterminated},
		{in: `"\x"`, e: token.ErrBadEscape},
		{in: `"\u12zz"`, e: token.ErrBadUnicode},
		{in: `"\ud800"`, e: token.ErrBadUnicode},
		{in: `"\ud800\ud800"`, e: token.ErrBadUnicode},
		{in: `"\ude00"`, e: token.ErrBadUnicode},
		{in: "\"a\x01b\"", e: token.ErrControlInString},
		{in: "\"a\nb\"", e: token.ErrControlInString},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("# doc\n%s\n# expected error %v, got tree %v", pt.in, pt.e, node)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("# doc\n%s\n# expected error %v, got %v", pt.in, pt.e, err)
		}
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	// last write wins, replacing the earlier member in place
	node, err := Parse([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromFloat(3)},
		{Key: ir.FromString("b"), Val: ir.FromFloat(2)},
	})
	if d := cmp.Diff(want, node, treeOpts...); d != "" {
		t.Errorf("diff (-want +got)\n%s", d)
	}
	if len(node.Fields) != 2 {
		t.Errorf("expected 2 members, got %d", len(node.Fields))
	}
}

func TestParseMaxDepth(t *testing.T) {
	_, err := Parse([]byte(`[[[[1]]]]`), MaxDepth(3))
	if !errors.Is(err, ErrDepth) {
		t.Errorf("expected ErrDepth, got %v", err)
	}
	if _, err := Parse([]byte(`[[[1]]]`), MaxDepth(3)); err != nil {
		t.Errorf("depth 3 within MaxDepth(3): %v", err)
	}
}

func TestParseErrorsWrapErrParse(t *testing.T) {
	for _, in := range []string{``, `@`, `[1,`, `{"a"}`, `null null`} {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: error %v does not wrap ErrParse", in, err)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	in := []byte(`{"a":[1,2,{"b":null}],"c":"é","d":-0.5e2}`)
	a, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(a, b) {
		t.Error("two parses of the same input differ")
	}
	if a.Hash() != b.Hash() {
		t.Error("hashes of equal trees differ")
	}
}

func TestParseConcurrent(t *testing.T) {
	in := []byte(`{"users":[{"name":"alice"},{"name":"bob"}],"n":3}`)
	want, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			node, err := Parse(in)
			if err != nil {
				t.Errorf("concurrent parse: %v", err)
				return
			}
			if !ir.Equal(want, node) {
				t.Error("concurrent parse produced a different tree")
			}
		}()
	}
	wg.Wait()
}

func TestParseUnexpectedTokenMessage(t *testing.T) {
	_, err := Parse([]byte(`@`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("expected ErrUnexpectedToken, got %v", err)
	}
	msg := err.Error()
	for _, part := range []string{"unexpected", `"@"`, "offset"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error %q does not mention %q", msg, part)
		}
	}
}

func TestParseErrorMessageHasOffset(t *testing.T) {
	_, err := Parse([]byte("{\"a\":\n@}"))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, part := range []string{"offset", "line="} {
		if !strings.Contains(msg, part) {
			t.Errorf("error %q does not mention %q", msg, part)
		}
	}
}
