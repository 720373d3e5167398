package token

// Kind classifies the token beginning at the scanner's current offset,
// based on a single byte of lookahead.
type Kind int

const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
)

func (k Kind) String() string {
	return map[Kind]string{
		KindInvalid: "KindInvalid",
		KindObject:  "KindObject",
		KindArray:   "KindArray",
		KindString:  "KindString",
		KindNumber:  "KindNumber",
		KindTrue:    "KindTrue",
		KindFalse:   "KindFalse",
		KindNull:    "KindNull",
	}[k]
}
