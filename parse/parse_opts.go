package parse

// DefaultMaxDepth bounds container nesting when no MaxDepth option is
// given, so deeply nested input fails with ErrDepth instead of
// exhausting the call stack.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type Option func(*parseOpts)

func MaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}
