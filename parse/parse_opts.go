package parse

type parseOpts struct {
	strict bool
}

type ParseOption func(*parseOpts)

// Strict makes duplicate mapping keys a parse error instead of applying
// last-occurrence-wins resolution.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}
