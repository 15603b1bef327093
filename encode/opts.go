package encode

type EncodeOption func(*EncState)

// WithIndent sets the indentation unit in spaces. Values below 1 are
// ignored; the canonical layout uses 2.
func WithIndent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}
