package ir

// Equal reports deep structural equality of two nodes. Mapping entry order
// is significant; key uniqueness checks use this equality.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return equalNumbers(a, b)
	case StringType:
		return a.String == b.String
	case TaggedType:
		return a.Tag == b.Tag && Equal(a.Inner, b.Inner)
	case SequenceType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case MappingType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i := range a.Keys {
			if !Equal(a.Keys[i], b.Keys[i]) {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	if a.Float64 != nil && b.Float64 != nil {
		return *a.Float64 == *b.Float64
	}
	if (a.Int64 != nil) != (b.Int64 != nil) {
		return false
	}
	if (a.Float64 != nil) != (b.Float64 != nil) {
		return false
	}
	return a.NumberText() == b.NumberText()
}
