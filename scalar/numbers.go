package scalar

// LooksLikeNumber reports whether v has the shape of a YAML numeric
// literal: any run of leading minus signs, then either all ASCII digits
// or a decimal/exponent float form. Strings with this shape are quoted
// so they stay strings on re-parse.
func LooksLikeNumber(v string) bool {
	d := []byte(v)
	i := 0
	for i < len(d) && d[i] == '-' {
		i++
	}
	d = d[i:]
	if len(d) == 0 {
		return false
	}
	if asciiDigits(d) == len(d) {
		return true
	}
	return floatShape(d)
}

// floatShape scans for digits with at most one '.' before any exponent
// and at most one exponent marker followed by an optional sign. An
// exponent marker must be followed by at least one digit.
func floatShape(d []byte) bool {
	hasDecimal := false
	hasExp := false
	hasDigits := false
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case asciiDigit(c):
			hasDigits = true
		case c == '.' && !hasDecimal && !hasExp:
			hasDecimal = true
		case (c == 'e' || c == 'E') && !hasExp && hasDigits:
			hasExp = true
			hasDigits = false
		case (c == '+' || c == '-') && i > 0 && (d[i-1] == 'e' || d[i-1] == 'E'):
		default:
			return false
		}
	}
	return hasDigits
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
