package ascii

// IsSpace reports whether c is one of the four recognized whitespace
// bytes: space, tab, newline, carriage return. Nothing locale-dependent.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// IsUpper reports whether c is an ASCII uppercase letter.
func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

const caseDelta = 'a' - 'A'

// ToUpper returns the uppercase form of c if it is an ASCII lowercase
// letter, otherwise c unchanged.
func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - caseDelta
	}
	return c
}

// ToLower returns the lowercase form of c if it is an ASCII uppercase
// letter, otherwise c unchanged.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + caseDelta
	}
	return c
}
