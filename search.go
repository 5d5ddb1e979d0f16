package staticstring

import (
	"bytes"

	"github.com/chieftain0/staticstring/internal/ascii"
)

// Equal reports whether s and o hold identical content. A nil other is
// never equal.
func (s *String) Equal(o *String) bool {
	if o == nil || s.n != o.n {
		return false
	}
	return bytes.Equal(s.buf[:s.n], o.buf[:o.n])
}

// EqualString reports whether the content equals src. An embedded NUL
// terminates src, mirroring the sequence sources.
func (s *String) EqualString(src string) bool {
	i := 0
	for i < s.n && i < len(src) && src[i] != 0 {
		if s.buf[i] != src[i] {
			return false
		}
		i++
	}
	return i == s.n && (i == len(src) || src[i] == 0)
}

// Count returns the number of occurrences of c. Callers wanting a
// boolean containment test check Count(c) > 0.
func (s *String) Count(c byte) int {
	count := 0
	for i := 0; i < s.n; i++ {
		if s.buf[i] == c {
			count++
		}
	}
	return count
}

// IndexByte returns the index of the first occurrence of c, or -1.
func (s *String) IndexByte(c byte) int {
	for i := 0; i < s.n; i++ {
		if s.buf[i] == c {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the index of the last occurrence of c, or -1.
// The backward scan uses a signed counter; an unsigned one would wrap
// on the empty string.
func (s *String) LastIndexByte(c byte) int {
	for i := s.n - 1; i >= 0; i-- {
		if s.buf[i] == c {
			return i
		}
	}
	return -1
}

// Pop removes and returns the last byte. The second result is false
// when the String was empty.
func (s *String) Pop() (byte, bool) {
	if s.n == 0 {
		return 0, false
	}
	s.n--
	c := s.buf[s.n]
	s.buf[s.n] = 0
	return c, true
}

// Truncate shrinks the String to newLen and reports success. Growing
// is rejected, not zero-filled.
func (s *String) Truncate(newLen int) bool {
	if newLen < 0 || newLen > s.n {
		return false
	}
	s.n = newLen
	s.buf[s.n] = 0
	return true
}

// Reverse reverses the content in place.
func (s *String) Reverse() {
	for i, j := 0, s.n-1; i < j; i, j = i+1, j-1 {
		s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
	}
}

// CopyFrom replaces the content with a full copy of src, including
// length and sentinel, and reports success. It fails when src is nil
// or its length exceeds this String's capacity, leaving the
// destination unchanged.
func (s *String) CopyFrom(src *String) bool {
	if src == nil || src.n > s.Cap() {
		return false
	}
	copy(s.buf[:src.n], src.buf[:src.n])
	s.n = src.n
	s.buf[s.n] = 0
	return true
}

// Clone returns an independent duplicate with the same capacity and
// content.
func (s *String) Clone() *String {
	c := New(s.Cap())
	copy(c.buf[:s.n], s.buf[:s.n])
	c.n = s.n
	c.buf[c.n] = 0
	return c
}

// ToUpper converts ASCII lowercase letters to uppercase in place and
// returns the number of bytes changed.
func (s *String) ToUpper() int {
	count := 0
	for i := 0; i < s.n; i++ {
		if ascii.IsLower(s.buf[i]) {
			s.buf[i] = ascii.ToUpper(s.buf[i])
			count++
		}
	}
	return count
}

// ToLower converts ASCII uppercase letters to lowercase in place and
// returns the number of bytes changed.
func (s *String) ToLower() int {
	count := 0
	for i := 0; i < s.n; i++ {
		if ascii.IsUpper(s.buf[i]) {
			s.buf[i] = ascii.ToLower(s.buf[i])
			count++
		}
	}
	return count
}
