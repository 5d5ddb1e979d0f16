package staticstring

import "github.com/chieftain0/staticstring/internal/ascii"

// TrimTrailing removes whitespace from the end of the String and
// returns the number of bytes removed. The sentinel is rewritten once.
func (s *String) TrimTrailing() int {
	count := 0
	for s.n > 0 && ascii.IsSpace(s.buf[s.n-1]) {
		s.n--
		count++
	}
	s.buf[s.n] = 0
	return count
}

// TrimLeading removes whitespace from the start of the String and
// returns the number of bytes removed. The surviving content is
// compacted down in a single pass, O(Len()) regardless of how much
// leading whitespace there is.
func (s *String) TrimLeading() int {
	offset := 0
	for offset < s.n && ascii.IsSpace(s.buf[offset]) {
		offset++
	}
	if offset > 0 {
		copy(s.buf[:s.n-offset], s.buf[offset:s.n])
		s.n -= offset
		s.buf[s.n] = 0
	}
	return offset
}

// Trim removes whitespace from both ends and returns the total number
// of bytes removed.
func (s *String) Trim() int {
	return s.TrimLeading() + s.TrimTrailing()
}

// StripWhitespace removes every whitespace byte anywhere in the String
// using a read/write two-cursor scan, O(Len()) with no extra space.
// Returns the number of bytes removed.
func (s *String) StripWhitespace() int {
	write := 0
	for read := 0; read < s.n; read++ {
		if !ascii.IsSpace(s.buf[read]) {
			s.buf[write] = s.buf[read]
			write++
		}
	}
	removed := s.n - write
	s.n = write
	s.buf[write] = 0
	return removed
}
