// Package staticstring implements a fixed-capacity byte string with
// bounds-checked mutation, for code that must not allocate after setup.
//
// A String never grows: its capacity is fixed at construction and
// operations that would overflow it truncate or report failure instead.
// Failures are reported through return values only; no operation
// panics or touches memory outside the buffer.
package staticstring

import "unsafe"

// String is a fixed-capacity byte string. The backing buffer holds
// capacity+1 bytes and buf[length] is always the NUL sentinel, so the
// live content is readable as a terminated sequence at all times.
//
// NUL is reserved as the sentinel and is never valid content: the
// single-byte writers reject it and the sequence sources treat it as a
// terminator.
//
// Assigning a String value copies the slice header and aliases the
// storage. Use CopyFrom or Clone for an independent duplicate.
//
// A String is not safe for concurrent mutation; callers that share one
// across goroutines must synchronize externally.
type String struct {
	buf []byte // capacity+1 bytes; buf[n] == 0 always
	n   int
}

// New returns an empty String with the given fixed capacity.
// A negative capacity is treated as zero.
func New(capacity int) *String {
	if capacity < 0 {
		capacity = 0
	}
	return &String{buf: make([]byte, capacity+1)}
}

// Wrap returns a String backed by caller-provided storage, for
// allocation-free use. One byte of backing is reserved for the
// sentinel, so the capacity is len(backing)-1. Any prior content of
// backing is discarded. Empty backing yields a zero-capacity String
// (with a one-byte internal buffer for the sentinel).
func Wrap(backing []byte) *String {
	if len(backing) == 0 {
		backing = make([]byte, 1)
	}
	backing[0] = 0
	return &String{buf: backing}
}

// FromString returns a String with the given capacity holding src,
// truncated to fit.
func FromString(capacity int, src string) *String {
	s := New(capacity)
	s.SetString(src)
	return s
}

// Len returns the number of content bytes.
func (s *String) Len() int { return s.n }

// Cap returns the fixed capacity.
func (s *String) Cap() int { return len(s.buf) - 1 }

// Bytes returns a read-only view of the content without copying. The
// view is valid until the next mutating operation. Callers must not
// modify it.
func (s *String) Bytes() []byte { return s.buf[:s.n] }

// String returns a copy of the content as a Go string.
func (s *String) String() string { return string(s.buf[:s.n]) }

// UnsafeString returns the content as a string without copying, using
// the same aliasing trick as unsafe decoders: the result shares the
// internal buffer and is invalidated by any subsequent mutation.
// Callers who cannot guarantee that must use String instead.
func (s *String) UnsafeString() string {
	if s.n == 0 {
		return ""
	}
	return unsafe.String(&s.buf[0], s.n)
}

// Reset empties the String. Only the length and sentinel are rewritten;
// residual bytes stay in the unused region of the buffer, where they
// are unreachable through the safe accessors but still present in
// Wrap backing storage.
func (s *String) Reset() {
	s.n = 0
	s.buf[0] = 0
}

// Set replaces the content with bytes from src, stopping at src's end,
// at an embedded NUL, or at capacity, whichever comes first. Excess
// input is silently dropped. Returns the number of bytes copied.
func (s *String) Set(src []byte) int {
	n := 0
	limit := s.Cap()
	for n < limit && n < len(src) && src[n] != 0 {
		s.buf[n] = src[n]
		n++
	}
	s.n = n
	s.buf[n] = 0
	return n
}

// SetString is Set for a string source.
func (s *String) SetString(src string) int {
	n := 0
	limit := s.Cap()
	for n < limit && n < len(src) && src[n] != 0 {
		s.buf[n] = src[n]
		n++
	}
	s.n = n
	s.buf[n] = 0
	return n
}

// AppendByte appends c and reports whether it was written. It fails
// when the String is full or c is NUL.
func (s *String) AppendByte(c byte) bool {
	if c == 0 || s.n >= s.Cap() {
		return false
	}
	s.buf[s.n] = c
	s.n++
	s.buf[s.n] = 0
	return true
}

// Append appends bytes from src until src ends, an embedded NUL is
// reached, or the String is full. Returns the number of bytes
// appended; 0 when src is empty or no room remains.
func (s *String) Append(src []byte) int {
	i := 0
	room := s.Cap() - s.n
	for i < room && i < len(src) && src[i] != 0 {
		s.buf[s.n+i] = src[i]
		i++
	}
	s.n += i
	s.buf[s.n] = 0
	return i
}

// AppendString is Append for a string source.
func (s *String) AppendString(src string) int {
	i := 0
	room := s.Cap() - s.n
	for i < room && i < len(src) && src[i] != 0 {
		s.buf[s.n+i] = src[i]
		i++
	}
	s.n += i
	s.buf[s.n] = 0
	return i
}

// ReplaceAt overwrites the byte at index and reports success. It fails
// on an out-of-range index or a NUL replacement, leaving the String
// unchanged.
func (s *String) ReplaceAt(index int, c byte) bool {
	if c == 0 || index < 0 || index >= s.n {
		return false
	}
	s.buf[index] = c
	return true
}

// ReplaceAll replaces every occurrence of old with new and returns the
// number of replacements. 0 means not found (or a NUL replacement,
// which is rejected).
func (s *String) ReplaceAll(old, new byte) int {
	if new == 0 {
		return 0
	}
	count := 0
	for i := 0; i < s.n; i++ {
		if s.buf[i] == old {
			s.buf[i] = new
			count++
		}
	}
	return count
}

// InsertAt inserts c at index, shifting the tail right. Index may be
// anywhere in [0, Len()]; inserting at Len() is an append. Returns the
// new length and true, or the current length and false when the index
// is out of range, the String is full, or c is NUL.
func (s *String) InsertAt(index int, c byte) (int, bool) {
	if c == 0 || index < 0 || index > s.n || s.n >= s.Cap() {
		return s.n, false
	}
	// highest index first so nothing is overwritten
	for i := s.n; i > index; i-- {
		s.buf[i] = s.buf[i-1]
	}
	s.buf[index] = c
	s.n++
	s.buf[s.n] = 0
	return s.n, true
}

// RemoveAt removes the byte at index, shifting the tail left, and
// returns the new length. An out-of-range index is a no-op returning
// the current length.
func (s *String) RemoveAt(index int) int {
	if index < 0 || index >= s.n {
		return s.n
	}
	copy(s.buf[index:s.n-1], s.buf[index+1:s.n])
	s.n--
	s.buf[s.n] = 0
	return s.n
}

// RemoveRange removes the bytes at indices [start, end] (inclusive)
// and returns the new length. Any bound violation (start > end, or
// either bound out of range) is a no-op returning the current length.
func (s *String) RemoveRange(start, end int) int {
	if start < 0 || start > end || end >= s.n {
		return s.n
	}
	copy(s.buf[start:], s.buf[end+1:s.n])
	s.n -= end - start + 1
	s.buf[s.n] = 0
	return s.n
}

// Substring copies the bytes at indices [start, end] (inclusive) into
// dst, replacing its content, and reports success. It fails on invalid
// bounds, a nil dst, or a dst whose capacity cannot hold the slice;
// dst is untouched on failure.
func (s *String) Substring(dst *String, start, end int) bool {
	if dst == nil || start < 0 || start > end || end >= s.n {
		return false
	}
	n := end - start + 1
	if n > dst.Cap() {
		return false
	}
	copy(dst.buf[:n], s.buf[start:end+1])
	dst.n = n
	dst.buf[n] = 0
	return true
}
