package wire

import (
	"encoding/binary"
	"errors"
	"hash/crc32"

	"github.com/chieftain0/staticstring"
)

var (
	ErrBadFrame = errors.New("wire: malformed frame")
	ErrChecksum = errors.New("wire: crc mismatch")
	ErrOverflow = errors.New("wire: payload exceeds destination capacity")
)

// Decode parses a framed record and replaces dst's content with the
// payload. Unlike the best-effort append operations, a payload larger
// than dst's capacity is an error, not a truncation; dst is untouched
// on any failure.
func Decode(data []byte, dst *staticstring.String) error {
	if dst == nil || len(data) < headerSize+crcSize {
		return ErrBadFrame
	}
	if data[0] != magic0 || data[1] != magic1 || data[2] != TypeString {
		return ErrBadFrame
	}
	if int(binary.LittleEndian.Uint32(data[3:])) != len(data) {
		return ErrBadFrame
	}

	body := data[2 : len(data)-crcSize]
	want := binary.LittleEndian.Uint32(data[len(data)-crcSize:])
	if crc32.ChecksumIEEE(body) != want {
		return ErrChecksum
	}

	payload := data[headerSize : len(data)-crcSize]
	for _, c := range payload {
		// NUL cannot appear in content, so no valid encoder produced this
		if c == 0 {
			return ErrBadFrame
		}
	}
	if len(payload) > dst.Cap() {
		return ErrOverflow
	}
	dst.Set(payload)
	return nil
}
